// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopstream/storefront/internal/catalog"
	"github.com/shopstream/storefront/internal/config"
	"github.com/shopstream/storefront/internal/handlers"
	"github.com/shopstream/storefront/internal/middleware"
	"github.com/shopstream/storefront/internal/services"
	"github.com/shopstream/storefront/internal/session"
	"github.com/shopstream/storefront/internal/utils"
)

func Initialize(store *catalog.Store, cfg *config.Config) (*gin.Engine, error) {
	// Session registry
	sessions := session.NewStore(time.Duration(cfg.Session.TTL)*time.Minute, cfg.Browse.PageSize)

	// Initialize services
	authService := services.NewAuthService(services.StubVerifier{}, cfg)
	browseService := services.NewBrowseService(store, cfg.Browse)
	cartService := services.NewCartService(store)
	checkoutService := services.NewCheckoutService(cfg.Checkout)
	orderService := services.NewOrderService()
	pincodeService := services.NewPincodeService(cfg.Storage.PincodeFile)
	assistantService, err := services.NewAssistantService(store, services.DefaultAssistantRules())
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(store, browseService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	pincodeHandler := handlers.NewPincodeHandler(pincodeService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.Session.JWTSecret)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.SessionMiddleware(sessions))
	r.Use(middleware.RequestLogger())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes (simulated; any non-empty credentials)
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", authHandler.GetProfile)
		}

		// Catalog routes
		catalogGroup := v1.Group("/catalog")
		{
			catalogGroup.GET("/categories", catalogHandler.GetCategories)
			catalogGroup.GET("/filters", catalogHandler.GetFilterMetadata)
		}

		// Product browsing
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), catalogHandler.GetProducts)
			products.POST("/more", catalogHandler.LoadMore)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		// Checkout routes
		checkout := v1.Group("/checkout")
		{
			checkout.GET("", checkoutHandler.GetCheckout)
			checkout.POST("/proceed", checkoutHandler.Proceed)
			checkout.POST("/address", checkoutHandler.SelectAddress)
			checkout.POST("/address/change", checkoutHandler.ChangeAddress)
			checkout.POST("/order", checkoutHandler.PlaceOrder)
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.GetHistory)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/tracking", orderHandler.GetTracking)
		}

		// Delivery pincode
		v1.GET("/pincode", pincodeHandler.GetPincode)
		v1.PUT("/pincode", pincodeHandler.SetPincode)

		// Shopping assistant (static keyword rules)
		v1.POST("/assistant/query", assistantHandler.Query)
	}

	return r, nil
}
