// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopstream/storefront/internal/catalog"
	"github.com/shopstream/storefront/internal/middleware"
	"github.com/shopstream/storefront/internal/services"
	"github.com/shopstream/storefront/internal/utils"
)

type CatalogHandler struct {
	catalog       *catalog.Store
	browseService *services.BrowseService
}

func NewCatalogHandler(store *catalog.Store, browseService *services.BrowseService) *CatalogHandler {
	return &CatalogHandler{
		catalog:       store,
		browseService: browseService,
	}
}

// GET /catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalog.Categories(),
	})
}

// GET /catalog/filters
func (h *CatalogHandler) GetFilterMetadata(c *gin.Context) {
	utils.SuccessResponse(c, h.catalog.FilterMetadata())
}

// GET /products
//
// Replaces the session's filter state from the query string and returns
// the first window of results. Any call here resets the incremental
// reveal to the base page size.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	sess := middleware.GetSession(c)

	filter := catalog.FilterState{
		Category:    c.Query("category"),
		Query:       c.Query("search"),
		PriceBucket: catalog.PriceBucket(c.Query("price")),
		Sort:        catalog.SortKey(c.Query("sort")),
	}

	if ratingStr := c.Query("rating"); ratingStr != "" {
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil || rating < 0 || rating > 5 {
			utils.BadRequestResponse(c, "Invalid rating filter", nil)
			return
		}
		filter.MinRating = rating
	}

	panelOpen := c.Query("panel") == "1"

	window, err := h.browseService.SetFilters(sess, filter, panelOpen)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFilter) {
			utils.BadRequestResponse(c, "Invalid filter parameter", nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	respondWindow(c, window)
}

// POST /products/more
func (h *CatalogHandler) LoadMore(c *gin.Context) {
	sess := middleware.GetSession(c)

	window, advanced, err := h.browseService.LoadMore(c.Request.Context(), sess)
	if err != nil {
		// Client went away mid-delay; nothing to render.
		c.Abort()
		return
	}

	utils.SuccessResponseWithMeta(c, gin.H{
		"products": window.Products,
	}, gin.H{
		"visible":  window.Visible,
		"total":    window.Total,
		"has_more": window.HasMore,
		"advanced": advanced,
	})
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.Product(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

func respondWindow(c *gin.Context, window services.Window) {
	utils.SuccessResponseWithMeta(c, gin.H{
		"products": window.Products,
		"filter":   window.Filter,
	}, gin.H{
		"visible":  window.Visible,
		"total":    window.Total,
		"has_more": window.HasMore,
	})
}
