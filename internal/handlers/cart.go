// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shopstream/storefront/internal/middleware"
	"github.com/shopstream/storefront/internal/services"
	"github.com/shopstream/storefront/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, h.cartService.Get(middleware.GetSession(c)))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	summary, err := h.cartService.Add(sess, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product")
		case errors.Is(err, services.ErrOutOfStock):
			utils.ConflictResponse(c, "Product is out of stock")
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, summary)
}

// PUT /cart/items/:id
//
// A quantity of zero or less removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	summary := h.cartService.UpdateQuantity(sess, c.Param("id"), req.Quantity)
	utils.SuccessResponse(c, summary)
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	summary := h.cartService.Remove(middleware.GetSession(c), c.Param("id"))
	utils.SuccessResponse(c, summary)
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	summary := h.cartService.Clear(middleware.GetSession(c))
	utils.SuccessResponse(c, summary)
}
