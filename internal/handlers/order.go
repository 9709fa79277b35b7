// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopstream/storefront/internal/middleware"
	"github.com/shopstream/storefront/internal/services"
	"github.com/shopstream/storefront/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /orders
func (h *OrderHandler) GetHistory(c *gin.Context) {
	orders := h.orderService.History(middleware.GetSession(c))
	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.orderService.Get(middleware.GetSession(c), c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Order")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// GET /orders/:id/tracking
func (h *OrderHandler) GetTracking(c *gin.Context) {
	events, ok := h.orderService.Tracking(middleware.GetSession(c), c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Order")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"tracking": events,
	})
}
