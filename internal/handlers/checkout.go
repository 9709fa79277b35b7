// internal/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopstream/storefront/internal/middleware"
	"github.com/shopstream/storefront/internal/models"
	"github.com/shopstream/storefront/internal/services"
	"github.com/shopstream/storefront/internal/utils"
)

// authRedirect is where a blocked cart -> address transition sends the
// user; on success the caller re-enters checkout at the address step.
const authRedirect = "/v1/auth/login?redirect=checkout"

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

type selectAddressRequest struct {
	AddressID string `json:"address_id" validate:"required"`
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// GET /checkout?step=address
//
// Without a step parameter this just reads the machine's position. With
// step=address it performs the external re-entry after the auth
// hand-off.
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	sess := middleware.GetSession(c)

	if step := c.Query("step"); step != "" {
		view, err := h.checkoutService.EnterAt(sess, models.CheckoutStep(step))
		if err != nil {
			h.respondError(c, err)
			return
		}
		utils.SuccessResponse(c, view)
		return
	}

	utils.SuccessResponse(c, h.checkoutService.View(sess))
}

// POST /checkout/proceed
func (h *CheckoutHandler) Proceed(c *gin.Context) {
	view, err := h.checkoutService.Proceed(middleware.GetSession(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SuccessResponse(c, view)
}

// POST /checkout/address
func (h *CheckoutHandler) SelectAddress(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req selectAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	view, err := h.checkoutService.SelectAddress(sess, req.AddressID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SuccessResponse(c, view)
}

// POST /checkout/address/change
func (h *CheckoutHandler) ChangeAddress(c *gin.Context) {
	view, err := h.checkoutService.ChangeAddress(middleware.GetSession(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SuccessResponse(c, view)
}

// POST /checkout/order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	order, err := h.checkoutService.PlaceOrder(middleware.GetSession(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order": order,
	})
}

func (h *CheckoutHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAuthRequired):
		utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED",
			"Sign in to continue to checkout", gin.H{"redirect": authRedirect})
	case errors.Is(err, services.ErrEmptyCart):
		utils.ConflictResponse(c, "Cart is empty")
	case errors.Is(err, services.ErrWrongStep):
		utils.ConflictResponse(c, "Not allowed from the current checkout step")
	case errors.Is(err, services.ErrNoAddress), errors.Is(err, services.ErrUnknownAddress):
		utils.BadRequestResponse(c, "Select a delivery address", nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
