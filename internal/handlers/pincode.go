// internal/handlers/pincode.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopstream/storefront/internal/services"
	"github.com/shopstream/storefront/internal/utils"
)

type PincodeHandler struct {
	pincodeService *services.PincodeService
}

type setPincodeRequest struct {
	Pincode string `json:"pincode" validate:"required,pincode"`
}

func NewPincodeHandler(pincodeService *services.PincodeService) *PincodeHandler {
	return &PincodeHandler{pincodeService: pincodeService}
}

// GET /pincode
func (h *PincodeHandler) GetPincode(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"pincode": h.pincodeService.Get(),
	})
}

// PUT /pincode
func (h *PincodeHandler) SetPincode(c *gin.Context) {
	var req setPincodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	h.pincodeService.Set(req.Pincode)
	utils.SuccessResponse(c, gin.H{
		"pincode": req.Pincode,
	})
}
