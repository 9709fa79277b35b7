// internal/handlers/assistant.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopstream/storefront/internal/services"
	"github.com/shopstream/storefront/internal/utils"
)

type AssistantHandler struct {
	assistantService *services.AssistantService
}

type assistantQueryRequest struct {
	Message string `json:"message" validate:"required"`
}

func NewAssistantHandler(assistantService *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// POST /assistant/query
func (h *AssistantHandler) Query(c *gin.Context) {
	var req assistantQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	suggestion, ok := h.assistantService.Match(req.Message)
	if !ok {
		utils.SuccessResponse(c, gin.H{
			"matched": false,
			"reply":   "I can help you browse electronics, fashion, home, beauty, sports or books.",
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"matched":    true,
		"suggestion": suggestion,
	})
}
