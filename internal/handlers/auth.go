// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shopstream/storefront/internal/middleware"
	"github.com/shopstream/storefront/internal/services"
	"github.com/shopstream/storefront/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/login?redirect=checkout
//
// The redirect parameter names the view to resume after the simulated
// login; it is echoed back untouched for the caller to navigate with.
func (h *AuthHandler) Login(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	resp, err := h.authService.Login(sess, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid credentials")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"auth":     resp,
		"redirect": c.Query("redirect"),
	})
}

// POST /auth/signup?redirect=checkout
func (h *AuthHandler) Signup(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	resp, err := h.authService.Signup(sess, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid credentials")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"auth":     resp,
		"redirect": c.Query("redirect"),
	})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout(middleware.GetSession(c))
	utils.SuccessResponse(c, gin.H{
		"message": "Logged out",
	})
}

// GET /auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	sess := middleware.GetSession(c)

	sess.Lock()
	defer sess.Unlock()
	utils.SuccessResponse(c, gin.H{
		"authenticated": sess.Authenticated,
		"name":          sess.Name,
		"email":         sess.Email,
	})
}
