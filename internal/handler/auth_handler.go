package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/service"
	"github.com/sumityadav0955/travel-guide-backend-go/pkg/response"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid registration payload")
		return
	}

	auth, err := h.authService.Register(req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, auth)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid login payload")
		return
	}

	auth, err := h.authService.Login(req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, auth)
}
