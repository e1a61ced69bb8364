package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/middleware"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/service"
	"github.com/sumityadav0955/travel-guide-backend-go/pkg/response"
)

// UserHandler handles HTTP requests for user profiles
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile handles GET /api/v1/users/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	profile, err := h.userService.Profile(id, middleware.UserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, profile)
}

// GetMe handles GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	profile, err := h.userService.Profile(userID, userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, profile)
}

// UpdateMe handles PUT /api/v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid profile payload")
		return
	}

	user, err := h.userService.UpdateProfile(middleware.UserID(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, user)
}
