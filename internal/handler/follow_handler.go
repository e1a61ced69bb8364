package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/middleware"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/service"
	"github.com/sumityadav0955/travel-guide-backend-go/pkg/response"
)

// FollowHandler handles HTTP requests for the follow graph
type FollowHandler struct {
	followService *service.FollowService
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow handles POST /api/v1/users/:id/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	followeeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.followService.Follow(middleware.UserID(c), followeeID); err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, nil)
}

// Unfollow handles DELETE /api/v1/users/:id/follow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	followeeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.followService.Unfollow(middleware.UserID(c), followeeID); err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, nil)
}

// Followers handles GET /api/v1/users/:id/followers
func (h *FollowHandler) Followers(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	users, err := h.followService.Followers(userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  users,
		"count": len(users),
	})
}

// Following handles GET /api/v1/users/:id/following
func (h *FollowHandler) Following(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	users, err := h.followService.Following(userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  users,
		"count": len(users),
	})
}
