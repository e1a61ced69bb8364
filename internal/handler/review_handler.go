package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/middleware"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/service"
	"github.com/sumityadav0955/travel-guide-backend-go/pkg/response"
)

// ReviewHandler handles HTTP requests for reviews
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListByLocation handles GET /api/v1/locations/:id/reviews
func (h *ReviewHandler) ListByLocation(c *gin.Context) {
	locationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var filter models.ReviewFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.reviewService.ListByLocation(locationID, filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// Summary handles GET /api/v1/locations/:id/reviews/summary
func (h *ReviewHandler) Summary(c *gin.Context) {
	locationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	summary, err := h.reviewService.Summary(locationID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, summary)
}

// Create handles POST /api/v1/locations/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	locationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid review payload")
		return
	}

	review, err := h.reviewService.Create(middleware.UserID(c), locationID, req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, review)
}

// Update handles PUT /api/v1/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid review payload")
		return
	}

	review, err := h.reviewService.Update(middleware.UserID(c), reviewID, req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, review)
}

// Delete handles DELETE /api/v1/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(middleware.UserID(c), reviewID); err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, nil)
}
