package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/middleware"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/service"
	"github.com/sumityadav0955/travel-guide-backend-go/pkg/response"
)

// LocationHandler handles HTTP requests for locations
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// List handles GET /api/v1/locations
func (h *LocationHandler) List(c *gin.Context) {
	var filter models.LocationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.locationService.List(filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// Get handles GET /api/v1/locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	loc, err := h.locationService.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, loc)
}

// Create handles POST /api/v1/locations
func (h *LocationHandler) Create(c *gin.Context) {
	var req models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid location payload")
		return
	}

	loc, err := h.locationService.Create(middleware.UserID(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, loc)
}

// Update handles PUT /api/v1/locations/:id
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid location payload")
		return
	}

	loc, err := h.locationService.Update(middleware.UserID(c), id, req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, loc)
}

// Delete handles DELETE /api/v1/locations/:id
func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.locationService.Delete(middleware.UserID(c), id); err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, nil)
}

// Nearby handles GET /api/v1/locations/nearby
func (h *LocationHandler) Nearby(c *gin.Context) {
	var filter models.NearbyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	nearby, err := h.locationService.Nearby(filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  nearby,
		"count": len(nearby),
	})
}
