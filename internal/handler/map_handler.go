package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/service"
	"github.com/sumityadav0955/travel-guide-backend-go/pkg/response"
)

// MapHandler handles HTTP requests for map markers and heatmaps
type MapHandler struct {
	mapService *service.MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(mapService *service.MapService) *MapHandler {
	return &MapHandler{mapService: mapService}
}

// Markers handles GET /api/v1/map/markers
func (h *MapHandler) Markers(c *gin.Context) {
	var filter models.MapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid viewport parameters")
		return
	}

	result, err := h.mapService.Markers(filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// Heatmap handles GET /api/v1/map/heatmap
func (h *MapHandler) Heatmap(c *gin.Context) {
	var filter models.MapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid viewport parameters")
		return
	}

	result, err := h.mapService.Heatmap(filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}
