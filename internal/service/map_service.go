package service

import (
	"fmt"
	"strconv"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/cluster"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/repository"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/spatial"
)

// Default pixel size of the map element when the client does not report it
const (
	defaultMapWidth  = 1024
	defaultMapHeight = 768
)

// MapService produces the marker payload for the interactive map: one
// clustering pass per request, recomputed from scratch for every viewport
// or filter change, plus a geohash density heatmap.
type MapService struct {
	locationRepo     *repository.LocationRepository
	defaultThreshold float64
}

// NewMapService creates a new map service. defaultThreshold is the
// clustering radius in pixels used when a request does not override it.
func NewMapService(locationRepo *repository.LocationRepository, defaultThreshold float64) *MapService {
	return &MapService{
		locationRepo:     locationRepo,
		defaultThreshold: defaultThreshold,
	}
}

// Markers runs one clustering pass for the requested viewport
func (s *MapService) Markers(filter models.MapFilter) (*models.MapResponse, error) {
	if filter.MinLat >= filter.MaxLat || filter.MinLon >= filter.MaxLon {
		return nil, ErrInvalidBounds
	}

	threshold := filter.Threshold
	if threshold < 0 {
		threshold = s.defaultThreshold
	}

	locations, err := s.locationRepo.ListInBounds(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load map locations: %w", err)
	}

	points := make([]cluster.GeoPoint, len(locations))
	for i, loc := range locations {
		points[i] = cluster.GeoPoint{
			ID:  strconv.FormatInt(loc.ID, 10),
			Lat: loc.Latitude,
			Lon: loc.Longitude,
		}
	}

	viewport := cluster.Viewport{
		CenterLat: (filter.MinLat + filter.MaxLat) / 2,
		CenterLon: (filter.MinLon + filter.MaxLon) / 2,
		Zoom:      filter.Zoom,
		Width:     filter.Width,
		Height:    filter.Height,
	}
	if viewport.Width <= 0 {
		viewport.Width = defaultMapWidth
	}
	if viewport.Height <= 0 {
		viewport.Height = defaultMapHeight
	}

	result, err := cluster.Group(points, viewport.Projector(), threshold)
	if err != nil {
		return nil, fmt.Errorf("clustering pass failed: %w", err)
	}

	return &models.MapResponse{
		Clusters:   result.Clusters,
		Singletons: result.Singletons,
		Total:      result.Total(),
		Zoom:       filter.Zoom,
		Threshold:  threshold,
	}, nil
}

// Heatmap buckets the viewport's locations into geohash cells sized for
// the zoom level and returns normalized densities
func (s *MapService) Heatmap(filter models.MapFilter) (*models.HeatmapResponse, error) {
	if filter.MinLat >= filter.MaxLat || filter.MinLon >= filter.MaxLon {
		return nil, ErrInvalidBounds
	}

	locations, err := s.locationRepo.ListInBounds(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load heatmap locations: %w", err)
	}

	precision := spatial.GeohashPrecisionForZoom(filter.Zoom)
	cells := make(map[string]int)
	for _, loc := range locations {
		cells[spatial.EncodeGeohash(loc.Latitude, loc.Longitude, precision)]++
	}

	maxCount := 0
	for _, count := range cells {
		if count > maxCount {
			maxCount = count
		}
	}

	points := make([]models.HeatmapPoint, 0, len(cells))
	for hash, count := range cells {
		lat, lon := spatial.DecodeGeohash(hash)
		points = append(points, models.HeatmapPoint{
			Lat:       lat,
			Lon:       lon,
			Intensity: float64(count) / float64(maxCount),
			Count:     count,
		})
	}

	return &models.HeatmapResponse{
		Points:    points,
		Count:     len(points),
		MaxCount:  maxCount,
		Precision: precision,
	}, nil
}
