package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/repository"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/spatial"
)

// LocationService handles business logic for locations
type LocationService struct {
	locationRepo *repository.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo *repository.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

// List retrieves locations with filtering and pagination
func (s *LocationService) List(filter models.LocationFilter) (*models.LocationsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	locations, total, err := s.locationRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))
	return &models.LocationsResponse{
		Data:       locations,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Get retrieves a single location by ID
func (s *LocationService) Get(id int64) (*models.Location, error) {
	loc, err := s.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrNotFound
	}
	return loc, nil
}

// Create submits a new location on behalf of a user
func (s *LocationService) Create(userID int64, req models.CreateLocationRequest) (*models.Location, error) {
	loc := &models.Location{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if err := s.locationRepo.Create(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Update edits a location owned by the user
func (s *LocationService) Update(userID, id int64, req models.UpdateLocationRequest) (*models.Location, error) {
	loc, err := s.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrNotFound
	}
	if loc.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Description != nil {
		loc.Description = *req.Description
	}
	if req.Category != nil {
		loc.Category = *req.Category
	}
	if req.Latitude != nil {
		loc.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		loc.Longitude = *req.Longitude
	}

	if err := s.locationRepo.Update(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Delete removes a location owned by the user
func (s *LocationService) Delete(userID, id int64) error {
	loc, err := s.locationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if loc == nil {
		return ErrNotFound
	}
	if loc.UserID != userID {
		return ErrForbidden
	}
	return s.locationRepo.Delete(id)
}

// Nearby finds locations within a radius of a point, closest first. The
// bounding-box prefilter runs in SQL; the exact great-circle check and
// ordering happen here.
func (s *LocationService) Nearby(filter models.NearbyFilter) ([]models.NearbyLocation, error) {
	if filter.RadiusMeters <= 0 {
		filter.RadiusMeters = 5000
	}
	if filter.RadiusMeters > 100000 {
		filter.RadiusMeters = 100000
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	minLat, minLon, maxLat, maxLon := spatial.BoundingBoxForRadius(filter.Latitude, filter.Longitude, filter.RadiusMeters)
	candidates, err := s.locationRepo.ListInBounds(models.MapFilter{
		MinLat:   minLat,
		MaxLat:   maxLat,
		MinLon:   minLon,
		MaxLon:   maxLon,
		Category: filter.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby locations: %w", err)
	}

	var nearby []models.NearbyLocation
	for _, loc := range candidates {
		dist := spatial.HaversineDistance(filter.Latitude, filter.Longitude, loc.Latitude, loc.Longitude)
		if dist <= filter.RadiusMeters {
			nearby = append(nearby, models.NearbyLocation{Location: loc, DistanceMeters: dist})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	if len(nearby) > filter.Limit {
		nearby = nearby[:filter.Limit]
	}
	return nearby, nil
}
