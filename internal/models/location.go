package models

import "time"

// Location represents a user-submitted travel spot
type Location struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Category    string    `json:"category" db:"category"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	AvgRating   float64   `json:"avgRating" db:"avg_rating"`
	ReviewCount int64     `json:"reviewCount" db:"review_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateLocationRequest represents the payload for submitting a location
type CreateLocationRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=120"`
	Description string  `json:"description" binding:"max=2000"`
	Category    string  `json:"category" binding:"required,oneof=nature food culture nightlife viewpoint hidden-gem other"`
	Latitude    float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" binding:"min=-180,max=180"`
}

// UpdateLocationRequest represents the payload for editing a location
type UpdateLocationRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=120"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Category    *string  `json:"category" binding:"omitempty,oneof=nature food culture nightlife viewpoint hidden-gem other"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

// LocationFilter represents filter parameters for querying locations
type LocationFilter struct {
	Query     string  `form:"q"`
	Category  string  `form:"category"`
	MinRating float64 `form:"minRating"`
	UserID    int64   `form:"userId"`
	MinLat    float64 `form:"minLat"`
	MaxLat    float64 `form:"maxLat"`
	MinLon    float64 `form:"minLon"`
	MaxLon    float64 `form:"maxLon"`
	Page      int     `form:"page"`
	PageSize  int     `form:"pageSize"`
}

// HasBounds reports whether the filter carries a usable bounding box
func (f LocationFilter) HasBounds() bool {
	return f.MinLat != 0 || f.MaxLat != 0 || f.MinLon != 0 || f.MaxLon != 0
}

// LocationsResponse represents a paginated response of locations
type LocationsResponse struct {
	Data       []Location `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}

// NearbyFilter represents parameters for a radius search around a point
type NearbyFilter struct {
	Latitude     float64 `form:"lat" binding:"min=-90,max=90"`
	Longitude    float64 `form:"lon" binding:"min=-180,max=180"`
	RadiusMeters float64 `form:"radius"`
	Category     string  `form:"category"`
	Limit        int     `form:"limit"`
}

// NearbyLocation is a location annotated with its distance from the query point
type NearbyLocation struct {
	Location
	DistanceMeters float64 `json:"distanceMeters"`
}
