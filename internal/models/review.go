package models

import "time"

// Review represents a user's rating and comment on a location
type Review struct {
	ID         int64     `json:"id" db:"id"`
	LocationID int64     `json:"locationId" db:"location_id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Username   string    `json:"username,omitempty" db:"username"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateReviewRequest represents the payload for writing a review
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// UpdateReviewRequest represents the payload for editing a review
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

// ReviewFilter represents filter parameters for listing reviews
type ReviewFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// ReviewsResponse represents a paginated response of reviews
type ReviewsResponse struct {
	Data       []Review `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}

// RatingSummary aggregates the ratings of one location
type RatingSummary struct {
	LocationID int64       `json:"locationId"`
	Average    float64     `json:"average"`
	Count      int64       `json:"count"`
	Median     float64     `json:"median"`
	P90        float64     `json:"p90"`
	Histogram  map[int]int `json:"histogram"`
}
