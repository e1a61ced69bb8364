package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review and sets its ID and timestamps
func (r *ReviewRepository) Create(review *models.Review) error {
	now := time.Now().UTC()
	result, err := r.db.Exec(`
		INSERT INTO reviews (location_id, user_id, rating, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		review.LocationID, review.UserID, review.Rating, review.Comment, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get review id: %w", err)
	}
	review.ID = id
	review.CreatedAt = now
	review.UpdatedAt = now
	return nil
}

// GetByID retrieves a review by ID, returning nil when not found
func (r *ReviewRepository) GetByID(id int64) (*models.Review, error) {
	var review models.Review
	err := r.db.QueryRow(`
		SELECT id, location_id, user_id, rating, comment, created_at, updated_at
		FROM reviews WHERE id = ?`, id).Scan(
		&review.ID, &review.LocationID, &review.UserID, &review.Rating,
		&review.Comment, &review.CreatedAt, &review.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

// GetByLocationAndUser retrieves the review one user wrote for one location
func (r *ReviewRepository) GetByLocationAndUser(locationID, userID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.QueryRow(`
		SELECT id, location_id, user_id, rating, comment, created_at, updated_at
		FROM reviews WHERE location_id = ? AND user_id = ?`, locationID, userID).Scan(
		&review.ID, &review.LocationID, &review.UserID, &review.Rating,
		&review.Comment, &review.CreatedAt, &review.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

// ListByLocation retrieves reviews for a location with pagination, newest first
func (r *ReviewRepository) ListByLocation(locationID int64, filter models.ReviewFilter) ([]models.Review, int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM reviews WHERE location_id = ?", locationID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT r.id, r.location_id, r.user_id, u.username, r.rating, r.comment, r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.location_id = ?
		ORDER BY r.created_at DESC
		LIMIT ? OFFSET ?`,
		locationID, filter.PageSize, (filter.Page-1)*filter.PageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(
			&review.ID, &review.LocationID, &review.UserID, &review.Username,
			&review.Rating, &review.Comment, &review.CreatedAt, &review.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, total, rows.Err()
}

// Update persists the mutable fields of a review
func (r *ReviewRepository) Update(review *models.Review) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(
		"UPDATE reviews SET rating = ?, comment = ?, updated_at = ? WHERE id = ?",
		review.Rating, review.Comment, now, review.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	review.UpdatedAt = now
	return nil
}

// Delete removes a review
func (r *ReviewRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM reviews WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

// RatingsForLocation returns every rating for a location, for aggregate stats
func (r *ReviewRepository) RatingsForLocation(locationID int64) ([]float64, error) {
	rows, err := r.db.Query("SELECT rating FROM reviews WHERE location_id = ?", locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	var ratings []float64
	for rows.Next() {
		var rating float64
		if err := rows.Scan(&rating); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}
