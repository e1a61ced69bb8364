package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

const locationColumns = "id, user_id, name, description, category, latitude, longitude, avg_rating, review_count, created_at, updated_at"

// MaxMapResultSize caps the number of rows one map request can pull; one
// viewport's worth of markers, not the full dataset.
const MaxMapResultSize = 2000

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create inserts a new location and sets its ID and timestamps
func (r *LocationRepository) Create(loc *models.Location) error {
	now := time.Now().UTC()
	result, err := r.db.Exec(`
		INSERT INTO locations (user_id, name, description, category, latitude, longitude, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		loc.UserID, loc.Name, loc.Description, loc.Category, loc.Latitude, loc.Longitude, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get location id: %w", err)
	}
	loc.ID = id
	loc.CreatedAt = now
	loc.UpdatedAt = now
	return nil
}

// GetByID retrieves a location by ID, returning nil when not found
func (r *LocationRepository) GetByID(id int64) (*models.Location, error) {
	var loc models.Location
	err := r.db.QueryRow("SELECT "+locationColumns+" FROM locations WHERE id = ?", id).Scan(
		&loc.ID, &loc.UserID, &loc.Name, &loc.Description, &loc.Category,
		&loc.Latitude, &loc.Longitude, &loc.AvgRating, &loc.ReviewCount,
		&loc.CreatedAt, &loc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &loc, nil
}

// List retrieves locations with filtering and pagination
func (r *LocationRepository) List(filter models.LocationFilter) ([]models.Location, int64, error) {
	conditions, args := filterConditions(filter)

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM locations"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count locations: %w", err)
	}

	query := "SELECT " + locationColumns + " FROM locations" + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations, err := scanLocations(rows)
	if err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

// ListInBounds retrieves all locations inside a bounding box, capped at
// MaxMapResultSize rows, for map clustering and heatmap passes
func (r *LocationRepository) ListInBounds(filter models.MapFilter) ([]models.Location, error) {
	conditions := []string{
		"latitude BETWEEN ? AND ?",
		"longitude BETWEEN ? AND ?",
	}
	args := []interface{}{filter.MinLat, filter.MaxLat, filter.MinLon, filter.MaxLon}

	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.MinRating > 0 {
		conditions = append(conditions, "avg_rating >= ?")
		args = append(args, filter.MinRating)
	}
	if filter.Query != "" {
		conditions = append(conditions, "(name LIKE ? OR description LIKE ?)")
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}

	query := "SELECT " + locationColumns + " FROM locations WHERE " +
		strings.Join(conditions, " AND ") + " ORDER BY id LIMIT ?"
	args = append(args, MaxMapResultSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations in bounds: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

// Update persists the mutable fields of a location
func (r *LocationRepository) Update(loc *models.Location) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE locations SET name = ?, description = ?, category = ?, latitude = ?, longitude = ?, updated_at = ?
		WHERE id = ?`,
		loc.Name, loc.Description, loc.Category, loc.Latitude, loc.Longitude, now, loc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	loc.UpdatedAt = now
	return nil
}

// Delete removes a location
func (r *LocationRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM locations WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

// UpdateRatingStats refreshes the denormalized rating aggregate of a location
func (r *LocationRepository) UpdateRatingStats(locationID int64, avg float64, count int64) error {
	_, err := r.db.Exec("UPDATE locations SET avg_rating = ?, review_count = ? WHERE id = ?", avg, count, locationID)
	if err != nil {
		return fmt.Errorf("failed to update rating stats: %w", err)
	}
	return nil
}

// CountByUser returns the number of locations submitted by a user
func (r *LocationRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM locations WHERE user_id = ?", userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return count, nil
}

func filterConditions(filter models.LocationFilter) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Query != "" {
		conditions = append(conditions, "(name LIKE ? OR description LIKE ?)")
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.MinRating > 0 {
		conditions = append(conditions, "avg_rating >= ?")
		args = append(args, filter.MinRating)
	}
	if filter.UserID > 0 {
		conditions = append(conditions, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.HasBounds() {
		conditions = append(conditions, "latitude BETWEEN ? AND ?", "longitude BETWEEN ? AND ?")
		args = append(args, filter.MinLat, filter.MaxLat, filter.MinLon, filter.MaxLon)
	}

	return conditions, args
}

func scanLocations(rows *sql.Rows) ([]models.Location, error) {
	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(
			&loc.ID, &loc.UserID, &loc.Name, &loc.Description, &loc.Category,
			&loc.Latitude, &loc.Longitude, &loc.AvgRating, &loc.ReviewCount,
			&loc.CreatedAt, &loc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}
