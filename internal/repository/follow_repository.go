package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

// FollowRepository handles database operations for follow edges
type FollowRepository struct {
	db *sql.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *sql.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create inserts a follow edge; inserting an existing edge is a no-op
func (r *FollowRepository) Create(followerID, followeeID int64) error {
	_, err := r.db.Exec(`
		INSERT OR IGNORE INTO follows (follower_id, followee_id, created_at)
		VALUES (?, ?, ?)`,
		followerID, followeeID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

// Delete removes a follow edge
func (r *FollowRepository) Delete(followerID, followeeID int64) error {
	_, err := r.db.Exec("DELETE FROM follows WHERE follower_id = ? AND followee_id = ?", followerID, followeeID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

// Exists reports whether follower follows followee
func (r *FollowRepository) Exists(followerID, followeeID int64) (bool, error) {
	var one int
	err := r.db.QueryRow(
		"SELECT 1 FROM follows WHERE follower_id = ? AND followee_id = ?",
		followerID, followeeID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return true, nil
}

// Followers lists the users following userID
func (r *FollowRepository) Followers(userID int64) ([]models.User, error) {
	return r.listUsers(`
		SELECT u.id, u.username, u.email, u.password_hash, u.bio, u.avatar_url, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followee_id = ?
		ORDER BY f.created_at DESC`, userID)
}

// Following lists the users userID follows
func (r *FollowRepository) Following(userID int64) ([]models.User, error) {
	return r.listUsers(`
		SELECT u.id, u.username, u.email, u.password_hash, u.bio, u.avatar_url, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON u.id = f.followee_id
		WHERE f.follower_id = ?
		ORDER BY f.created_at DESC`, userID)
}

// Counts returns the follower/following counters of a user
func (r *FollowRepository) Counts(userID int64) (models.FollowStats, error) {
	stats := models.FollowStats{UserID: userID}
	err := r.db.QueryRow("SELECT COUNT(*) FROM follows WHERE followee_id = ?", userID).Scan(&stats.FollowerCount)
	if err != nil {
		return stats, fmt.Errorf("failed to count followers: %w", err)
	}
	err = r.db.QueryRow("SELECT COUNT(*) FROM follows WHERE follower_id = ?", userID).Scan(&stats.FollowingCount)
	if err != nil {
		return stats, fmt.Errorf("failed to count following: %w", err)
	}
	return stats, nil
}

func (r *FollowRepository) listUsers(query string, arg interface{}) ([]models.User, error) {
	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query follows: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Bio, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
