package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets its ID and timestamps
func (r *UserRepository) Create(user *models.User) error {
	now := time.Now().UTC()
	result, err := r.db.Exec(`
		INSERT INTO users (username, email, password_hash, bio, avatar_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash, user.Bio, user.AvatarURL, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// GetByID retrieves a user by ID, returning nil when not found
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	return r.getOne("SELECT id, username, email, password_hash, bio, avatar_url, created_at, updated_at FROM users WHERE id = ?", id)
}

// GetByEmail retrieves a user by email, returning nil when not found
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getOne("SELECT id, username, email, password_hash, bio, avatar_url, created_at, updated_at FROM users WHERE email = ?", email)
}

// GetByUsername retrieves a user by username, returning nil when not found
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	return r.getOne("SELECT id, username, email, password_hash, bio, avatar_url, created_at, updated_at FROM users WHERE username = ?", username)
}

func (r *UserRepository) getOne(query string, arg interface{}) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Bio, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// UpdateProfile updates the mutable profile fields of a user
func (r *UserRepository) UpdateProfile(user *models.User) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE users SET bio = ?, avatar_url = ?, updated_at = ? WHERE id = ?`,
		user.Bio, user.AvatarURL, now, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	user.UpdatedAt = now
	return nil
}
