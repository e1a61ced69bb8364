package models

import "time"

// User represents a registered account
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Bio          string    `json:"bio,omitempty" db:"bio"`
	AvatarURL    string    `json:"avatarUrl,omitempty" db:"avatar_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// RegisterRequest represents the payload for creating an account
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents the payload for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the payload for editing own profile
type UpdateProfileRequest struct {
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url"`
}

// AuthResponse is returned on successful register/login
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// Profile is a public view of a user with social counts
type Profile struct {
	User           User  `json:"user"`
	LocationCount  int64 `json:"locationCount"`
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
	// Set only when the request is authenticated
	IsFollowing bool `json:"isFollowing,omitempty"`
}
