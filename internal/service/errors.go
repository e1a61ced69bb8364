package service

import "errors"

// Sentinel errors the handlers translate into HTTP statuses
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateReview    = errors.New("location already reviewed by this user")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrSelfMessage        = errors.New("cannot message yourself")
	ErrInvalidBounds      = errors.New("invalid viewport bounds")
)
