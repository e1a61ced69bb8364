package service

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

func newAuthService(env *testEnv) *AuthService {
	return NewAuthService(env.userRepo, "test-secret", time.Hour)
}

func TestRegisterIssuesToken(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	resp, err := svc.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.NotZero(t, resp.User.ID)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	// The token subject carries the user id
	token, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, strconv.FormatInt(resp.User.ID, 10), claims.Subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	_, err := svc.Register(models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{Username: "other", Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	_, err := svc.Register(models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{Username: "alice", Email: "other@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	_, err := svc.Register(models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	_, err := svc.Register(models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	_, err := svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
