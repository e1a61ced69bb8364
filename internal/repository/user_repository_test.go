package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

func TestUserCreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db, "alice")
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestUserGetMissingReturnsNil(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	got, err := repo.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserGetByEmailAndUsername(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	seedUser(t, db, "bob")

	byEmail, err := repo.GetByEmail("bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)

	byName, err := repo.GetByUsername("bob")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, byEmail.ID, byName.ID)
}

func TestUserDuplicateUsernameFails(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	seedUser(t, db, "carol")

	err := repo.Create(&models.User{
		Username:     "carol",
		Email:        "other@example.com",
		PasswordHash: "hash",
	})
	assert.Error(t, err)
}

func TestUserUpdateProfile(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, "dave")

	user.Bio = "world traveler"
	user.AvatarURL = "https://example.com/dave.png"
	require.NoError(t, repo.UpdateProfile(user))

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "world traveler", got.Bio)
	assert.Equal(t, "https://example.com/dave.png", got.AvatarURL)
}
