package service

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/database"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/repository"
)

// testEnv bundles a fresh database and the repositories the services need
type testEnv struct {
	db               *sql.DB
	userRepo         *repository.UserRepository
	locationRepo     *repository.LocationRepository
	reviewRepo       *repository.ReviewRepository
	messageRepo      *repository.MessageRepository
	followRepo       *repository.FollowRepository
	notificationRepo *repository.NotificationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))

	return &testEnv{
		db:               db,
		userRepo:         repository.NewUserRepository(db),
		locationRepo:     repository.NewLocationRepository(db),
		reviewRepo:       repository.NewReviewRepository(db),
		messageRepo:      repository.NewMessageRepository(db),
		followRepo:       repository.NewFollowRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
	}
}

func (e *testEnv) user(t *testing.T, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, e.userRepo.Create(user))
	return user
}

func (e *testEnv) location(t *testing.T, userID int64, name string, lat, lon float64) *models.Location {
	t.Helper()

	loc := &models.Location{
		UserID:    userID,
		Name:      name,
		Category:  "nature",
		Latitude:  lat,
		Longitude: lon,
	}
	require.NoError(t, e.locationRepo.Create(loc))
	return loc
}
