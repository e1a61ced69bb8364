package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/database"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

// testDB opens a throwaway database with the full schema applied
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func seedUser(t *testing.T, db *sql.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func seedLocation(t *testing.T, db *sql.DB, userID int64, name string, lat, lon float64) *models.Location {
	t.Helper()

	loc := &models.Location{
		UserID:    userID,
		Name:      name,
		Category:  "nature",
		Latitude:  lat,
		Longitude: lon,
	}
	require.NoError(t, NewLocationRepository(db).Create(loc))
	return loc
}
