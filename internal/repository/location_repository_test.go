package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

func TestLocationCreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewLocationRepository(db)
	user := seedUser(t, db, "alice")

	loc := seedLocation(t, db, user.ID, "Eiffel Tower", 48.8584, 2.2945)
	assert.NotZero(t, loc.ID)

	got, err := repo.GetByID(loc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Eiffel Tower", got.Name)
	assert.Equal(t, 48.8584, got.Latitude)
	assert.Equal(t, float64(0), got.AvgRating)
}

func TestLocationListPagination(t *testing.T) {
	db := testDB(t)
	repo := NewLocationRepository(db)
	user := seedUser(t, db, "alice")

	for i := 0; i < 5; i++ {
		seedLocation(t, db, user.ID, "Spot", 10, 10)
	}

	locations, total, err := repo.List(models.LocationFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, locations, 2)

	locations, _, err = repo.List(models.LocationFilter{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestLocationListFilters(t *testing.T) {
	db := testDB(t)
	repo := NewLocationRepository(db)
	user := seedUser(t, db, "alice")

	nature := seedLocation(t, db, user.ID, "Hidden Waterfall", 10, 10)

	food := &models.Location{UserID: user.ID, Name: "Night Market", Category: "food", Latitude: 20, Longitude: 20}
	require.NoError(t, repo.Create(food))

	byCategory, total, err := repo.List(models.LocationFilter{Category: "food", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, food.ID, byCategory[0].ID)

	byQuery, _, err := repo.List(models.LocationFilter{Query: "waterfall", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, nature.ID, byQuery[0].ID)
}

func TestLocationListInBounds(t *testing.T) {
	db := testDB(t)
	repo := NewLocationRepository(db)
	user := seedUser(t, db, "alice")

	inside := seedLocation(t, db, user.ID, "Inside", 48.85, 2.35)
	seedLocation(t, db, user.ID, "Outside", 51.50, -0.12)

	locations, err := repo.ListInBounds(models.MapFilter{
		MinLat: 48.0, MaxLat: 49.0,
		MinLon: 2.0, MaxLon: 3.0,
	})
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, inside.ID, locations[0].ID)
}

func TestLocationListInBoundsCategoryFilter(t *testing.T) {
	db := testDB(t)
	repo := NewLocationRepository(db)
	user := seedUser(t, db, "alice")

	seedLocation(t, db, user.ID, "Forest", 10, 10)
	food := &models.Location{UserID: user.ID, Name: "Cafe", Category: "food", Latitude: 10.001, Longitude: 10.001}
	require.NoError(t, repo.Create(food))

	locations, err := repo.ListInBounds(models.MapFilter{
		MinLat: 9, MaxLat: 11, MinLon: 9, MaxLon: 11,
		Category: "food",
	})
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, food.ID, locations[0].ID)
}

func TestLocationUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	repo := NewLocationRepository(db)
	user := seedUser(t, db, "alice")
	loc := seedLocation(t, db, user.ID, "Old Name", 10, 10)

	loc.Name = "New Name"
	require.NoError(t, repo.Update(loc))

	got, err := repo.GetByID(loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)

	require.NoError(t, repo.Delete(loc.ID))
	got, err = repo.GetByID(loc.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocationUpdateRatingStats(t *testing.T) {
	db := testDB(t)
	repo := NewLocationRepository(db)
	user := seedUser(t, db, "alice")
	loc := seedLocation(t, db, user.ID, "Spot", 10, 10)

	require.NoError(t, repo.UpdateRatingStats(loc.ID, 4.5, 2))

	got, err := repo.GetByID(loc.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.AvgRating)
	assert.Equal(t, int64(2), got.ReviewCount)
}

func TestLocationCountByUser(t *testing.T) {
	db := testDB(t)
	repo := NewLocationRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	seedLocation(t, db, alice.ID, "One", 10, 10)
	seedLocation(t, db, alice.ID, "Two", 11, 11)

	count, err := repo.CountByUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByUser(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
