package cluster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planar treats lat/lon directly as pixel coordinates, so test cases can
// state screen distances explicitly.
func planar() Projector {
	return ProjectorFunc(func(p GeoPoint) (ScreenPoint, error) {
		return ScreenPoint{X: p.Lon, Y: p.Lat}, nil
	})
}

func pt(id string, lat, lon float64) GeoPoint {
	return GeoPoint{ID: id, Lat: lat, Lon: lon}
}

func TestGroupEmptyInput(t *testing.T) {
	result, err := Group(nil, planar(), 20)
	require.NoError(t, err)
	assert.Empty(t, result.Clusters)
	assert.Empty(t, result.Singletons)

	result, err = Group([]GeoPoint{}, planar(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total())
}

func TestGroupTwoNearPointsCluster(t *testing.T) {
	points := []GeoPoint{pt("a", 0, 0), pt("b", 0, 10)}

	result, err := Group(points, planar(), 20)
	require.NoError(t, err)

	require.Len(t, result.Clusters, 1)
	assert.Empty(t, result.Singletons)
	assert.Equal(t, []string{"a", "b"}, result.Clusters[0].PointIDs)
	assert.Equal(t, 2, result.Clusters[0].Count)
}

func TestGroupTwoFarPointsStaySeparate(t *testing.T) {
	points := []GeoPoint{pt("a", 0, 0), pt("b", 0, 100)}

	result, err := Group(points, planar(), 20)
	require.NoError(t, err)

	assert.Empty(t, result.Clusters)
	require.Len(t, result.Singletons, 2)
	assert.Equal(t, "a", result.Singletons[0].ID)
	assert.Equal(t, "b", result.Singletons[1].ID)
}

func TestGroupZeroThresholdAllSingletons(t *testing.T) {
	points := []GeoPoint{pt("a", 0, 0), pt("b", 0, 1), pt("c", 1, 0), pt("d", 2, 2)}

	result, err := Group(points, planar(), 0)
	require.NoError(t, err)

	assert.Empty(t, result.Clusters)
	assert.Len(t, result.Singletons, len(points))
}

func TestGroupZeroThresholdColocatedPointsStillCluster(t *testing.T) {
	// Distance 0 <= threshold 0, so exact screen duplicates group.
	points := []GeoPoint{pt("a", 5, 5), pt("b", 5, 5)}

	result, err := Group(points, planar(), 0)
	require.NoError(t, err)

	require.Len(t, result.Clusters, 1)
	assert.Equal(t, []string{"a", "b"}, result.Clusters[0].PointIDs)
}

func TestGroupThresholdBoundaryIsInclusive(t *testing.T) {
	// Exactly at the threshold joins.
	result, err := Group([]GeoPoint{pt("a", 0, 0), pt("b", 0, 20)}, planar(), 20)
	require.NoError(t, err)
	require.Len(t, result.Clusters, 1)

	// Just past it does not.
	result, err = Group([]GeoPoint{pt("a", 0, 0), pt("b", 0, 20.001)}, planar(), 20)
	require.NoError(t, err)
	assert.Empty(t, result.Clusters)
	assert.Len(t, result.Singletons, 2)
}

func TestGroupSeedOnlyMembership(t *testing.T) {
	// Q is within 9px of P but 19px from the seed S. Membership is
	// measured against the seed only, so Q must stay out even though it
	// is close to a member. Pins the non-transitive grouping behavior.
	points := []GeoPoint{pt("s", 0, 0), pt("p", 0, 10), pt("q", 0, 19)}

	result, err := Group(points, planar(), 10)
	require.NoError(t, err)

	require.Len(t, result.Clusters, 1)
	assert.Equal(t, []string{"s", "p"}, result.Clusters[0].PointIDs)
	require.Len(t, result.Singletons, 1)
	assert.Equal(t, "q", result.Singletons[0].ID)
}

func TestGroupSingleMemberClusterImpossible(t *testing.T) {
	points := []GeoPoint{
		pt("a", 0, 0), pt("b", 0, 5),
		pt("c", 0, 50), pt("d", 0, 200),
	}

	result, err := Group(points, planar(), 10)
	require.NoError(t, err)

	for _, c := range result.Clusters {
		assert.GreaterOrEqual(t, c.Count, 2)
		assert.GreaterOrEqual(t, len(c.PointIDs), 2)
	}
	assert.Len(t, result.Singletons, 2)
}

func TestGroupPartitionInvariant(t *testing.T) {
	points := []GeoPoint{
		pt("a", 0, 0), pt("b", 0, 8), pt("c", 0, 16), pt("d", 30, 30),
		pt("e", 30, 38), pt("f", -20, 100), pt("g", 55, -3), pt("h", 55.1, -3.1),
	}

	for _, threshold := range []float64{0, 5, 10, 25, 1000} {
		result, err := Group(points, planar(), threshold)
		require.NoError(t, err)

		seen := make(map[string]int)
		for _, c := range result.Clusters {
			for _, id := range c.PointIDs {
				seen[id]++
			}
		}
		for _, s := range result.Singletons {
			seen[s.ID]++
		}

		assert.Equal(t, len(points), result.Total(), "threshold %v", threshold)
		assert.Len(t, seen, len(points), "threshold %v", threshold)
		for id, n := range seen {
			assert.Equal(t, 1, n, "point %s appeared %d times at threshold %v", id, n, threshold)
		}
	}
}

func TestGroupDeterministic(t *testing.T) {
	points := []GeoPoint{
		pt("a", 1, 1), pt("b", 2, 2), pt("c", 3, 3),
		pt("d", 80, 80), pt("e", 81, 81),
	}

	first, err := Group(points, planar(), 5)
	require.NoError(t, err)
	second, err := Group(points, planar(), 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGroupBoundingBoxCentroid(t *testing.T) {
	points := []GeoPoint{pt("a", 10, 10), pt("b", 20, 30)}

	result, err := Group(points, planar(), 100)
	require.NoError(t, err)

	require.Len(t, result.Clusters, 1)
	c := result.Clusters[0]
	assert.InDelta(t, 15, c.Centroid.Lat, 1e-9)
	assert.InDelta(t, 20, c.Centroid.Lon, 1e-9)
	assert.Equal(t, Bounds{MinLat: 10, MinLon: 10, MaxLat: 20, MaxLon: 30}, c.Bounds)
}

func TestGroupCentroidIsNotMemberMean(t *testing.T) {
	// Three points skewed toward one corner: the bounding-box midpoint
	// differs from the arithmetic mean, and the midpoint wins.
	points := []GeoPoint{pt("a", 10, 10), pt("b", 11, 11), pt("c", 20, 30)}

	result, err := Group(points, planar(), 100)
	require.NoError(t, err)

	require.Len(t, result.Clusters, 1)
	c := result.Clusters[0]
	assert.InDelta(t, 15, c.Centroid.Lat, 1e-9)
	assert.InDelta(t, 20, c.Centroid.Lon, 1e-9)
}

func TestGroupNegativeThreshold(t *testing.T) {
	called := false
	proj := ProjectorFunc(func(p GeoPoint) (ScreenPoint, error) {
		called = true
		return ScreenPoint{}, nil
	})

	_, err := Group([]GeoPoint{pt("a", 0, 0)}, proj, -1)
	require.ErrorIs(t, err, ErrNegativeThreshold)
	assert.False(t, called, "must fail before any projection work")
}

func TestGroupNilProjector(t *testing.T) {
	_, err := Group([]GeoPoint{pt("a", 0, 0)}, nil, 10)
	require.ErrorIs(t, err, ErrNilProjector)
}

func TestGroupProjectionFailureAbortsPass(t *testing.T) {
	boom := errors.New("tile transform unavailable")
	proj := ProjectorFunc(func(p GeoPoint) (ScreenPoint, error) {
		if p.ID == "bad" {
			return ScreenPoint{}, boom
		}
		return ScreenPoint{X: p.Lon, Y: p.Lat}, nil
	})

	result, err := Group([]GeoPoint{pt("a", 0, 0), pt("bad", 1, 1), pt("c", 2, 2)}, proj, 10)
	assert.Nil(t, result, "no partial result on projection failure")
	require.Error(t, err)
	require.ErrorIs(t, err, boom)

	var perr *ProjectionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad", perr.PointID)
}

func TestGroupDuplicateIDsCarriedThrough(t *testing.T) {
	// Duplicate identifiers are a caller error; the engine keeps each
	// occurrence and the partition invariant holds per occurrence.
	points := []GeoPoint{pt("x", 0, 0), pt("x", 0, 1)}

	result, err := Group(points, planar(), 10)
	require.NoError(t, err)
	require.Len(t, result.Clusters, 1)
	assert.Equal(t, []string{"x", "x"}, result.Clusters[0].PointIDs)
}

func TestGroupSeedOrderFollowsInput(t *testing.T) {
	// b is within range of both a and c; a comes first so a seeds the
	// group and c, too far from a, stays alone.
	points := []GeoPoint{pt("a", 0, 0), pt("b", 0, 10), pt("c", 0, 18)}

	result, err := Group(points, planar(), 10)
	require.NoError(t, err)

	require.Len(t, result.Clusters, 1)
	assert.Equal(t, []string{"a", "b"}, result.Clusters[0].PointIDs)
	require.Len(t, result.Singletons, 1)
	assert.Equal(t, "c", result.Singletons[0].ID)
}
