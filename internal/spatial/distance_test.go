package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Paris to London, roughly 343 km
	d := HaversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 343500, d, 2000)
}

func TestHaversineDistanceZero(t *testing.T) {
	d := HaversineDistance(48.8566, 2.3522, 48.8566, 2.3522)
	assert.InDelta(t, 0, d, 0.001)
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := HaversineDistance(40.7128, -74.0060, 34.0522, -118.2437)
	b := HaversineDistance(34.0522, -118.2437, 40.7128, -74.0060)
	assert.InDelta(t, a, b, 0.001)
}

func TestMidpoint(t *testing.T) {
	lat, lon := Midpoint(0, 0, 0, 10)
	assert.InDelta(t, 0, lat, 0.001)
	assert.InDelta(t, 5, lon, 0.001)
}

func TestBoundingBoxForRadiusContainsCircle(t *testing.T) {
	lat, lon := 48.8566, 2.3522
	radius := 5000.0

	minLat, minLon, maxLat, maxLon := BoundingBoxForRadius(lat, lon, radius)

	assert.Less(t, minLat, lat)
	assert.Greater(t, maxLat, lat)
	assert.Less(t, minLon, lon)
	assert.Greater(t, maxLon, lon)

	// The box edges must be at least the radius away from the center
	assert.GreaterOrEqual(t, HaversineDistance(lat, lon, maxLat, lon), radius-1)
	assert.GreaterOrEqual(t, HaversineDistance(lat, lon, lat, maxLon), radius-1)
}

func TestBoundingBoxForRadiusClampsPoles(t *testing.T) {
	minLat, _, maxLat, _ := BoundingBoxForRadius(89.9, 0, 100000)
	assert.GreaterOrEqual(t, minLat, -90.0)
	assert.LessOrEqual(t, maxLat, 90.0)
}
