package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Midpoint calculates the midpoint between two points
func Midpoint(lat1, lon1, lat2, lon2 float64) (float64, float64) {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)

	mid := s2.Interpolate(0.5, s2.PointFromLatLng(p1), s2.PointFromLatLng(p2))
	midLatLng := s2.LatLngFromPoint(mid)

	return midLatLng.Lat.Degrees(), midLatLng.Lng.Degrees()
}

// BoundingBoxForRadius returns the lat/lon box enclosing a circle of the
// given radius around a point, used to pre-filter radius searches in SQL
// before the exact Haversine check.
func BoundingBoxForRadius(lat, lon, radiusMeters float64) (minLat, minLon, maxLat, maxLon float64) {
	latDelta := radiusMeters / EarthRadiusMeters * 180 / math.Pi
	lonDelta := latDelta / math.Cos(lat*math.Pi/180)

	minLat = math.Max(lat-latDelta, -90)
	maxLat = math.Min(lat+latDelta, 90)
	minLon = math.Max(lon-lonDelta, -180)
	maxLon = math.Min(lon+lonDelta, 180)
	return minLat, minLon, maxLat, maxLon
}

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)
