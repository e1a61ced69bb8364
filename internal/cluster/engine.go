// Package cluster groups nearby map markers by on-screen pixel distance,
// so that grouping follows the zoom level: at continent zoom many markers
// collapse into aggregate badges, at street zoom few or none do.
//
// Grouping is a pure function of the input: the engine keeps no state
// between passes and every pass rebuilds its groups from scratch.
package cluster

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeThreshold is returned before any projection work when the
// pixel threshold is negative. A threshold of 0 is valid and disables
// grouping entirely.
var ErrNegativeThreshold = errors.New("cluster: threshold must be non-negative")

// ErrNilProjector is returned when no projector is supplied.
var ErrNilProjector = errors.New("cluster: nil projector")

// GeoPoint is one input marker: a stable identifier plus a geographic
// coordinate. Attributes beyond these are owned by the caller.
type GeoPoint struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ScreenPoint is the pixel-space projection of a GeoPoint under the
// current viewport. Derived per pass, never stored.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Projector maps a geographic coordinate to screen space. It must behave
// as a pure function for the duration of one Group call; the engine calls
// it exactly once per point.
type Projector interface {
	Project(p GeoPoint) (ScreenPoint, error)
}

// ProjectorFunc adapts a plain function to the Projector interface.
type ProjectorFunc func(GeoPoint) (ScreenPoint, error)

// Project implements Projector.
func (f ProjectorFunc) Project(p GeoPoint) (ScreenPoint, error) { return f(p) }

// ProjectionError reports a projector failure for a specific point.
// It aborts the whole pass; Group never returns a partial result.
type ProjectionError struct {
	PointID string
	Err     error
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("cluster: projecting point %q: %v", e.PointID, e.Err)
}

func (e *ProjectionError) Unwrap() error { return e.Err }

// Coordinate is a bare geographic coordinate.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bounds is a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Coordinate {
	return Coordinate{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// Cluster is a transient aggregate of two or more nearby points. Its
// centroid is the center of the members' bounding box, not the mean of
// their coordinates. PointIDs keeps the members in input order.
type Cluster struct {
	Centroid Coordinate `json:"centroid"`
	Bounds   Bounds     `json:"bounds"`
	PointIDs []string   `json:"pointIds"`
	Count    int        `json:"count"`
}

// Result is the output of one grouping pass. Every input point appears in
// exactly one cluster or exactly once among the singletons.
type Result struct {
	Clusters   []Cluster  `json:"clusters"`
	Singletons []GeoPoint `json:"singletons"`
}

// Total returns the number of input points the result accounts for.
func (r *Result) Total() int {
	n := len(r.Singletons)
	for _, c := range r.Clusters {
		n += c.Count
	}
	return n
}

// Group partitions points into clusters and singletons.
//
// Each pass projects every point once, then repeatedly takes the first
// unprocessed point as a seed and pulls in every remaining unprocessed
// point within thresholdPixels (inclusive) of the seed's screen position.
// Membership is measured against the seed only, never against other group
// members, so grouping is deliberately not transitive; callers rely on
// this for stable behavior across passes and it must not be changed to a
// transitive closure.
//
// A projector error for any point fails the whole call. Points carrying
// duplicate identifiers are not deduplicated; each occurrence is grouped
// independently. Coordinates are not range-checked here, that belongs to
// ingestion.
func Group(points []GeoPoint, proj Projector, thresholdPixels float64) (*Result, error) {
	if thresholdPixels < 0 {
		return nil, ErrNegativeThreshold
	}
	if proj == nil {
		return nil, ErrNilProjector
	}

	screens := make([]ScreenPoint, len(points))
	for i, p := range points {
		sp, err := proj.Project(p)
		if err != nil {
			return nil, &ProjectionError{PointID: p.ID, Err: err}
		}
		screens[i] = sp
	}

	result := &Result{}
	grouped := make([]bool, len(points))

	for i := range points {
		if grouped[i] {
			continue
		}
		grouped[i] = true

		// Seed scan: compare remaining points to the seed only.
		members := []int{i}
		for j := i + 1; j < len(points); j++ {
			if grouped[j] {
				continue
			}
			if pixelDistance(screens[i], screens[j]) <= thresholdPixels {
				grouped[j] = true
				members = append(members, j)
			}
		}

		if len(members) == 1 {
			result.Singletons = append(result.Singletons, points[i])
			continue
		}
		result.Clusters = append(result.Clusters, buildCluster(points, members))
	}

	return result, nil
}

func buildCluster(points []GeoPoint, members []int) Cluster {
	bounds := Bounds{
		MinLat: math.MaxFloat64,
		MinLon: math.MaxFloat64,
		MaxLat: -math.MaxFloat64,
		MaxLon: -math.MaxFloat64,
	}
	ids := make([]string, len(members))
	for i, m := range members {
		p := points[m]
		ids[i] = p.ID
		bounds.MinLat = math.Min(bounds.MinLat, p.Lat)
		bounds.MaxLat = math.Max(bounds.MaxLat, p.Lat)
		bounds.MinLon = math.Min(bounds.MinLon, p.Lon)
		bounds.MaxLon = math.Max(bounds.MaxLon, p.Lon)
	}
	return Cluster{
		Centroid: bounds.Center(),
		Bounds:   bounds,
		PointIDs: ids,
		Count:    len(members),
	}
}

func pixelDistance(a, b ScreenPoint) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
