package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportProjectorCenterMapsToScreenCenter(t *testing.T) {
	v := Viewport{CenterLat: 48.8566, CenterLon: 2.3522, Zoom: 12, Width: 1024, Height: 768}

	sp, err := v.Projector().Project(pt("center", 48.8566, 2.3522))
	require.NoError(t, err)
	assert.InDelta(t, 512, sp.X, 1e-6)
	assert.InDelta(t, 384, sp.Y, 1e-6)
}

func TestViewportProjectorOrientation(t *testing.T) {
	v := Viewport{CenterLat: 0, CenterLon: 0, Zoom: 4, Width: 800, Height: 600}
	proj := v.Projector()

	east, err := proj.Project(pt("e", 0, 10))
	require.NoError(t, err)
	west, err := proj.Project(pt("w", 0, -10))
	require.NoError(t, err)
	north, err := proj.Project(pt("n", 10, 0))
	require.NoError(t, err)
	south, err := proj.Project(pt("s", -10, 0))
	require.NoError(t, err)

	assert.Greater(t, east.X, west.X)
	// Screen Y grows downward, so north projects above south.
	assert.Less(t, north.Y, south.Y)
}

func TestViewportProjectorZoomScalesPixelDistance(t *testing.T) {
	a := pt("a", 10, 10)
	b := pt("b", 10, 11)

	distAt := func(zoom float64) float64 {
		v := Viewport{CenterLat: 10, CenterLon: 10.5, Zoom: zoom, Width: 500, Height: 500}
		proj := v.Projector()
		sa, err := proj.Project(a)
		require.NoError(t, err)
		sb, err := proj.Project(b)
		require.NoError(t, err)
		return pixelDistance(sa, sb)
	}

	// One zoom level doubles the world size, so pixel distances double.
	assert.InDelta(t, 2*distAt(5), distAt(6), 1e-6)
}

func TestViewportProjectorDefaultTileSize(t *testing.T) {
	// Equator spans the full world width: at zoom 0 with 256px tiles two
	// antimeridian points are 256px apart.
	v := Viewport{Zoom: 0, Width: 0, Height: 0}
	proj := v.Projector()

	lo, err := proj.Project(pt("w", 0, -180))
	require.NoError(t, err)
	hi, err := proj.Project(pt("e", 0, 180))
	require.NoError(t, err)
	assert.InDelta(t, 256, hi.X-lo.X, 1e-9)
}

func TestMercatorClampsPolarLatitudes(t *testing.T) {
	_, y := mercator(89.9999, 0)
	assert.GreaterOrEqual(t, y, 0.0)
	_, y = mercator(-89.9999, 0)
	assert.LessOrEqual(t, y, 1.0)
}

func TestViewportProjectorDrivesGrouping(t *testing.T) {
	// Two markers a few hundred meters apart: grouped at city zoom,
	// separate at street zoom.
	points := []GeoPoint{
		pt("museum", 48.8606, 2.3376),
		pt("cafe", 48.8610, 2.3390),
	}

	low := Viewport{CenterLat: 48.86, CenterLon: 2.34, Zoom: 11, Width: 1024, Height: 768}
	result, err := Group(points, low.Projector(), 40)
	require.NoError(t, err)
	assert.Len(t, result.Clusters, 1)

	high := Viewport{CenterLat: 48.86, CenterLon: 2.34, Zoom: 18, Width: 1024, Height: 768}
	result, err = Group(points, high.Projector(), 40)
	require.NoError(t, err)
	assert.Empty(t, result.Clusters)
	assert.Len(t, result.Singletons, 2)
}
