package cluster

import "math"

// DefaultTileSize matches the 256px tiles used by OSM and Google Maps.
const DefaultTileSize = 256

// Viewport describes the map's visible region: a center coordinate, a
// zoom level and the pixel size of the map element. It supplies the
// spherical-mercator projector used for production clustering passes.
type Viewport struct {
	CenterLat float64
	CenterLon float64
	Zoom      float64
	Width     float64
	Height    float64
	TileSize  float64
}

// Projector returns a mercator projector placing the viewport center at
// the middle of the screen. Latitudes are clamped to the mercator range,
// as web maps do.
func (v Viewport) Projector() Projector {
	tileSize := v.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	worldSize := tileSize * math.Exp2(v.Zoom)
	centerX, centerY := mercator(v.CenterLat, v.CenterLon)

	return ProjectorFunc(func(p GeoPoint) (ScreenPoint, error) {
		x, y := mercator(p.Lat, p.Lon)
		return ScreenPoint{
			X: (x-centerX)*worldSize + v.Width/2,
			Y: (y-centerY)*worldSize + v.Height/2,
		}, nil
	})
}

// mercator maps latitude/longitude to spherical mercator in [0..1].
func mercator(lat, lon float64) (x, y float64) {
	x = lon/360.0 + 0.5
	sin := math.Sin(lat * math.Pi / 180.0)
	y = 0.5 - 0.25*math.Log((1+sin)/(1-sin))/math.Pi
	if y < 0 {
		y = 0
	}
	if y > 1 {
		y = 1
	}
	return x, y
}
