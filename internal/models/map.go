package models

import "github.com/sumityadav0955/travel-guide-backend-go/internal/cluster"

// MapFilter represents the viewport and filters for a map marker request.
// Width/Height are the pixel size of the client's map element; Threshold
// overrides the configured clustering radius when >= 0 (-1 means default).
type MapFilter struct {
	MinLat    float64 `form:"minLat" binding:"min=-90,max=90"`
	MaxLat    float64 `form:"maxLat" binding:"min=-90,max=90"`
	MinLon    float64 `form:"minLon" binding:"min=-180,max=180"`
	MaxLon    float64 `form:"maxLon" binding:"min=-180,max=180"`
	Zoom      float64 `form:"zoom" binding:"min=0,max=22"`
	Width     float64 `form:"width"`
	Height    float64 `form:"height"`
	Threshold float64 `form:"threshold,default=-1"`
	Category  string  `form:"category"`
	MinRating float64 `form:"minRating"`
	Query     string  `form:"q"`
}

// MapResponse carries one clustering pass for the requested viewport
type MapResponse struct {
	Clusters   []cluster.Cluster  `json:"clusters"`
	Singletons []cluster.GeoPoint `json:"singletons"`
	Total      int                `json:"total"`
	Zoom       float64            `json:"zoom"`
	Threshold  float64            `json:"threshold"`
}

// HeatmapPoint represents one density cell on the map
type HeatmapPoint struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Intensity float64 `json:"intensity"` // Normalized 0-1
	Count     int     `json:"count"`
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	Points    []HeatmapPoint `json:"points"`
	Count     int            `json:"count"`
	MaxCount  int            `json:"maxCount"`
	Precision int            `json:"precision"`
}
