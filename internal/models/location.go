package models

import (
	"nearmarket/internal/utils"
)

// GeoPoint is a stored GeoJSON Point. Coordinates are always
// [longitude, latitude]; NewGeoPoint is the only place the API's
// latitude/longitude order is converted to storage order.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(lat, lng float64) *GeoPoint {
	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{lng, lat},
	}
}

func (g *GeoPoint) Latitude() float64 {
	if g == nil || len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

func (g *GeoPoint) Longitude() float64 {
	if g == nil || len(g.Coordinates) < 1 {
		return 0
	}
	return g.Coordinates[0]
}

// IsUsable reports whether the point carries a well-formed coordinate pair.
// A nil or malformed point is treated as "no location" by callers.
func (g *GeoPoint) IsUsable() bool {
	if g == nil || len(g.Coordinates) < 2 {
		return false
	}
	return utils.IsValidCoordinates(g.Coordinates[1], g.Coordinates[0])
}
