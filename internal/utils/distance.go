package utils

import (
	"fmt"
	"math"
)

// CalculateDistance returns the great-circle distance in kilometers between
// two points given as decimal-degree latitude/longitude pairs.
func CalculateDistance(lat1, lng1, lat2, lng2 float64) float64 {
	return haversineDistance(lat1, lng1, lat2, lng2)
}

func haversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLng := lng2Rad - lng1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

// IsWithinRadius reports whether the point is within radiusKM kilometers of the center.
func IsWithinRadius(centerLat, centerLng, pointLat, pointLng, radiusKM float64) bool {
	return CalculateDistance(centerLat, centerLng, pointLat, pointLng) <= radiusKM
}

// FormatDistance renders a distance in kilometers as the API's display string.
func FormatDistance(distanceKM float64) string {
	return fmt.Sprintf("%.2f", distanceKM)
}

// KMToMeters converts kilometers to meters for $maxDistance / $geoNear bounds.
func KMToMeters(km float64) float64 {
	return km * 1000
}

// KMToRadians converts kilometers to radians on the Earth sphere.
func KMToRadians(km float64) float64 {
	return km / EarthRadiusKM
}
