package utils

// IsValidCoordinates reports whether the pair is a real point on the globe.
func IsValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
