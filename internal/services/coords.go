package services

import (
	"fmt"
	"strconv"

	"nearmarket/internal/utils"
)

// parseCoordinatePair converts validated latitude/longitude strings into
// floats. Requests reach services only after the regex bounds check, so a
// failure here means a programming error upstream.
func parseCoordinatePair(latStr, lngStr string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q", latStr)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q", lngStr)
	}
	if !utils.IsValidCoordinates(lat, lng) {
		return 0, 0, fmt.Errorf("coordinates out of range")
	}
	return lat, lng, nil
}
