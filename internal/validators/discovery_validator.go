package validators

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ViewerLocation is the parsed viewer coordinate from the query string.
type ViewerLocation struct {
	Latitude  float64
	Longitude float64
}

// NearbyQueryRequest carries the discovery query parameters after parsing.
type NearbyQueryRequest struct {
	Latitude   string `form:"latitude" validate:"required,latitude_str"`
	Longitude  string `form:"longitude" validate:"required,longitude_str"`
	CategoryID string `form:"category_id" validate:"omitempty,object_id"`
	Search     string `form:"search" validate:"omitempty,max=200"`
	Type       string `form:"type" validate:"omitempty,oneof=business freelancer"`
	OffersOnly bool   `form:"offers_only"`
}

// ParseViewerLocation validates latitude/longitude query parameters against
// the decimal-degree bounds and returns the parsed coordinate. On failure it
// returns a field->message map suitable for a 400 response.
func ParseViewerLocation(c *gin.Context) (*ViewerLocation, map[string]string) {
	errs := make(map[string]string)

	latStr := c.Query("latitude")
	lngStr := c.Query("longitude")

	if latStr == "" {
		errs["latitude"] = "latitude is required"
	} else if !IsValidLatitudeString(latStr) {
		errs["latitude"] = "Latitude must be a decimal degree between -90 and 90"
	}

	if lngStr == "" {
		errs["longitude"] = "longitude is required"
	} else if !IsValidLongitudeString(lngStr) {
		errs["longitude"] = "Longitude must be a decimal degree between -180 and 180"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	// Regex already guarantees a parseable decimal in range.
	lat, _ := strconv.ParseFloat(latStr, 64)
	lng, _ := strconv.ParseFloat(lngStr, 64)

	return &ViewerLocation{Latitude: lat, Longitude: lng}, nil
}

// ValidateNearbyQuery binds and validates the full discovery query.
func ValidateNearbyQuery(c *gin.Context) (*NearbyQueryRequest, map[string]string) {
	var req NearbyQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, map[string]string{"query": err.Error()}
	}

	if verrs := ValidateStruct(&req); len(verrs) > 0 {
		return nil, verrs.ToDetails()
	}

	return &req, nil
}
