package validators

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseViewerLocation_Valid(t *testing.T) {
	c := queryContext(t, "latitude=10.01&longitude=76.01")

	loc, errs := ParseViewerLocation(c)
	require.Nil(t, errs)
	assert.Equal(t, 10.01, loc.Latitude)
	assert.Equal(t, 76.01, loc.Longitude)
}

func TestParseViewerLocation_BoundaryValues(t *testing.T) {
	for _, q := range []string{
		"latitude=90&longitude=180",
		"latitude=-90&longitude=-180",
		"latitude=0&longitude=0",
		// A literal plus sign must be percent-encoded in a query string.
		"latitude=%2B45.5&longitude=-120.25",
	} {
		c := queryContext(t, q)
		_, errs := ParseViewerLocation(c)
		assert.Nil(t, errs, "query %q should be valid", q)
	}
}

func TestParseViewerLocation_Missing(t *testing.T) {
	c := queryContext(t, "longitude=76.0")
	loc, errs := ParseViewerLocation(c)
	assert.Nil(t, loc)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "latitude")
}

func TestParseViewerLocation_OutOfRange(t *testing.T) {
	cases := []string{
		"latitude=91&longitude=76.0",
		"latitude=-90.5&longitude=76.0",
		"latitude=10.0&longitude=181",
		"latitude=10.0&longitude=-180.1",
		"latitude=abc&longitude=76.0",
		"latitude=10.0&longitude=",
	}
	for _, q := range cases {
		c := queryContext(t, q)
		loc, errs := ParseViewerLocation(c)
		assert.Nil(t, loc, "query %q should be rejected", q)
		assert.NotEmpty(t, errs)
	}
}

func TestValidateNearbyQuery(t *testing.T) {
	c := queryContext(t, "latitude=10.0&longitude=76.0&type=freelancer&search=shoes")
	req, errs := ValidateNearbyQuery(c)
	require.Nil(t, errs)
	assert.Equal(t, "freelancer", req.Type)
	assert.Equal(t, "shoes", req.Search)

	c = queryContext(t, "latitude=10.0&longitude=76.0&type=plumber")
	req, errs = ValidateNearbyQuery(c)
	assert.Nil(t, req)
	assert.NotEmpty(t, errs)
}

func TestValidateAdSubmission(t *testing.T) {
	req := &AdSubmissionRequest{
		Title:     "Weekend sale",
		ImageKey:  "ads/img.jpg",
		Latitude:  "10.0",
		Longitude: "76.0",
		RadiusKM:  5,
		PlanID:    "64f1b5c8e4b0a1a2b3c4d5e6",
		PaymentID: "pi_123",
	}
	assert.Empty(t, ValidateStruct(req))

	req.RadiusKM = 0.5
	errs := ValidateStruct(req)
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs.ToDetails(), "RadiusKM")

	req.RadiusKM = 5
	req.PlanID = "not-an-id"
	errs = ValidateStruct(req)
	assert.NotEmpty(t, errs)
}
