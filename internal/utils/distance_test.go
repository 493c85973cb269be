package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance_IdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, CalculateDistance(10.0, 76.0, 10.0, 76.0))
	assert.Equal(t, 0.0, CalculateDistance(0, 0, 0, 0))
	assert.Equal(t, 0.0, CalculateDistance(-90, 180, -90, 180))
}

func TestCalculateDistance_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{10.0, 76.0, 10.01, 76.01},
		{51.5074, -0.1278, 40.7128, -74.0060},
		{-33.8688, 151.2093, 35.6762, 139.6503},
	}
	for _, p := range pairs {
		forward := CalculateDistance(p[0], p[1], p[2], p[3])
		backward := CalculateDistance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, forward, backward, 1e-9)
	}
}

func TestCalculateDistance_KnownDistances(t *testing.T) {
	// London -> New York, roughly 5570 km.
	d := CalculateDistance(51.5074, -0.1278, 40.7128, -74.0060)
	assert.InDelta(t, 5570, d, 20)

	// One degree of latitude at the equator, roughly 111.19 km.
	d = CalculateDistance(0, 0, 1, 0)
	assert.InDelta(t, 111.19, d, 0.1)
}

func TestCalculateDistance_AntipodalPoints(t *testing.T) {
	halfCircumference := math.Pi * EarthRadiusKM
	d := CalculateDistance(0, 0, 0, 180)
	assert.InDelta(t, halfCircumference, d, 1)
}

func TestCalculateDistance_NonNegative(t *testing.T) {
	d := CalculateDistance(-45.0, -120.0, 60.0, 150.0)
	assert.GreaterOrEqual(t, d, 0.0)
}

func TestIsWithinRadius(t *testing.T) {
	// Viewer ~1.5 km from the center.
	assert.True(t, IsWithinRadius(10.0, 76.0, 10.01, 76.01, 5))
	// Viewer ~70 km away.
	assert.False(t, IsWithinRadius(10.0, 76.0, 10.5, 76.5, 5))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "1.55", FormatDistance(1.5532))
	assert.Equal(t, "0.00", FormatDistance(0))
	assert.Equal(t, "70.10", FormatDistance(70.1))
}

func TestKMConversions(t *testing.T) {
	assert.Equal(t, 5000.0, KMToMeters(5))
	assert.InDelta(t, 5.0/6371.0, KMToRadians(5), 1e-12)
}
