package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func liveAd(loc *GeoPoint, radiusKM float64) *Advertisement {
	return &Advertisement{
		Status:   AdStatusLive,
		IsActive: true,
		Location: loc,
		RadiusKM: radiusKM,
	}
}

func TestAdvertisement_AdminPostedAlwaysVisible(t *testing.T) {
	ad := &Advertisement{IsPostedByAdmin: true, IsActive: true}

	viewers := [][2]float64{
		{0, 0},
		{10.0, 76.0},
		{-89.9, 179.9},
	}
	for _, v := range viewers {
		assert.True(t, ad.IsVisibleTo(v[0], v[1]))
	}
}

func TestAdvertisement_InactiveNeverVisible(t *testing.T) {
	ad := &Advertisement{IsPostedByAdmin: true, IsActive: false}
	assert.False(t, ad.IsVisibleTo(10.0, 76.0))

	ad = liveAd(NewGeoPoint(10.0, 76.0), 50)
	ad.IsActive = false
	assert.False(t, ad.IsVisibleTo(10.0, 76.0))
}

func TestAdvertisement_NoLocationHidden(t *testing.T) {
	ad := liveAd(nil, 5)
	assert.False(t, ad.IsVisibleTo(10.0, 76.0))
}

func TestAdvertisement_MalformedLocationHidden(t *testing.T) {
	// Never panics on malformed coordinate data.
	malformed := []*GeoPoint{
		{Type: "Point"},
		{Type: "Point", Coordinates: []float64{76.0}},
		{Type: "Point", Coordinates: []float64{200.0, 95.0}},
	}
	for _, loc := range malformed {
		ad := liveAd(loc, 5)
		assert.NotPanics(t, func() {
			assert.False(t, ad.IsVisibleTo(10.0, 76.0))
		})
	}
}

func TestAdvertisement_RadiusTargeting(t *testing.T) {
	// Ad at (10.0, 76.0) with a 5 km radius.
	ad := liveAd(NewGeoPoint(10.0, 76.0), 5)

	// Viewer roughly 1.5 km away.
	assert.True(t, ad.IsVisibleTo(10.01, 76.01))

	// Viewer roughly 70 km away.
	assert.False(t, ad.IsVisibleTo(10.5, 76.5))
}

func TestAdvertisement_IsExpiredAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	ad := &Advertisement{}
	assert.False(t, ad.IsExpiredAt(now))

	past := now.Add(-time.Hour)
	ad.ExpireAt = &past
	assert.True(t, ad.IsExpiredAt(now))

	future := now.Add(time.Hour)
	ad.ExpireAt = &future
	assert.False(t, ad.IsExpiredAt(now))
}
