package models

import (
	"time"

	"nearmarket/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdStatus string

const (
	AdStatusPending  AdStatus = "pending"
	AdStatusLive     AdStatus = "live"
	AdStatusExpired  AdStatus = "expired"
	AdStatusRejected AdStatus = "rejected"
)

// Advertisement is targeted by radius around its own location. Admin-posted
// ads carry no location and are shown to everyone. Rejected or expired ads
// are never mutated back to life; resubmission creates a new document.
type Advertisement struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	BusinessID      *primitive.ObjectID `json:"business_id,omitempty" bson:"business_id,omitempty"`
	PostedBy        primitive.ObjectID  `json:"posted_by" bson:"posted_by"`
	IsPostedByAdmin bool                `json:"is_posted_by_admin" bson:"is_posted_by_admin"`
	Title           string              `json:"title" bson:"title" validate:"required,max=200"`
	ImageKey        string              `json:"image_key" bson:"image_key"`
	Location        *GeoPoint           `json:"location,omitempty" bson:"location,omitempty"`
	RadiusKM        float64             `json:"radius_km" bson:"radius_km"`
	RadiusInRadians float64             `json:"radius_in_radians" bson:"radius_in_radians"`
	PlanID          primitive.ObjectID  `json:"plan_id,omitempty" bson:"plan_id,omitempty"`
	Status          AdStatus            `json:"status" bson:"status"`
	IsActive        bool                `json:"is_active" bson:"is_active"`
	ExpireAt        *time.Time          `json:"expire_at,omitempty" bson:"expire_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" bson:"updated_at"`
}

// IsVisibleTo decides whether the ad is shown to a viewer at the given
// coordinates. It never fails on malformed location data: a missing or
// unusable location hides the ad unless it was posted by an admin.
func (a *Advertisement) IsVisibleTo(viewerLat, viewerLng float64) bool {
	if !a.IsActive {
		return false
	}
	if a.IsPostedByAdmin {
		return true
	}
	if !a.Location.IsUsable() {
		return false
	}
	return utils.IsWithinRadius(a.Location.Latitude(), a.Location.Longitude(), viewerLat, viewerLng, a.RadiusKM)
}

// IsExpiredAt reports whether the ad deadline has passed at the given instant.
func (a *Advertisement) IsExpiredAt(now time.Time) bool {
	return a.ExpireAt != nil && a.ExpireAt.Before(now)
}
