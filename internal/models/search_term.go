package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchTerm is a denormalized counter keyed by the normalized term.
// Counts are bumped with an atomic $inc upsert, never read-modify-write.
type SearchTerm struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Term      string             `json:"term" bson:"term"`
	Count     int64              `json:"count" bson:"count"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// NormalizeSearchTerm folds a raw query string to its counter key.
func NormalizeSearchTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
