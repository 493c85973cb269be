package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdPlan is a purchasable advertisement package. DurationDays drives the
// expireAt stamped on approval.
type AdPlan struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	DurationDays int                `json:"duration_days" bson:"duration_days" validate:"required,gt=0"`
	Price        float64            `json:"price" bson:"price" validate:"gte=0"`
	Currency     string             `json:"currency" bson:"currency"`
	IsActive     bool               `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// Duration returns the plan lifetime as a time.Duration.
func (p *AdPlan) Duration() time.Duration {
	return time.Duration(p.DurationDays) * 24 * time.Hour
}
