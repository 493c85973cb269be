package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BusinessType string

const (
	BusinessTypeStore      BusinessType = "business"
	BusinessTypeFreelancer BusinessType = "freelancer"
)

// Business is a store or freelancer profile. Its GeoPoint is set at signup
// and changes only on profile update; products copy it at save time.
type Business struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `json:"owner_id" bson:"owner_id" validate:"required"`
	Name        string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Bio         string             `json:"bio" bson:"bio" validate:"max=1000"`
	Keywords    []string           `json:"keywords" bson:"keywords"`
	Type        BusinessType       `json:"type" bson:"type" validate:"required,oneof=business freelancer"`
	CategoryID  primitive.ObjectID `json:"category_id" bson:"category_id" validate:"required"`
	Location    *GeoPoint          `json:"location" bson:"location"`
	Phone       string             `json:"phone" bson:"phone"`
	LogoKey     string             `json:"logo_key,omitempty" bson:"logo_key,omitempty"`
	Rating      float64            `json:"rating" bson:"rating"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	IsAvailable bool               `json:"is_available" bson:"is_available"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// BusinessResult is a discovery hit: a business flattened for the response,
// annotated with its distance from the viewer.
type BusinessResult struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Bio          string             `json:"bio" bson:"bio"`
	Type         BusinessType       `json:"type" bson:"type"`
	CategoryName string             `json:"category_name" bson:"category_name"`
	Phone        string             `json:"phone" bson:"phone"`
	LogoKey      string             `json:"logo_key,omitempty" bson:"logo_key,omitempty"`
	Rating       float64            `json:"rating" bson:"rating"`
	Location     *GeoPoint          `json:"location" bson:"location"`
	DistanceKM   float64            `json:"-" bson:"distance"`
	Distance     string             `json:"distance"`
}
