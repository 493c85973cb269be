package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product belongs to a business or freelancer. Location is copied from the
// owner at create/save time rather than referenced, so discovery queries
// never need a join.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID  primitive.ObjectID `json:"business_id" bson:"business_id" validate:"required"`
	Name        string             `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Description string             `json:"description" bson:"description" validate:"max=2000"`
	Keywords    []string           `json:"keywords" bson:"keywords"`
	CategoryID  primitive.ObjectID `json:"category_id" bson:"category_id"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	OfferPrice  float64            `json:"offer_price" bson:"offer_price"`
	HasOffer    bool               `json:"has_offer" bson:"has_offer"`
	ImageKeys   []string           `json:"image_keys" bson:"image_keys"`
	Location    *GeoPoint          `json:"location" bson:"location"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type ProductResult struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	CategoryName string             `json:"category_name" bson:"category_name"`
	Price        float64            `json:"price" bson:"price"`
	OfferPrice   float64            `json:"offer_price" bson:"offer_price"`
	HasOffer     bool               `json:"has_offer" bson:"has_offer"`
	ImageKeys    []string           `json:"image_keys" bson:"image_keys"`
	OwnerName    string             `json:"owner_name" bson:"owner_name"`
	OwnerPhone   string             `json:"owner_phone" bson:"owner_phone"`
	Location     *GeoPoint          `json:"location" bson:"location"`
	DistanceKM   float64            `json:"-" bson:"distance"`
	Distance     string             `json:"distance"`
}
