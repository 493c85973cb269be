package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassifiedListing is a user-to-user "buy and sell" entry. It expires 30
// days after creation and is purged, images included, by the daily sweep.
type ClassifiedListing struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `json:"owner_id" bson:"owner_id" validate:"required"`
	Title       string             `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Description string             `json:"description" bson:"description" validate:"max=2000"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	ImageKeys   []string           `json:"image_keys" bson:"image_keys"`
	Location    *GeoPoint          `json:"location" bson:"location"`
	ExpireAt    time.Time          `json:"expire_at" bson:"expire_at"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type ClassifiedResult struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	ImageKeys   []string           `json:"image_keys" bson:"image_keys"`
	OwnerName   string             `json:"owner_name" bson:"owner_name"`
	OwnerPhone  string             `json:"owner_phone" bson:"owner_phone"`
	Location    *GeoPoint          `json:"location" bson:"location"`
	ExpireAt    time.Time          `json:"expire_at" bson:"expire_at"`
	DistanceKM  float64            `json:"-" bson:"distance"`
	Distance    string             `json:"distance"`
}
