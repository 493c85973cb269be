package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserType string

const (
	UserTypeAdmin      UserType = "admin"
	UserTypeStore      UserType = "store"
	UserTypeFreelancer UserType = "freelancer"
	UserTypeUser       UserType = "user"
	UserTypeEmployee   UserType = "employee"
	UserTypePartner    UserType = "partner"
)

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Phone        string             `json:"phone" bson:"phone" validate:"required"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Type         UserType           `json:"type" bson:"type"`
	DeviceTokens []string           `json:"-" bson:"device_tokens"`
	IsActive     bool               `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}
