package interfaces

import (
	"context"

	"nearmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	AddDeviceToken(ctx context.Context, id primitive.ObjectID, token string) error
	GetDeviceTokens(ctx context.Context, ids []primitive.ObjectID) ([]string, error)
}
