package interfaces

import (
	"context"

	"nearmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *models.Business) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Business, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error

	// FindNearby returns active, available businesses ordered by ascending
	// distance from the query point, with distance (km) attached.
	FindNearby(ctx context.Context, query *NearbyQuery) ([]*models.BusinessResult, error)
}
