package interfaces

import (
	"context"

	"nearmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	ListByBusiness(ctx context.Context, businessID primitive.ObjectID, skip, limit int64) ([]*models.Product, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// SyncLocation re-copies the owner's GeoPoint onto all of its products.
	SyncLocation(ctx context.Context, businessID primitive.ObjectID, location *models.GeoPoint) error

	FindNearby(ctx context.Context, query *NearbyQuery) ([]*models.ProductResult, error)
}
