package interfaces

import (
	"context"
	"time"

	"nearmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassifiedRepository interface {
	Create(ctx context.Context, listing *models.ClassifiedListing) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClassifiedListing, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID, skip, limit int64) ([]*models.ClassifiedListing, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	FindNearby(ctx context.Context, query *NearbyQuery) ([]*models.ClassifiedResult, error)

	// FindExpired returns listings whose expireAt passed, for the cleanup
	// sweep to delete along with their stored images.
	FindExpired(ctx context.Context, now time.Time) ([]*models.ClassifiedListing, error)
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}
