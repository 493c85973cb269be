package interfaces

import (
	"context"
	"time"

	"nearmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *models.Advertisement) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Advertisement, error)
	ListByStatus(ctx context.Context, status models.AdStatus, skip, limit int64) ([]*models.Advertisement, int64, error)
	ListByBusiness(ctx context.Context, businessID primitive.ObjectID, skip, limit int64) ([]*models.Advertisement, int64, error)

	// ListActive returns every ad with isActive set; the visibility rule is
	// applied per viewer by the caller.
	ListActive(ctx context.Context) ([]*models.Advertisement, error)

	// Approve transitions pending -> live, stamping expireAt and isActive.
	Approve(ctx context.Context, id primitive.ObjectID, expireAt time.Time) error

	// Reject transitions pending -> rejected and clears expireAt.
	Reject(ctx context.Context, id primitive.ObjectID) error

	// ExpireDue flips live ads whose deadline passed to expired, clearing
	// isActive. Safe to run repeatedly; returns the number transitioned.
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}
