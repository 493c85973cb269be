package interfaces

import (
	"context"

	"nearmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)

	// FindIDsByName resolves categories whose name matches the term
	// case-insensitively; discovery unions these ids into text search.
	FindIDsByName(ctx context.Context, term string) ([]primitive.ObjectID, error)
}
