package interfaces

import (
	"context"

	"nearmarket/internal/models"
)

type SearchTermRepository interface {
	// IncrementCount bumps the counter for the normalized term with an
	// atomic upsert; a first search creates the record with count 1.
	IncrementCount(ctx context.Context, term string) error

	TopSearched(ctx context.Context, limit int64) ([]*models.SearchTerm, error)
}
