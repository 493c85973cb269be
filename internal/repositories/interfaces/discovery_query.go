package interfaces

import (
	"nearmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NearbyQuery describes a proximity search: results come back ordered by
// ascending distance from the viewer, tie-broken by id so pagination is
// deterministic across repeated calls.
type NearbyQuery struct {
	Latitude      float64
	Longitude     float64
	MaxDistanceKM float64

	// Search matches case-insensitively against name/bio/keyword fields.
	// CategoryIDs, when present, widen the match to records in those
	// categories (the caller resolves the search term to category ids
	// first). CategoryID is the explicit filter: it narrows the result
	// set regardless of any search term.
	Search      string
	CategoryID  primitive.ObjectID
	CategoryIDs []primitive.ObjectID

	// Business filters.
	Type models.BusinessType

	// Product filters.
	OffersOnly bool

	Skip  int64
	Limit int64
}
