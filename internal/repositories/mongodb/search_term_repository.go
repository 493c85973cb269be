package mongodb

import (
	"context"
	"fmt"
	"time"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type searchTermRepository struct {
	collection *mongo.Collection
}

func NewSearchTermRepository(db *mongo.Database) interfaces.SearchTermRepository {
	return &searchTermRepository{
		collection: db.Collection(utils.CollectionSearchTerms),
	}
}

// IncrementCount relies on the database's per-document atomicity: the
// upserted $inc never races with itself, so no duplicate counter records
// are created for the same normalized term.
func (r *searchTermRepository) IncrementCount(ctx context.Context, term string) error {
	normalized := models.NormalizeSearchTerm(term)
	if normalized == "" {
		return nil
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"term": normalized},
		bson.M{
			"$inc": bson.M{"count": 1},
			"$set": bson.M{"updated_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to increment search count: %w", err)
	}

	return nil
}

func (r *searchTermRepository) TopSearched(ctx context.Context, limit int64) ([]*models.SearchTerm, error) {
	if limit <= 0 {
		limit = utils.DefaultLimit
	}

	cursor, err := r.collection.Find(
		ctx,
		bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "count", Value: -1}, {Key: "term", Value: 1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list top search terms: %w", err)
	}
	defer cursor.Close(ctx)

	terms := []*models.SearchTerm{}
	if err := cursor.All(ctx, &terms); err != nil {
		return nil, fmt.Errorf("failed to decode search terms: %w", err)
	}

	return terms, nil
}
