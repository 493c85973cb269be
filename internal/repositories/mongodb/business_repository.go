package mongodb

import (
	"context"
	"fmt"
	"time"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type businessRepository struct {
	collection *mongo.Collection
}

func NewBusinessRepository(db *mongo.Database) interfaces.BusinessRepository {
	return &businessRepository{
		collection: db.Collection(utils.CollectionBusinesses),
	}
}

func (r *businessRepository) Create(ctx context.Context, business *models.Business) error {
	business.ID = primitive.NewObjectID()
	business.CreatedAt = time.Now()
	business.UpdatedAt = business.CreatedAt

	_, err := r.collection.InsertOne(ctx, business)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}

	return nil
}

func (r *businessRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	var business models.Business
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&business)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("business not found")
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return &business, nil
}

func (r *businessRepository) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Business, error) {
	var business models.Business
	err := r.collection.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&business)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("business not found")
		}
		return nil, fmt.Errorf("failed to get business by owner: %w", err)
	}

	return &business, nil
}

func (r *businessRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}

	return nil
}

func (r *businessRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": active})
}

func (r *businessRepository) FindNearby(ctx context.Context, query *interfaces.NearbyQuery) ([]*models.BusinessResult, error) {
	filter := bson.M{
		"is_active":    true,
		"is_available": true,
	}
	if query.Type != "" {
		filter["type"] = query.Type
	}
	if !query.CategoryID.IsZero() {
		filter["category_id"] = query.CategoryID
	}
	if search := textSearchFilter(query, []string{"name", "bio", "keywords"}); search != nil {
		for k, v := range search {
			filter[k] = v
		}
	}

	pipeline := []bson.D{buildGeoNearStage(query, filter)}
	pipeline = appendPagingStages(pipeline, query)
	pipeline = append(pipeline, categoryLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to run nearby business query: %w", err)
	}
	defer cursor.Close(ctx)

	results := []*models.BusinessResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nearby businesses: %w", err)
	}

	return results, nil
}
