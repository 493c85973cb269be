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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type adPlanRepository struct {
	collection *mongo.Collection
}

func NewAdPlanRepository(db *mongo.Database) interfaces.AdPlanRepository {
	return &adPlanRepository{
		collection: db.Collection(utils.CollectionAdPlans),
	}
}

func (r *adPlanRepository) Create(ctx context.Context, plan *models.AdPlan) error {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to create ad plan: %w", err)
	}

	return nil
}

func (r *adPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.AdPlan, error) {
	var plan models.AdPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ad plan not found")
		}
		return nil, fmt.Errorf("failed to get ad plan: %w", err)
	}

	return &plan, nil
}

func (r *adPlanRepository) ListActive(ctx context.Context) ([]*models.AdPlan, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"is_active": true},
		options.Find().SetSort(bson.D{{Key: "price", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ad plans: %w", err)
	}
	defer cursor.Close(ctx)

	plans := []*models.AdPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode ad plans: %w", err)
	}

	return plans, nil
}
