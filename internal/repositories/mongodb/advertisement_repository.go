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

type advertisementRepository struct {
	collection *mongo.Collection
}

func NewAdvertisementRepository(db *mongo.Database) interfaces.AdvertisementRepository {
	return &advertisementRepository{
		collection: db.Collection(utils.CollectionAdvertisements),
	}
}

func (r *advertisementRepository) Create(ctx context.Context, ad *models.Advertisement) error {
	ad.ID = primitive.NewObjectID()
	ad.CreatedAt = time.Now()
	ad.UpdatedAt = ad.CreatedAt

	_, err := r.collection.InsertOne(ctx, ad)
	if err != nil {
		return fmt.Errorf("failed to create advertisement: %w", err)
	}

	return nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Advertisement, error) {
	var ad models.Advertisement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ad)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("advertisement not found")
		}
		return nil, fmt.Errorf("failed to get advertisement: %w", err)
	}

	return &ad, nil
}

func (r *advertisementRepository) ListByStatus(ctx context.Context, status models.AdStatus, skip, limit int64) ([]*models.Advertisement, int64, error) {
	return r.list(ctx, bson.M{"status": status}, skip, limit)
}

func (r *advertisementRepository) ListByBusiness(ctx context.Context, businessID primitive.ObjectID, skip, limit int64) ([]*models.Advertisement, int64, error) {
	return r.list(ctx, bson.M{"business_id": businessID}, skip, limit)
}

func (r *advertisementRepository) list(ctx context.Context, filter bson.M, skip, limit int64) ([]*models.Advertisement, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count advertisements: %w", err)
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list advertisements: %w", err)
	}
	defer cursor.Close(ctx)

	ads := []*models.Advertisement{}
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, 0, fmt.Errorf("failed to decode advertisements: %w", err)
	}

	return ads, total, nil
}

func (r *advertisementRepository) ListActive(ctx context.Context) ([]*models.Advertisement, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"is_active": true},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active advertisements: %w", err)
	}
	defer cursor.Close(ctx)

	ads := []*models.Advertisement{}
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode active advertisements: %w", err)
	}

	return ads, nil
}

func (r *advertisementRepository) Approve(ctx context.Context, id primitive.ObjectID, expireAt time.Time) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.AdStatusPending},
		bson.M{"$set": bson.M{
			"status":     models.AdStatusLive,
			"is_active":  true,
			"expire_at":  expireAt,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to approve advertisement: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("advertisement is not pending")
	}

	return nil
}

func (r *advertisementRepository) Reject(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.AdStatusPending},
		bson.M{
			"$set": bson.M{
				"status":     models.AdStatusRejected,
				"is_active":  false,
				"updated_at": time.Now(),
			},
			"$unset": bson.M{"expire_at": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to reject advertisement: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("advertisement is not pending")
	}

	return nil
}

func (r *advertisementRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{
			"status":    models.AdStatusLive,
			"expire_at": bson.M{"$lt": now},
		},
		bson.M{"$set": bson.M{
			"status":     models.AdStatusExpired,
			"is_active":  false,
			"updated_at": now,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to expire advertisements: %w", err)
	}

	return result.ModifiedCount, nil
}
