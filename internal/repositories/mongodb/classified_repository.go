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

type classifiedRepository struct {
	collection *mongo.Collection
}

func NewClassifiedRepository(db *mongo.Database) interfaces.ClassifiedRepository {
	return &classifiedRepository{
		collection: db.Collection(utils.CollectionClassifieds),
	}
}

func (r *classifiedRepository) Create(ctx context.Context, listing *models.ClassifiedListing) error {
	listing.ID = primitive.NewObjectID()
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt

	_, err := r.collection.InsertOne(ctx, listing)
	if err != nil {
		return fmt.Errorf("failed to create classified listing: %w", err)
	}

	return nil
}

func (r *classifiedRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClassifiedListing, error) {
	var listing models.ClassifiedListing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("classified listing not found")
		}
		return nil, fmt.Errorf("failed to get classified listing: %w", err)
	}

	return &listing, nil
}

func (r *classifiedRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, skip, limit int64) ([]*models.ClassifiedListing, int64, error) {
	filter := bson.M{"owner_id": ownerID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count classified listings: %w", err)
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list classified listings: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []*models.ClassifiedListing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode classified listings: %w", err)
	}

	return listings, total, nil
}

func (r *classifiedRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update classified listing: %w", err)
	}

	return nil
}

func (r *classifiedRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete classified listing: %w", err)
	}

	return nil
}

func (r *classifiedRepository) FindNearby(ctx context.Context, query *interfaces.NearbyQuery) ([]*models.ClassifiedResult, error) {
	// Unexpired only; the sweep may lag behind the deadline.
	filter := bson.M{"expire_at": bson.M{"$gt": time.Now()}}
	if search := textSearchFilter(query, []string{"title", "description"}); search != nil {
		for k, v := range search {
			filter[k] = v
		}
	}

	pipeline := []bson.D{buildGeoNearStage(query, filter)}
	pipeline = appendPagingStages(pipeline, query)

	// Flatten owner name/phone from the users collection.
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         utils.CollectionUsers,
			"localField":   "owner_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"owner_name": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$owner.name", 0}}, "",
			}},
			"owner_phone": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$owner.phone", 0}}, "",
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"owner": 0}}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to run nearby classified query: %w", err)
	}
	defer cursor.Close(ctx)

	results := []*models.ClassifiedResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nearby classifieds: %w", err)
	}

	return results, nil
}

func (r *classifiedRepository) FindExpired(ctx context.Context, now time.Time) ([]*models.ClassifiedListing, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"expire_at": bson.M{"$lt": now}})
	if err != nil {
		return nil, fmt.Errorf("failed to find expired listings: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []*models.ClassifiedListing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode expired listings: %w", err)
	}

	return listings, nil
}

func (r *classifiedRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired listings: %w", err)
	}

	return result.DeletedCount, nil
}
