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

type productRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) interfaces.ProductRepository {
	return &productRepository{
		collection: db.Collection(utils.CollectionProducts),
	}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	_, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (r *productRepository) ListByBusiness(ctx context.Context, businessID primitive.ObjectID, skip, limit int64) ([]*models.Product, int64, error) {
	filter := bson.M{"business_id": businessID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, total, nil
}

func (r *productRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (r *productRepository) SyncLocation(ctx context.Context, businessID primitive.ObjectID, location *models.GeoPoint) error {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"business_id": businessID},
		bson.M{"$set": bson.M{"location": location, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to sync product locations: %w", err)
	}

	return nil
}

func (r *productRepository) FindNearby(ctx context.Context, query *interfaces.NearbyQuery) ([]*models.ProductResult, error) {
	filter := bson.M{"is_active": true}
	if query.OffersOnly {
		filter["has_offer"] = true
	}
	if !query.CategoryID.IsZero() {
		filter["category_id"] = query.CategoryID
	}
	if search := textSearchFilter(query, []string{"name", "description", "keywords"}); search != nil {
		for k, v := range search {
			filter[k] = v
		}
	}

	pipeline := []bson.D{buildGeoNearStage(query, filter)}
	pipeline = appendPagingStages(pipeline, query)
	pipeline = append(pipeline, categoryLookupStages()...)

	// Flatten the owning business into owner_name/owner_phone.
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         utils.CollectionBusinesses,
			"localField":   "business_id",
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
		return nil, fmt.Errorf("failed to run nearby product query: %w", err)
	}
	defer cursor.Close(ctx)

	results := []*models.ProductResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nearby products: %w", err)
	}

	return results, nil
}
