package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Migration struct {
	Version     int
	Description string
	Up          func(*mongo.Database) error
	Down        func(*mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

func (m *Migrator) Up() error {
	// Create migrations collection if it doesn't exist
	err := m.createMigrationsCollection()
	if err != nil {
		return err
	}

	// Get current version
	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return err
	}

	// Run migrations
	for _, migration := range m.migrations {
		if migration.Version > currentVersion {
			log.Printf("Running migration %d: %s", migration.Version, migration.Description)

			err := migration.Up(m.db)
			if err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			err = m.updateVersion(migration.Version)
			if err != nil {
				return fmt.Errorf("failed to update migration version: %w", err)
			}

			log.Printf("Migration %d completed successfully", migration.Version)
		}
	}

	return nil
}

func (m *Migrator) createMigrationsCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collections, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}

	for _, name := range collections {
		if name == "migrations" {
			return nil
		}
	}

	return m.db.CreateCollection(ctx, "migrations")
}

func (m *Migrator) getCurrentVersion() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection("migrations").FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(version int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := m.db.Collection("migrations").ReplaceOne(
		ctx,
		bson.D{},
		bson.D{{Key: "version", Value: version}, {Key: "updated_at", Value: time.Now()}},
		options.Replace().SetUpsert(true),
	)

	return err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create geospatial indexes for discovery collections",
			Up:          createGeoIndexes,
			Down: func(db *mongo.Database) error {
				return nil
			},
		},
		{
			Version:     2,
			Description: "Create advertisement lifecycle indexes",
			Up:          createAdvertisementIndexes,
			Down: func(db *mongo.Database) error {
				_, err := db.Collection("advertisements").Indexes().DropAll(context.Background())
				return err
			},
		},
		{
			Version:     3,
			Description: "Create search term and category indexes",
			Up:          createSearchIndexes,
			Down: func(db *mongo.Database) error {
				_, err := db.Collection("search_terms").Indexes().DropAll(context.Background())
				return err
			},
		},
		{
			Version:     4,
			Description: "Create ownership indexes for business content",
			Up:          createOwnershipIndexes,
			Down: func(db *mongo.Database) error {
				return nil
			},
		},
	}
}

// The geoNear stage requires a 2dsphere index on every collection that
// serves proximity queries.
func createGeoIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	geoIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	}

	for _, collection := range []string{"businesses", "products", "advertisements", "classified_listings"} {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, geoIndex); err != nil {
			return fmt.Errorf("failed to create 2dsphere index on %s: %w", collection, err)
		}
	}

	return nil
}

func createAdvertisementIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "expire_at", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "posted_by", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}

	_, err := db.Collection("advertisements").Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create advertisement indexes: %w", err)
	}

	// Classified listings expire on a sweep; the sweep scans by expire_at.
	_, err = db.Collection("classified_listings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "expire_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create classified expiry index: %w", err)
	}

	return nil
}

func createSearchIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := db.Collection("search_terms").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "term", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create search term index: %w", err)
	}

	_, err = db.Collection("search_terms").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "count", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create search count index: %w", err)
	}

	_, err = db.Collection("categories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create category name index: %w", err)
	}

	return nil
}

func createOwnershipIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := db.Collection("businesses").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create business owner index: %w", err)
	}

	_, err = db.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "business_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create product business index: %w", err)
	}

	_, err = db.Collection("chat_messages").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create chat room index: %w", err)
	}

	return nil
}
