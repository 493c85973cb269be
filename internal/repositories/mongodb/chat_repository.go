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

type chatRepository struct {
	collection *mongo.Collection
}

func NewChatRepository(db *mongo.Database) interfaces.ChatRepository {
	return &chatRepository{
		collection: db.Collection(utils.CollectionChatMessages),
	}
}

func (r *chatRepository) SaveMessage(ctx context.Context, message *models.ChatMessage) error {
	message.ID = primitive.NewObjectID()
	if message.SentAt.IsZero() {
		message.SentAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}

	return nil
}

func (r *chatRepository) History(ctx context.Context, roomID string, skip, limit int64) ([]*models.ChatMessage, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "sent_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"room_id": roomID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []*models.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat history: %w", err)
	}

	return messages, nil
}
