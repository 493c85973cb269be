package interfaces

import (
	"context"

	"nearmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdPlanRepository interface {
	Create(ctx context.Context, plan *models.AdPlan) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.AdPlan, error)
	ListActive(ctx context.Context) ([]*models.AdPlan, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]*models.Notification, int64, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
}

type ChatRepository interface {
	SaveMessage(ctx context.Context, message *models.ChatMessage) error
	History(ctx context.Context, roomID string, skip, limit int64) ([]*models.ChatMessage, error)
}
