package services

import (
	"context"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/utils"
	"nearmarket/pkg/logger"
	"nearmarket/pkg/push"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService persists a notification and attempts push delivery.
// Push failures are logged and never surfaced to the caller.
type NotificationService interface {
	Notify(ctx context.Context, userID primitive.ObjectID, typ models.NotificationType, title, body string, data map[string]string)
	ListByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]*models.Notification, int64, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
}

type notificationService struct {
	notificationRepo interfaces.NotificationRepository
	userRepo         interfaces.UserRepository
	pushProvider     push.PushProvider
	log              *logger.Logger
}

func NewNotificationService(
	notificationRepo interfaces.NotificationRepository,
	userRepo interfaces.UserRepository,
	pushProvider push.PushProvider,
	log *logger.Logger,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pushProvider:     pushProvider,
		log:              log,
	}
}

func (s *notificationService) Notify(ctx context.Context, userID primitive.ObjectID, typ models.NotificationType, title, body string, data map[string]string) {
	notification := &models.Notification{
		UserID: userID,
		Type:   typ,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log.WithError(err).WithField("user_id", userID.Hex()).Error("failed to persist notification")
	}

	if s.pushProvider == nil {
		return
	}

	tokens, err := s.userRepo.GetDeviceTokens(ctx, []primitive.ObjectID{userID})
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID.Hex()).Error("failed to load device tokens")
		return
	}
	if len(tokens) == 0 {
		return
	}

	message := &push.Message{Title: title, Body: body, Data: data}
	for _, batch := range chunkTokens(tokens, utils.FCMMulticastLimit) {
		result, err := s.pushProvider.SendMulticast(ctx, batch, message)
		if err != nil {
			s.log.WithError(err).WithField("user_id", userID.Hex()).Error("push delivery failed")
			continue
		}
		if result.FailureCount > 0 {
			s.log.WithFields(map[string]interface{}{
				"user_id": userID.Hex(),
				"failed":  result.FailureCount,
			}).Warn("push delivery partially failed")
		}
	}
}

func (s *notificationService) ListByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]*models.Notification, int64, error) {
	return s.notificationRepo.ListByUser(ctx, userID, skip, limit)
}

func (s *notificationService) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return s.notificationRepo.MarkRead(ctx, id)
}

func chunkTokens(tokens []string, size int) [][]string {
	if size <= 0 || len(tokens) <= size {
		return [][]string{tokens}
	}
	var chunks [][]string
	for start := 0; start < len(tokens); start += size {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, tokens[start:end])
	}
	return chunks
}
