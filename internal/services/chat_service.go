package services

import (
	"context"
	"fmt"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/pkg/logger"
	"nearmarket/pkg/websocket"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxChatMessageLength = 1000

// ChatService persists relayed messages and serves the room history. The
// hub calls HandleMessage for every inbound frame.
type ChatService interface {
	HandleMessage(ctx context.Context, msg *websocket.Message) error
	History(ctx context.Context, a, b primitive.ObjectID, skip, limit int64) ([]*models.ChatMessage, error)
}

type chatService struct {
	chatRepo interfaces.ChatRepository
	log      *logger.Logger
}

func NewChatService(chatRepo interfaces.ChatRepository, log *logger.Logger) ChatService {
	return &chatService{
		chatRepo: chatRepo,
		log:      log,
	}
}

func (s *chatService) HandleMessage(ctx context.Context, msg *websocket.Message) error {
	if msg.Body == "" {
		return fmt.Errorf("message body is required")
	}
	if len(msg.Body) > maxChatMessageLength {
		return fmt.Errorf("message exceeds %d characters", maxChatMessageLength)
	}
	if msg.SenderID == msg.ReceiverID {
		return fmt.Errorf("cannot message yourself")
	}

	record := &models.ChatMessage{
		RoomID:     models.ChatRoomID(msg.SenderID, msg.ReceiverID),
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Body:       msg.Body,
	}

	if err := s.chatRepo.SaveMessage(ctx, record); err != nil {
		s.log.WithError(err).Error("failed to persist chat message")
		return fmt.Errorf("message could not be delivered")
	}

	msg.RoomID = record.RoomID
	return nil
}

func (s *chatService) History(ctx context.Context, a, b primitive.ObjectID, skip, limit int64) ([]*models.ChatMessage, error) {
	return s.chatRepo.History(ctx, models.ChatRoomID(a, b), skip, limit)
}
