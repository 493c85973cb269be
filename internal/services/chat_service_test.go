package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"nearmarket/internal/models"
	"nearmarket/pkg/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type chatRepoFake struct {
	saved []*models.ChatMessage
	fail  bool
}

func (f *chatRepoFake) SaveMessage(ctx context.Context, m *models.ChatMessage) error {
	if f.fail {
		return fmt.Errorf("write failed")
	}
	f.saved = append(f.saved, m)
	return nil
}
func (f *chatRepoFake) History(ctx context.Context, roomID string, skip, limit int64) ([]*models.ChatMessage, error) {
	var out []*models.ChatMessage
	for _, m := range f.saved {
		if m.RoomID == roomID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestHandleMessagePersistsWithDerivedRoom(t *testing.T) {
	repo := &chatRepoFake{}
	svc := NewChatService(repo, newTestLogger(t))

	sender := primitive.NewObjectID()
	receiver := primitive.NewObjectID()
	msg := &websocket.Message{
		Type:       "chat_message",
		SenderID:   sender,
		ReceiverID: receiver,
		Body:       "is the bicycle still available?",
	}

	require.NoError(t, svc.HandleMessage(context.Background(), msg))
	require.Len(t, repo.saved, 1)

	wantRoom := models.ChatRoomID(sender, receiver)
	assert.Equal(t, wantRoom, repo.saved[0].RoomID)
	assert.Equal(t, wantRoom, msg.RoomID)

	// The room id is direction-independent.
	assert.Equal(t, wantRoom, models.ChatRoomID(receiver, sender))
}

func TestHandleMessageRejectsSelfAndEmpty(t *testing.T) {
	svc := NewChatService(&chatRepoFake{}, newTestLogger(t))
	id := primitive.NewObjectID()

	err := svc.HandleMessage(context.Background(), &websocket.Message{
		SenderID:   id,
		ReceiverID: id,
		Body:       "hi",
	})
	require.Error(t, err)

	err = svc.HandleMessage(context.Background(), &websocket.Message{
		SenderID:   id,
		ReceiverID: primitive.NewObjectID(),
	})
	require.Error(t, err)

	err = svc.HandleMessage(context.Background(), &websocket.Message{
		SenderID:   id,
		ReceiverID: primitive.NewObjectID(),
		Body:       strings.Repeat("x", 1001),
	})
	require.Error(t, err)
}

func TestHistoryUsesPairRoom(t *testing.T) {
	repo := &chatRepoFake{}
	svc := NewChatService(repo, newTestLogger(t))

	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	require.NoError(t, svc.HandleMessage(context.Background(), &websocket.Message{
		SenderID: a, ReceiverID: b, Body: "hello",
	}))

	history, err := svc.History(context.Background(), b, a, 0, 20)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
