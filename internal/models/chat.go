package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage is the stored record of a relayed message. Delivery over the
// websocket hub is best effort; this record is the only durable trace.
type ChatMessage struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RoomID     string             `json:"room_id" bson:"room_id"`
	SenderID   primitive.ObjectID `json:"sender_id" bson:"sender_id"`
	ReceiverID primitive.ObjectID `json:"receiver_id" bson:"receiver_id"`
	Body       string             `json:"body" bson:"body" validate:"required,max=1000"`
	SentAt     time.Time          `json:"sent_at" bson:"sent_at"`
}

// ChatRoomID derives the deterministic room id for a pair of participants.
func ChatRoomID(a, b primitive.ObjectID) string {
	ah, bh := a.Hex(), b.Hex()
	if ah < bh {
		return ah + ":" + bh
	}
	return bh + ":" + ah
}
