package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageHandler is invoked for every inbound chat message before it is
// relayed. Returning an error drops the message.
type MessageHandler func(ctx context.Context, msg *Message) error

type Hub struct {
	clients    map[primitive.ObjectID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	inbound    chan *Message
	onMessage  MessageHandler
	mutex      sync.RWMutex
}

type Message struct {
	Type       string             `json:"type"`
	RoomID     string             `json:"room_id,omitempty"`
	SenderID   primitive.ObjectID `json:"sender_id,omitempty"`
	ReceiverID primitive.ObjectID `json:"receiver_id,omitempty"`
	Body       string             `json:"body,omitempty"`
	Timestamp  int64              `json:"timestamp"`
}

func NewHub(onMessage MessageHandler) *Hub {
	return &Hub{
		clients:    make(map[primitive.ObjectID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan *Message, 64),
		onMessage:  onMessage,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.inbound:
			h.relay(ctx, msg)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.clients[client.UserID] == nil {
		h.clients[client.UserID] = make(map[*Client]bool)
	}
	h.clients[client.UserID][client] = true

	h.sendToClient(client, &Message{
		Type:      "welcome",
		Timestamp: time.Now().Unix(),
	})
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	conns, ok := h.clients[client.UserID]
	if !ok {
		return
	}
	if _, exists := conns[client]; !exists {
		return
	}

	delete(conns, client)
	close(client.send)
	if len(conns) == 0 {
		delete(h.clients, client.UserID)
	}
}

// relay persists the message through the handler, then delivers it to every
// connection of the receiver and echoes it back to the sender.
func (h *Hub) relay(ctx context.Context, msg *Message) {
	if h.onMessage != nil {
		if err := h.onMessage(ctx, msg); err != nil {
			log.Printf("chat message rejected: %v", err)
			h.SendToUser(msg.SenderID, &Message{
				Type:      "error",
				Body:      err.Error(),
				Timestamp: time.Now().Unix(),
			})
			return
		}
	}

	h.SendToUser(msg.ReceiverID, msg)
	h.SendToUser(msg.SenderID, msg)
}

func (h *Hub) SendToUser(userID primitive.ObjectID, message *Message) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients[userID] {
		h.sendToClient(client, message)
	}
}

// IsOnline reports whether the user has at least one open connection.
func (h *Hub) IsOnline(userID primitive.ObjectID) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[userID]) > 0
}

func (h *Hub) sendToClient(client *Client, message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		return
	}
	select {
	case client.send <- data:
	default:
		// Slow consumer; drop the connection rather than block the hub.
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conns := range h.clients {
		for client := range conns {
			close(client.send)
		}
		delete(h.clients, userID)
	}
}
