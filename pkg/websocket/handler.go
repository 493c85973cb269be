package websocket

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Tighten for production deployments.
	},
}

type Handler struct {
	hub *Hub
}

// NewHandler starts the hub loop; it stops when ctx is cancelled.
func NewHandler(ctx context.Context, onMessage MessageHandler) *Handler {
	hub := NewHub(onMessage)
	go hub.Run(ctx)

	return &Handler{
		hub: hub,
	}
}

// Serve upgrades the request. Authentication happens upstream; the caller
// passes the verified user id.
func (h *Handler) Serve(c *gin.Context, userID primitive.ObjectID) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := NewClient(h.hub, conn, userID)
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (h *Handler) Hub() *Hub {
	return h.hub
}
