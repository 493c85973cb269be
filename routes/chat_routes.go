package routes

import (
	"nearmarket/internal/handlers"
	"nearmarket/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupChatRoutes sets up the websocket chat endpoint and message history.
// The websocket upgrade happens after the JWT check so every connection
// is bound to an authenticated principal.
func SetupChatRoutes(r *gin.RouterGroup, chatHandler *handlers.ChatHandler, jwtSecret string) {
	chat := r.Group("/chat")
	chat.Use(middleware.AuthRequired(jwtSecret))
	{
		chat.GET("/ws", chatHandler.Connect)
		chat.GET("/history/:user_id", chatHandler.History)
	}
}
