package handlers

import (
	"nearmarket/internal/middleware"
	"nearmarket/internal/services"
	"nearmarket/internal/utils"
	"nearmarket/pkg/logger"
	"nearmarket/pkg/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatHandler bridges the authenticated HTTP surface and the websocket
// relay for buyer-seller conversations.
type ChatHandler struct {
	chatService services.ChatService
	wsHandler   *websocket.Handler
	log         *logger.Logger
}

func NewChatHandler(chatService services.ChatService, wsHandler *websocket.Handler, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		wsHandler:   wsHandler,
		log:         log,
	}
}

// Connect handles GET /chat/ws: upgrades to a websocket bound to the
// authenticated principal.
func (h *ChatHandler) Connect(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	h.wsHandler.Serve(c, principal.ID)
}

// History handles GET /chat/history/:user_id: the conversation between the
// caller and the given user, newest first.
func (h *ChatHandler) History(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	otherID, err := primitive.ObjectIDFromHex(c.Param("user_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user id")
		return
	}

	pagination := utils.GetPaginationParams(c)
	messages, err := h.chatService.History(c.Request.Context(), principal.ID, otherID, pagination.Skip, pagination.Limit)
	if err != nil {
		h.log.WithError(err).Error("failed to load chat history")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Chat history retrieved", messages, &utils.Meta{Count: len(messages)})
}
