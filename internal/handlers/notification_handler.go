package handlers

import (
	"nearmarket/internal/middleware"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/services"
	"nearmarket/internal/utils"
	"nearmarket/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationHandler struct {
	notificationService services.NotificationService
	userRepo            interfaces.UserRepository
	log                 *logger.Logger
}

func NewNotificationHandler(notificationService services.NotificationService, userRepo interfaces.UserRepository, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		userRepo:            userRepo,
		log:                 log,
	}
}

// List handles GET /notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	pagination := utils.GetPaginationParams(c)

	notifications, total, err := h.notificationService.ListByUser(c.Request.Context(), principal.ID, pagination.Skip, pagination.Limit)
	if err != nil {
		h.log.WithError(err).Error("failed to list notifications")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Notifications retrieved", notifications, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(pagination, total),
	})
}

// MarkRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Notification marked read", nil)
}

// RegisterDevice handles POST /devices: registers a push token for the
// caller. Tokens are deduplicated at the storage layer.
func (h *NotificationHandler) RegisterDevice(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Device token is required")
		return
	}

	if err := h.userRepo.AddDeviceToken(c.Request.Context(), principal.ID, req.Token); err != nil {
		h.log.WithError(err).Error("failed to register device token")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Device registered", nil)
}
