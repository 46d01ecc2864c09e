// File: handlers/notification.go
package handlers

import (
	"net/http"

	"partnerhub/models"
	"partnerhub/services/notification"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes notification creation and retrieval.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// CreateNotificationHandler handles POST /notifications.
func (h *NotificationHandler) CreateNotificationHandler(c *gin.Context) {
	var req models.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Notification created", created)
}

// ListNotificationsHandler handles GET /notifications/:userId.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	notifications, err := h.Service.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", notifications)
}

// MarkNotificationReadHandler handles PATCH /notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	if err := h.Service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Notification marked read", nil)
}
