// File: handlers/chat.go
package handlers

import (
	"net/http"

	"partnerhub/models"
	"partnerhub/services/chat"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes booking-scoped messaging.
type ChatHandler struct {
	Service chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// SendMessageHandler handles POST /chats.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	var req models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	msg, err := h.Service.SendMessage(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Message sent", msg)
}

// ListMessagesHandler handles GET /chats/booking/:bookingId.
func (h *ChatHandler) ListMessagesHandler(c *gin.Context) {
	messages, err := h.Service.ListByBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", messages)
}

// MarkMessageReadHandler handles PATCH /chats/:id/read.
func (h *ChatHandler) MarkMessageReadHandler(c *gin.Context) {
	if err := h.Service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Message marked read", nil)
}
