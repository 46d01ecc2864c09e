// File: handlers/payment.go
package handlers

import (
	"net/http"

	"partnerhub/middleware"
	"partnerhub/models"
	"partnerhub/services/payment"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes payment order creation.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreatePaymentOrderHandler handles POST /payments/order.
func (h *PaymentHandler) CreatePaymentOrderHandler(c *gin.Context) {
	var req models.PaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	txn, err := h.Service.CreateOrder(c.Request.Context(), middleware.PartnerID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Payment order created", txn)
}

// UpdatePaymentStatusHandler handles PATCH /payments/:transactionId/status.
func (h *PaymentHandler) UpdatePaymentStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	txn, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("transactionId"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Payment status updated", txn)
}
