// File: services/payment/service.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const defaultCurrency = "inr"

// MinorUnits converts a whole-currency-unit amount to its minor-unit
// representation.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// NewReceiptID generates a time-based receipt identifier.
func NewReceiptID(now time.Time) string {
	return fmt.Sprintf("receipt_%d", now.UnixMilli())
}

// CreateOrder converts the amount to minor units, creates a gateway order and
// persists a pending transaction. Gateway failures surface as a generic
// error; the underlying cause is only logged.
func (s *DefaultPaymentService) CreateOrder(ctx context.Context, partnerID string, req models.PaymentOrderRequest) (*models.PaymentTransaction, error) {
	if req.Amount <= 0 {
		return nil, utils.NewValidationError("amount must be greater than zero")
	}
	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now()
	amountMinor := MinorUnits(req.Amount)
	receipt := NewReceiptID(now)

	orderID, err := s.Gateway.CreateOrder(ctx, amountMinor, currency, receipt)
	if err != nil {
		utils.GetLogger().Error("payment gateway order creation failed",
			zap.String("partnerId", partnerID),
			zap.Int64("amountMinor", amountMinor),
			zap.Error(err))
		return nil, utils.NewInternalError("failed to create payment order", nil)
	}

	txn := &models.PaymentTransaction{
		ID:            uuid.New().String(),
		TransactionID: uuid.New().String(),
		PartnerID:     partnerID,
		Amount:        req.Amount,
		AmountMinor:   amountMinor,
		Currency:      currency,
		Receipt:       receipt,
		GatewayOrder:  orderID,
		Status:        models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Insert(ctx, txn); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment order created",
		zap.String("transactionId", txn.TransactionID),
		zap.String("gatewayOrder", orderID))
	return txn, nil
}

// UpdateStatus advances a transaction's status. Reverse or unknown
// transitions are rejected.
func (s *DefaultPaymentService) UpdateStatus(ctx context.Context, transactionID, status string) (*models.PaymentTransaction, error) {
	txn, err := s.Repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("transaction not found")
		}
		return nil, err
	}

	if !models.PaymentStatusAdvances(txn.Status, status) {
		return nil, utils.NewValidationError(fmt.Sprintf("cannot transition payment from %s to %s", txn.Status, status))
	}

	return s.Repo.SetStatus(ctx, transactionID, status)
}
