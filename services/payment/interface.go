// File: services/payment/interface.go
package payment

import (
	"context"

	paymentRepo "partnerhub/database/repository/payment"
	"partnerhub/models"
)

// Gateway is the external payment provider boundary. CreateOrder takes the
// amount in minor currency units and returns the gateway's order reference.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error)
}

// PaymentService creates payment orders against the gateway and tracks their
// transactions.
type PaymentService interface {
	CreateOrder(ctx context.Context, partnerID string, req models.PaymentOrderRequest) (*models.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, transactionID, status string) (*models.PaymentTransaction, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo    paymentRepo.PaymentRepository
	Gateway Gateway
}
