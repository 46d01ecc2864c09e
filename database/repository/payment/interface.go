// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"

	"partnerhub/database"
	"partnerhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository interface {
	Insert(ctx context.Context, txn *models.PaymentTransaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.PaymentTransaction, error)
	SetStatus(ctx context.Context, transactionID, status string) (*models.PaymentTransaction, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a new MongoDB PaymentRepository.
func NewMongoPaymentRepo() PaymentRepository {
	return &mongoPaymentRepo{
		coll: database.DB().Collection("payment_transactions"),
	}
}
