// File: database/repository/payment/crud.go
package paymentRepo

import (
	"context"
	"time"

	"partnerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPaymentRepo) Insert(ctx context.Context, txn *models.PaymentTransaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, txn)
	return err
}

func (r *mongoPaymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.PaymentTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var txn models.PaymentTransaction
	if err := r.coll.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *mongoPaymentRepo) SetStatus(ctx context.Context, transactionID, status string) (*models.PaymentTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.PaymentTransaction
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"transactionId": transactionID}, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// EnsureIndexes enforces transaction ID uniqueness at the storage layer.
func (r *mongoPaymentRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
