// File: database/repository/pricing/indexes.go
package pricingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes that back case-insensitive
// duplicate rejection for features and help questions. The normalized key
// fields are lowercased at write time, so a plain unique index suffices.
func (r *mongoPricingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.features.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "featureKey", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = r.help.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "questionKey", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
