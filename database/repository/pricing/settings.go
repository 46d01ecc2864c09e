// File: database/repository/pricing/settings.go
package pricingRepo

import (
	"context"
	"time"

	"partnerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPricingRepo) InsertSettings(ctx context.Context, settings *models.PricingSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.settings.InsertOne(ctx, settings)
	return err
}

// GetCurrentSettings returns the latest revision for the given key.
func (r *mongoPricingRepo) GetCurrentSettings(ctx context.Context, key string) (*models.PricingSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	var settings models.PricingSettings
	if err := r.settings.FindOne(ctx, bson.M{"key": key}, opts).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetSettingsHistory returns all revisions for the key, newest first.
func (r *mongoPricingRepo) GetSettingsHistory(ctx context.Context, key string) ([]models.PricingSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.settings.Find(ctx, bson.M{"key": key}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var history []models.PricingSettings
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}
