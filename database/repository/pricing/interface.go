// File: database/repository/pricing/interface.go
package pricingRepo

import (
	"context"

	"partnerhub/database"
	"partnerhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PricingRepository covers the registration fee admin surface: settings
// revisions, plan features and help content.
type PricingRepository interface {
	// Settings revisions, keyed by a stable identifier.
	InsertSettings(ctx context.Context, settings *models.PricingSettings) error
	GetCurrentSettings(ctx context.Context, key string) (*models.PricingSettings, error)
	GetSettingsHistory(ctx context.Context, key string) ([]models.PricingSettings, error)

	// Plan features.
	CreateFeature(ctx context.Context, feature *models.PlanFeature) error
	ListFeatures(ctx context.Context) ([]models.PlanFeature, error)
	GetFeatureByID(ctx context.Context, id string) (*models.PlanFeature, error)
	UpdateFeature(ctx context.Context, id string, updates map[string]interface{}) (*models.PlanFeature, error)
	DeleteFeature(ctx context.Context, id string) error

	// Help content.
	CreateHelpContent(ctx context.Context, entry *models.HelpContent) error
	ListHelpContent(ctx context.Context) ([]models.HelpContent, error)
	UpdateHelpContent(ctx context.Context, id string, updates map[string]interface{}) (*models.HelpContent, error)
	DeleteHelpContent(ctx context.Context, id string) error
	ListHelpCategories(ctx context.Context) ([]string, error)
	SearchHelpContent(ctx context.Context, query string) ([]models.HelpContent, error)

	// NextSequence returns the next value of a named storage-side counter.
	NextSequence(ctx context.Context, name string) (int, error)

	EnsureIndexes(ctx context.Context) error
}

type mongoPricingRepo struct {
	settings *mongo.Collection
	features *mongo.Collection
	help     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoPricingRepo constructs a new MongoDB PricingRepository.
func NewMongoPricingRepo() PricingRepository {
	db := database.DB()
	return &mongoPricingRepo{
		settings: db.Collection("pricing_settings"),
		features: db.Collection("plan_features"),
		help:     db.Collection("help_content"),
		counters: db.Collection("counters"),
	}
}
