// File: services/pricing/interface.go
package pricing

import (
	"context"

	pricingRepo "partnerhub/database/repository/pricing"
	"partnerhub/models"
)

// PricingService covers the registration fee admin surface: the fee
// configuration, the plan feature list and the help content.
type PricingService interface {
	GetSettings(ctx context.Context) (*models.PricingSettings, error)
	UpdateSettings(ctx context.Context, req models.PricingSettingsRequest) (*models.PricingSettings, error)
	GetHistory(ctx context.Context) ([]models.PricingSettings, error)
	GetMetrics(ctx context.Context) (*models.PricingMetrics, error)

	CreateFeature(ctx context.Context, req models.FeatureRequest) (*models.PlanFeature, error)
	ListFeatures(ctx context.Context) ([]models.PlanFeature, error)
	UpdateFeature(ctx context.Context, id string, req models.FeatureRequest) (*models.PlanFeature, error)
	DeleteFeature(ctx context.Context, id string) error
	ReorderFeatures(ctx context.Context, items []models.FeatureOrderItem) ([]models.PlanFeature, error)
	ToggleFeature(ctx context.Context, id string) (*models.PlanFeature, error)

	CreateHelpContent(ctx context.Context, req models.HelpContentRequest) (*models.HelpContent, error)
	ListHelpContent(ctx context.Context) ([]models.HelpContent, error)
	UpdateHelpContent(ctx context.Context, id string, req models.HelpContentRequest) (*models.HelpContent, error)
	DeleteHelpContent(ctx context.Context, id string) error
	ListHelpCategories(ctx context.Context) ([]string, error)
	SearchHelpContent(ctx context.Context, query string) ([]models.HelpContent, error)
}

// DefaultPricingService is the production implementation.
type DefaultPricingService struct {
	Repo pricingRepo.PricingRepository
}
