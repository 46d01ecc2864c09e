// File: services/pricing/settings.go
package pricing

import (
	"context"
	"errors"
	"time"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// GetSettings loads the current pricing configuration by its stable key.
func (s *DefaultPricingService) GetSettings(ctx context.Context) (*models.PricingSettings, error) {
	settings, err := s.Repo.GetCurrentSettings(ctx, models.PricingSettingsKey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("pricing settings not configured")
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings performs a full replacement by inserting a new revision.
// The registration fee must stay below the original price.
func (s *DefaultPricingService) UpdateSettings(ctx context.Context, req models.PricingSettingsRequest) (*models.PricingSettings, error) {
	if req.RegistrationFee >= req.OriginalPrice {
		return nil, utils.NewValidationError("registrationFee must be less than originalPrice")
	}

	settings := &models.PricingSettings{
		ID:                 uuid.New().String(),
		Key:                models.PricingSettingsKey,
		RegistrationFee:    req.RegistrationFee,
		OriginalPrice:      req.OriginalPrice,
		CommissionRate:     req.CommissionRate,
		MinPayoutThreshold: req.MinPayoutThreshold,
		RefundPolicy:       req.RefundPolicy,
		UpdatedBy:          req.UpdatedBy,
		UpdatedAt:          time.Now(),
	}
	if err := s.Repo.InsertSettings(ctx, settings); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("pricing settings updated",
		zap.Float64("registrationFee", settings.RegistrationFee),
		zap.Float64("originalPrice", settings.OriginalPrice),
		zap.String("updatedBy", settings.UpdatedBy))
	return settings, nil
}

// GetHistory returns all pricing revisions, newest first.
func (s *DefaultPricingService) GetHistory(ctx context.Context) ([]models.PricingSettings, error) {
	return s.Repo.GetSettingsHistory(ctx, models.PricingSettingsKey)
}

// GetMetrics summarizes the current configuration and its revision history.
func (s *DefaultPricingService) GetMetrics(ctx context.Context) (*models.PricingMetrics, error) {
	history, err := s.Repo.GetSettingsHistory(ctx, models.PricingSettingsKey)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, utils.NewNotFoundError("pricing settings not configured")
	}

	current := history[0]
	discount := 0.0
	if current.OriginalPrice > 0 {
		discount = (current.OriginalPrice - current.RegistrationFee) / current.OriginalPrice * 100
	}

	return &models.PricingMetrics{
		Revisions:          len(history),
		RegistrationFee:    current.RegistrationFee,
		OriginalPrice:      current.OriginalPrice,
		CommissionRate:     current.CommissionRate,
		DiscountPercentage: discount,
		LastUpdated:        current.UpdatedAt,
	}, nil
}
