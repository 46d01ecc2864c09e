// File: services/pricing/features.go
package pricing

import (
	"context"
	"errors"
	"strings"
	"time"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const featureOrderSeq = "plan_feature_order"

// CreateFeature adds a plan feature. When no order is supplied the next value
// of the storage-side sequence is assigned, so concurrent creations cannot
// collide. Duplicate feature text (case-insensitive) is rejected by the
// unique index on the normalized key.
func (s *DefaultPricingService) CreateFeature(ctx context.Context, req models.FeatureRequest) (*models.PlanFeature, error) {
	text := strings.TrimSpace(req.Feature)
	if text == "" {
		return nil, utils.NewValidationError("feature text is required")
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		seq, err := s.Repo.NextSequence(ctx, featureOrderSeq)
		if err != nil {
			return nil, err
		}
		order = seq - 1 // sequence starts at 1, orders at 0
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	feature := &models.PlanFeature{
		ID:         uuid.New().String(),
		Feature:    text,
		FeatureKey: strings.ToLower(text),
		Order:      order,
		Active:     active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.CreateFeature(ctx, feature); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflictError("feature already exists")
		}
		return nil, err
	}

	utils.GetLogger().Info("plan feature created", zap.String("feature", text), zap.Int("order", order))
	return feature, nil
}

func (s *DefaultPricingService) ListFeatures(ctx context.Context) ([]models.PlanFeature, error) {
	return s.Repo.ListFeatures(ctx)
}

func (s *DefaultPricingService) UpdateFeature(ctx context.Context, id string, req models.FeatureRequest) (*models.PlanFeature, error) {
	text := strings.TrimSpace(req.Feature)
	if text == "" {
		return nil, utils.NewValidationError("feature text is required")
	}

	updates := map[string]interface{}{
		"feature":    text,
		"featureKey": strings.ToLower(text),
	}
	if req.Order != nil {
		updates["order"] = *req.Order
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	updated, err := s.Repo.UpdateFeature(ctx, id, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("feature not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflictError("feature already exists")
		}
		return nil, err
	}
	return updated, nil
}

func (s *DefaultPricingService) DeleteFeature(ctx context.Context, id string) error {
	if err := s.Repo.DeleteFeature(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFoundError("feature not found")
		}
		return err
	}
	return nil
}

// ReorderFeatures applies a bulk order assignment and returns the reordered
// list.
func (s *DefaultPricingService) ReorderFeatures(ctx context.Context, items []models.FeatureOrderItem) ([]models.PlanFeature, error) {
	if len(items) == 0 {
		return nil, utils.NewValidationError("no order items supplied")
	}
	for _, item := range items {
		if _, err := s.Repo.UpdateFeature(ctx, item.ID, map[string]interface{}{"order": item.Order}); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, utils.NewNotFoundError("feature not found: " + item.ID)
			}
			return nil, err
		}
	}
	return s.Repo.ListFeatures(ctx)
}

// ToggleFeature flips the active flag.
func (s *DefaultPricingService) ToggleFeature(ctx context.Context, id string) (*models.PlanFeature, error) {
	feature, err := s.Repo.GetFeatureByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("feature not found")
		}
		return nil, err
	}

	updated, err := s.Repo.UpdateFeature(ctx, id, map[string]interface{}{"active": !feature.Active})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
