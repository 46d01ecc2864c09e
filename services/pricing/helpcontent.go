// File: services/pricing/helpcontent.go
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

const helpOrderSeq = "help_content_order"

// CreateHelpContent adds a help entry with the same order/uniqueness
// machinery as plan features.
func (s *DefaultPricingService) CreateHelpContent(ctx context.Context, req models.HelpContentRequest) (*models.HelpContent, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, utils.NewValidationError("question is required")
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		seq, err := s.Repo.NextSequence(ctx, helpOrderSeq)
		if err != nil {
			return nil, err
		}
		order = seq - 1
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	entry := &models.HelpContent{
		ID:          uuid.New().String(),
		Question:    question,
		QuestionKey: strings.ToLower(question),
		Answer:      req.Answer,
		Category:    req.Category,
		Order:       order,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreateHelpContent(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflictError("help question already exists")
		}
		return nil, err
	}

	utils.GetLogger().Info("help content created", zap.String("question", question), zap.String("category", req.Category))
	return entry, nil
}

func (s *DefaultPricingService) ListHelpContent(ctx context.Context) ([]models.HelpContent, error) {
	return s.Repo.ListHelpContent(ctx)
}

func (s *DefaultPricingService) UpdateHelpContent(ctx context.Context, id string, req models.HelpContentRequest) (*models.HelpContent, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, utils.NewValidationError("question is required")
	}

	updates := map[string]interface{}{
		"question":    question,
		"questionKey": strings.ToLower(question),
		"answer":      req.Answer,
		"category":    req.Category,
	}
	if req.Order != nil {
		updates["order"] = *req.Order
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	updated, err := s.Repo.UpdateHelpContent(ctx, id, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("help content not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflictError("help question already exists")
		}
		return nil, err
	}
	return updated, nil
}

func (s *DefaultPricingService) DeleteHelpContent(ctx context.Context, id string) error {
	if err := s.Repo.DeleteHelpContent(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFoundError("help content not found")
		}
		return err
	}
	return nil
}

func (s *DefaultPricingService) ListHelpCategories(ctx context.Context) ([]string, error) {
	return s.Repo.ListHelpCategories(ctx)
}

func (s *DefaultPricingService) SearchHelpContent(ctx context.Context, query string) ([]models.HelpContent, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.NewValidationError("search query is required")
	}
	return s.Repo.SearchHelpContent(ctx, query)
}
