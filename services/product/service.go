// File: services/product/service.go
package product

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

func (s *DefaultProductService) Create(ctx context.Context, partnerID string, req models.ProductRequest) (*models.PartnerProduct, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	product := &models.PartnerProduct{
		ID:          uuid.New().String(),
		PartnerID:   partnerID,
		Name:        req.Name,
		Price:       req.Price,
		Unit:        req.Unit,
		Description: req.Description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, product); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("product created",
		zap.String("partnerId", partnerID),
		zap.String("productId", product.ID))
	return product, nil
}

func (s *DefaultProductService) List(ctx context.Context, partnerID string) ([]models.PartnerProduct, error) {
	return s.Repo.ListByPartner(ctx, partnerID)
}

func (s *DefaultProductService) Get(ctx context.Context, partnerID, id string) (*models.PartnerProduct, error) {
	product, err := s.Repo.GetByID(ctx, partnerID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *DefaultProductService) Update(ctx context.Context, partnerID, id string, req models.ProductRequest) (*models.PartnerProduct, error) {
	updates := map[string]interface{}{
		"name":        req.Name,
		"price":       req.Price,
		"unit":        req.Unit,
		"description": req.Description,
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	updated, err := s.Repo.Update(ctx, partnerID, id, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("product not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *DefaultProductService) Delete(ctx context.Context, partnerID, id string) error {
	if err := s.Repo.Delete(ctx, partnerID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFoundError("product not found")
		}
		return err
	}
	return nil
}
