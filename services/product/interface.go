// File: services/product/interface.go
package product

import (
	"context"

	productRepo "partnerhub/database/repository/product"
	"partnerhub/models"
)

// ProductService manages a partner's product catalog. Every operation is
// scoped to the authenticated partner; a product owned by another partner is
// indistinguishable from a missing one.
type ProductService interface {
	Create(ctx context.Context, partnerID string, req models.ProductRequest) (*models.PartnerProduct, error)
	List(ctx context.Context, partnerID string) ([]models.PartnerProduct, error)
	Get(ctx context.Context, partnerID, id string) (*models.PartnerProduct, error)
	Update(ctx context.Context, partnerID, id string, req models.ProductRequest) (*models.PartnerProduct, error)
	Delete(ctx context.Context, partnerID, id string) error
}

// DefaultProductService is the production implementation.
type DefaultProductService struct {
	Repo productRepo.ProductRepository
}
