// File: database/repository/product/interface.go
package productRepo

import (
	"context"

	"partnerhub/database"
	"partnerhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProductRepository scopes every operation by the owning partner's ID.
type ProductRepository interface {
	Create(ctx context.Context, product *models.PartnerProduct) error
	GetByID(ctx context.Context, partnerID, id string) (*models.PartnerProduct, error)
	ListByPartner(ctx context.Context, partnerID string) ([]models.PartnerProduct, error)
	Update(ctx context.Context, partnerID, id string, updates map[string]interface{}) (*models.PartnerProduct, error)
	Delete(ctx context.Context, partnerID, id string) error
}

type mongoProductRepo struct {
	coll *mongo.Collection
}

// NewMongoProductRepo constructs a new MongoDB ProductRepository.
func NewMongoProductRepo() ProductRepository {
	return &mongoProductRepo{
		coll: database.DB().Collection("partner_products"),
	}
}
