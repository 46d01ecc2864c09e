// File: database/repository/partner/interface.go
package partnerRepo

import (
	"context"

	"partnerhub/database"
	"partnerhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	GetByPhone(ctx context.Context, phone string) (*models.Partner, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Partner, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	SetStatus(ctx context.Context, id, status string) error
}

type mongoPartnerRepo struct {
	coll *mongo.Collection
}

// NewMongoPartnerRepo constructs a new MongoDB PartnerRepository.
func NewMongoPartnerRepo() PartnerRepository {
	return &mongoPartnerRepo{
		coll: database.DB().Collection("partners"),
	}
}
