// File: database/repository/partner/crud.go
package partnerRepo

import (
	"context"
	"time"

	"partnerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPartnerRepo) Create(ctx context.Context, partner *models.Partner) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, partner)
	return err
}

func (r *mongoPartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var partner models.Partner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *mongoPartnerRepo) GetByPhone(ctx context.Context, phone string) (*models.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var partner models.Partner
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *mongoPartnerRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updates["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Partner
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updates}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoPartnerRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"security.tokenHash": tokenHash,
		"updatedAt":          time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPartnerRepo) SetStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
