// File: database/repository/pricing/features.go
package pricingRepo

import (
	"context"
	"time"

	"partnerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPricingRepo) CreateFeature(ctx context.Context, feature *models.PlanFeature) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.features.InsertOne(ctx, feature)
	return err
}

func (r *mongoPricingRepo) ListFeatures(ctx context.Context) ([]models.PlanFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.features.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var features []models.PlanFeature
	if err := cursor.All(ctx, &features); err != nil {
		return nil, err
	}
	return features, nil
}

func (r *mongoPricingRepo) GetFeatureByID(ctx context.Context, id string) (*models.PlanFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var feature models.PlanFeature
	if err := r.features.FindOne(ctx, bson.M{"id": id}).Decode(&feature); err != nil {
		return nil, err
	}
	return &feature, nil
}

func (r *mongoPricingRepo) UpdateFeature(ctx context.Context, id string, updates map[string]interface{}) (*models.PlanFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updates["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.PlanFeature
	if err := r.features.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updates}, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoPricingRepo) DeleteFeature(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.features.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
