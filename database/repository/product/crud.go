// File: database/repository/product/crud.go
package productRepo

import (
	"context"
	"time"

	"partnerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoProductRepo) Create(ctx context.Context, product *models.PartnerProduct) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, product)
	return err
}

func (r *mongoProductRepo) GetByID(ctx context.Context, partnerID, id string) (*models.PartnerProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "partnerId": partnerID}
	var product models.PartnerProduct
	if err := r.coll.FindOne(ctx, filter).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *mongoProductRepo) ListByPartner(ctx context.Context, partnerID string) ([]models.PartnerProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"partnerId": partnerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.PartnerProduct
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepo) Update(ctx context.Context, partnerID, id string, updates map[string]interface{}) (*models.PartnerProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updates["updatedAt"] = time.Now()
	filter := bson.M{"id": id, "partnerId": partnerID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.PartnerProduct
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": updates}, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoProductRepo) Delete(ctx context.Context, partnerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "partnerId": partnerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
