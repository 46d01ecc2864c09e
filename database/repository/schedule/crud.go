// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"time"

	"partnerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoScheduleRepo) Create(ctx context.Context, schedule *models.ServiceSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, schedule)
	return err
}

func (r *mongoScheduleRepo) Get(ctx context.Context, partnerID, serviceID, date string) (*models.ServiceSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"partnerId": partnerID, "serviceId": serviceID, "date": date}
	var schedule models.ServiceSchedule
	if err := r.coll.FindOne(ctx, filter).Decode(&schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *mongoScheduleRepo) ReplaceSlots(ctx context.Context, scheduleID string, slots []models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": scheduleID}, bson.M{"$set": bson.M{
		"slots":     slots,
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

func (r *mongoScheduleRepo) AppendSlot(ctx context.Context, scheduleID string, slot models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": scheduleID}, bson.M{
		"$push": bson.M{"slots": slot},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
