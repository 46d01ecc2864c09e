// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"partnerhub/database"
	"partnerhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.ServiceSchedule) error
	Get(ctx context.Context, partnerID, serviceID, date string) (*models.ServiceSchedule, error)
	ReplaceSlots(ctx context.Context, scheduleID string, slots []models.Slot) error
	AppendSlot(ctx context.Context, scheduleID string, slot models.Slot) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("service_schedules"),
	}
}
