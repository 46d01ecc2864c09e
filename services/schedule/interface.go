// File: services/schedule/interface.go
package schedule

import (
	"context"

	scheduleRepo "partnerhub/database/repository/schedule"
	"partnerhub/models"
)

// ScheduleService manages a partner's bookable time windows per service and
// date, and prevents double-booking.
type ScheduleService interface {
	SetupSlots(ctx context.Context, partnerID string, req models.SetupSlotsRequest) (*models.ServiceSchedule, error)
	GetAvailableSlots(ctx context.Context, partnerID string, req models.AvailabilityRequest) ([]models.Slot, error)
	GetSchedule(ctx context.Context, partnerID, serviceID, date string) (*models.ServiceSchedule, error)
	BookSlot(ctx context.Context, req models.BookSlotRequest) (*models.Slot, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}
