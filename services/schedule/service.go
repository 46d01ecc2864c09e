// File: services/schedule/service.go
package schedule

import (
	"context"
	"errors"
	"sort"
	"time"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SetupSlots publishes a day's bookable slots, generated from the open/close
// times at a fixed duration. Republishing a day regenerates its open slots
// while already-booked slots are kept; generated windows that would overlap a
// booked slot are dropped.
func (s *DefaultScheduleService) SetupSlots(ctx context.Context, partnerID string, req models.SetupSlotsRequest) (*models.ServiceSchedule, error) {
	if req.Open >= req.Close {
		return nil, utils.NewValidationError("open time must be before close time")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, utils.NewValidationError("date must be in YYYY-MM-DD format")
	}

	now := time.Now()
	var booked []models.Slot
	sched, err := s.Repo.Get(ctx, partnerID, req.ServiceID, req.Date)
	switch {
	case err == nil:
		for _, slot := range sched.Slots {
			if slot.Booked {
				booked = append(booked, slot)
			}
		}
	case errors.Is(err, mongo.ErrNoDocuments):
		sched = &models.ServiceSchedule{
			ID:        uuid.New().String(),
			PartnerID: partnerID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Repo.Create(ctx, sched); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	slots := booked
	for _, c := range GenerateTimeSlots(req.Open, req.Close, req.DurationMinutes) {
		if !IsSlotAvailable(booked, c.Start, c.End) {
			continue
		}
		c.ID = uuid.New().String()
		c.CreatedAt = now
		slots = append(slots, c)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })

	if err := s.Repo.ReplaceSlots(ctx, sched.ID, slots); err != nil {
		return nil, err
	}
	sched.Slots = slots
	sched.UpdatedAt = now

	utils.GetLogger().Info("slots published",
		zap.String("partnerId", partnerID),
		zap.String("serviceId", req.ServiceID),
		zap.String("date", req.Date),
		zap.Int("slots", len(slots)))
	return sched, nil
}

// GetAvailableSlots returns the day's open published slots together with
// candidate windows generated from the request that do not conflict with any
// existing slot. A missing schedule simply means nothing has been published
// or booked yet.
func (s *DefaultScheduleService) GetAvailableSlots(ctx context.Context, partnerID string, req models.AvailabilityRequest) ([]models.Slot, error) {
	if req.Open >= req.Close {
		return nil, utils.NewValidationError("open time must be before close time")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, utils.NewValidationError("date must be in YYYY-MM-DD format")
	}

	var existing []models.Slot
	sched, err := s.Repo.Get(ctx, partnerID, req.ServiceID, req.Date)
	switch {
	case err == nil:
		existing = sched.Slots
	case errors.Is(err, mongo.ErrNoDocuments):
		// nothing published or booked yet
	default:
		return nil, err
	}

	var available []models.Slot
	for _, slot := range existing {
		if !slot.Booked && slot.Start >= req.Open && slot.End <= req.Close {
			available = append(available, slot)
		}
	}
	for _, c := range GenerateTimeSlots(req.Open, req.Close, req.DurationMinutes) {
		if IsSlotAvailable(existing, c.Start, c.End) {
			available = append(available, c)
		}
	}
	sort.Slice(available, func(i, j int) bool { return available[i].Start < available[j].Start })
	return available, nil
}

// GetSchedule returns the schedule for a partner+service+date.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, partnerID, serviceID, date string) (*models.ServiceSchedule, error) {
	sched, err := s.Repo.Get(ctx, partnerID, serviceID, date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("schedule not found")
		}
		return nil, err
	}
	return sched, nil
}

// BookSlot re-validates availability against the current schedule, then
// records the booking. An open published slot matching the requested interval
// is marked booked in place; otherwise a booked slot is appended, provided the
// interval conflicts with nothing. A second booking of an identical interval
// fails either way. The schedule document is created lazily on the first
// booking for its day.
func (s *DefaultScheduleService) BookSlot(ctx context.Context, req models.BookSlotRequest) (*models.Slot, error) {
	if req.Start >= req.End {
		return nil, utils.NewValidationError("slot start must be before slot end")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, utils.NewValidationError("date must be in YYYY-MM-DD format")
	}

	now := time.Now()
	sched, err := s.Repo.Get(ctx, req.PartnerID, req.ServiceID, req.Date)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		sched = &models.ServiceSchedule{
			ID:        uuid.New().String(),
			PartnerID: req.PartnerID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Repo.Create(ctx, sched); err != nil {
			return nil, err
		}
	}

	for i := range sched.Slots {
		slot := &sched.Slots[i]
		if slot.Booked || slot.Start != req.Start || slot.End != req.End {
			continue
		}
		slot.Booked = true
		slot.BookingID = req.BookingID
		if err := s.Repo.ReplaceSlots(ctx, sched.ID, sched.Slots); err != nil {
			return nil, err
		}
		utils.GetLogger().Info("published slot booked",
			zap.String("partnerId", req.PartnerID),
			zap.String("bookingId", req.BookingID),
			zap.Int("start", req.Start),
			zap.Int("end", req.End))
		booked := *slot
		return &booked, nil
	}

	if !IsSlotAvailable(sched.Slots, req.Start, req.End) {
		return nil, utils.NewConflictError("slot not available")
	}

	slot := models.Slot{
		ID:        uuid.New().String(),
		Start:     req.Start,
		End:       req.End,
		Booked:    true,
		BookingID: req.BookingID,
		CreatedAt: now,
	}
	if err := s.Repo.AppendSlot(ctx, sched.ID, slot); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("slot booked",
		zap.String("partnerId", req.PartnerID),
		zap.String("bookingId", req.BookingID),
		zap.Int("start", req.Start),
		zap.Int("end", req.End))
	return &slot, nil
}
