// File: services/schedule/service_test.go
package schedule

import (
	"context"
	"testing"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeScheduleRepo keeps schedules in memory, keyed like the Mongo collection.
type fakeScheduleRepo struct {
	schedules map[string]*models.ServiceSchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[string]*models.ServiceSchedule{}}
}

func scheduleKey(partnerID, serviceID, date string) string {
	return partnerID + "|" + serviceID + "|" + date
}

func (f *fakeScheduleRepo) Create(_ context.Context, s *models.ServiceSchedule) error {
	cp := *s
	f.schedules[scheduleKey(s.PartnerID, s.ServiceID, s.Date)] = &cp
	return nil
}

func (f *fakeScheduleRepo) Get(_ context.Context, partnerID, serviceID, date string) (*models.ServiceSchedule, error) {
	s, ok := f.schedules[scheduleKey(partnerID, serviceID, date)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *s
	cp.Slots = append([]models.Slot(nil), s.Slots...)
	return &cp, nil
}

func (f *fakeScheduleRepo) ReplaceSlots(_ context.Context, scheduleID string, slots []models.Slot) error {
	for _, s := range f.schedules {
		if s.ID == scheduleID {
			s.Slots = slots
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeScheduleRepo) AppendSlot(_ context.Context, scheduleID string, slot models.Slot) error {
	for _, s := range f.schedules {
		if s.ID == scheduleID {
			s.Slots = append(s.Slots, slot)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func bookReq(start, end int) models.BookSlotRequest {
	return models.BookSlotRequest{
		PartnerID: "partner-1",
		ServiceID: "svc-1",
		Date:      "2026-09-01",
		Start:     start,
		End:       end,
		BookingID: "booking-1",
	}
}

func TestBookSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("books a free slot and records the booking", func(t *testing.T) {
		repo := newFakeScheduleRepo()
		svc := &DefaultScheduleService{Repo: repo}

		slot, err := svc.BookSlot(ctx, bookReq(540, 600))
		require.NoError(t, err)
		assert.True(t, slot.Booked)
		assert.Equal(t, "booking-1", slot.BookingID)
		assert.NotEmpty(t, slot.ID)

		sched, err := repo.Get(ctx, "partner-1", "svc-1", "2026-09-01")
		require.NoError(t, err)
		require.Len(t, sched.Slots, 1)
		assert.Equal(t, 540, sched.Slots[0].Start)
	})

	t.Run("booking the same interval twice conflicts", func(t *testing.T) {
		repo := newFakeScheduleRepo()
		svc := &DefaultScheduleService{Repo: repo}

		_, err := svc.BookSlot(ctx, bookReq(540, 600))
		require.NoError(t, err)

		_, err = svc.BookSlot(ctx, bookReq(540, 600))
		require.Error(t, err)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.Status)
		assert.Equal(t, "slot not available", apiErr.Message)
	})

	t.Run("partial overlap with an existing booking conflicts", func(t *testing.T) {
		repo := newFakeScheduleRepo()
		svc := &DefaultScheduleService{Repo: repo}

		_, err := svc.BookSlot(ctx, bookReq(540, 600))
		require.NoError(t, err)

		_, err = svc.BookSlot(ctx, bookReq(570, 630))
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.Status)
	})

	t.Run("adjacent bookings do not conflict", func(t *testing.T) {
		repo := newFakeScheduleRepo()
		svc := &DefaultScheduleService{Repo: repo}

		_, err := svc.BookSlot(ctx, bookReq(540, 600))
		require.NoError(t, err)

		_, err = svc.BookSlot(ctx, bookReq(600, 660))
		assert.NoError(t, err)
	})

	t.Run("rejects inverted interval", func(t *testing.T) {
		svc := &DefaultScheduleService{Repo: newFakeScheduleRepo()}

		_, err := svc.BookSlot(ctx, bookReq(600, 540))
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		svc := &DefaultScheduleService{Repo: newFakeScheduleRepo()}

		req := bookReq(540, 600)
		req.Date = "01-09-2026"
		_, err := svc.BookSlot(ctx, req)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})
}

func setupReq() models.SetupSlotsRequest {
	return models.SetupSlotsRequest{
		ServiceID:       "svc-1",
		Date:            "2026-09-01",
		Open:            540,
		Close:           720,
		DurationMinutes: 60,
	}
}

func TestSetupSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes the day's open slots", func(t *testing.T) {
		repo := newFakeScheduleRepo()
		svc := &DefaultScheduleService{Repo: repo}

		sched, err := svc.SetupSlots(ctx, "partner-1", setupReq())
		require.NoError(t, err)
		require.Len(t, sched.Slots, 3)
		for _, slot := range sched.Slots {
			assert.False(t, slot.Booked)
			assert.NotEmpty(t, slot.ID)
		}

		stored, err := repo.Get(ctx, "partner-1", "svc-1", "2026-09-01")
		require.NoError(t, err)
		assert.Len(t, stored.Slots, 3)
	})

	t.Run("booking a published slot marks it booked in place", func(t *testing.T) {
		repo := newFakeScheduleRepo()
		svc := &DefaultScheduleService{Repo: repo}

		_, err := svc.SetupSlots(ctx, "partner-1", setupReq())
		require.NoError(t, err)

		slot, err := svc.BookSlot(ctx, bookReq(540, 600))
		require.NoError(t, err)
		assert.True(t, slot.Booked)
		assert.Equal(t, "booking-1", slot.BookingID)

		stored, err := repo.Get(ctx, "partner-1", "svc-1", "2026-09-01")
		require.NoError(t, err)
		require.Len(t, stored.Slots, 3, "booking must not grow a published schedule")
		assert.True(t, stored.Slots[0].Booked)

		_, err = svc.BookSlot(ctx, bookReq(540, 600))
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.Status)
	})

	t.Run("republishing keeps booked slots", func(t *testing.T) {
		repo := newFakeScheduleRepo()
		svc := &DefaultScheduleService{Repo: repo}

		_, err := svc.SetupSlots(ctx, "partner-1", setupReq())
		require.NoError(t, err)
		_, err = svc.BookSlot(ctx, bookReq(600, 660))
		require.NoError(t, err)

		req := setupReq()
		req.DurationMinutes = 90
		sched, err := svc.SetupSlots(ctx, "partner-1", req)
		require.NoError(t, err)

		var booked int
		for _, slot := range sched.Slots {
			if slot.Booked {
				booked++
				assert.Equal(t, 600, slot.Start)
			} else {
				assert.True(t, IsSlotAvailable([]models.Slot{{Start: 600, End: 660, Booked: true}}, slot.Start, slot.End),
					"regenerated open slots must not overlap the booked one")
			}
		}
		assert.Equal(t, 1, booked)
	})

	t.Run("rejects open after close", func(t *testing.T) {
		svc := &DefaultScheduleService{Repo: newFakeScheduleRepo()}

		req := setupReq()
		req.Open, req.Close = 720, 540
		_, err := svc.SetupSlots(ctx, "partner-1", req)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})
}

func TestGetAvailableSlots(t *testing.T) {
	ctx := context.Background()

	availReq := models.AvailabilityRequest{
		ServiceID:       "svc-1",
		Date:            "2026-09-01",
		Open:            540,
		Close:           720,
		DurationMinutes: 60,
	}

	t.Run("missing schedule means the whole day is open", func(t *testing.T) {
		svc := &DefaultScheduleService{Repo: newFakeScheduleRepo()}

		slots, err := svc.GetAvailableSlots(ctx, "partner-1", availReq)
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, 540, slots[0].Start)
		assert.Equal(t, 720, slots[2].End)
	})

	t.Run("booked windows are excluded", func(t *testing.T) {
		repo := newFakeScheduleRepo()
		svc := &DefaultScheduleService{Repo: repo}

		_, err := svc.BookSlot(ctx, bookReq(600, 660))
		require.NoError(t, err)

		slots, err := svc.GetAvailableSlots(ctx, "partner-1", availReq)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, 540, slots[0].Start)
		assert.Equal(t, 660, slots[1].Start)
	})

	t.Run("published day returns its open slots", func(t *testing.T) {
		repo := newFakeScheduleRepo()
		svc := &DefaultScheduleService{Repo: repo}

		_, err := svc.SetupSlots(ctx, "partner-1", setupReq())
		require.NoError(t, err)
		_, err = svc.BookSlot(ctx, bookReq(600, 660))
		require.NoError(t, err)

		slots, err := svc.GetAvailableSlots(ctx, "partner-1", availReq)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, 540, slots[0].Start)
		assert.Equal(t, 660, slots[1].Start)
	})

	t.Run("rejects open after close", func(t *testing.T) {
		svc := &DefaultScheduleService{Repo: newFakeScheduleRepo()}

		req := availReq
		req.Open, req.Close = 720, 540
		_, err := svc.GetAvailableSlots(ctx, "partner-1", req)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})
}

func TestGetSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("missing schedule is a not-found error", func(t *testing.T) {
		svc := &DefaultScheduleService{Repo: newFakeScheduleRepo()}

		_, err := svc.GetSchedule(ctx, "partner-1", "svc-1", "2026-09-01")
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})
}
