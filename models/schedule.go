package models

import "time"

// Slot is a bounded time window within a schedule. Start and End are minutes
// from midnight (e.g., 420 for 7:00 AM).
type Slot struct {
	ID        string    `bson:"id" json:"id"`
	Start     int       `bson:"start" json:"start"`
	End       int       `bson:"end" json:"end"`
	Booked    bool      `bson:"booked" json:"booked"`
	BookingID string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// ServiceSchedule is owned by a partner for a specific service and date.
// Invariant: no two booked slots in the same schedule overlap in time.
type ServiceSchedule struct {
	ID        string    `bson:"id" json:"id,omitempty"`
	PartnerID string    `bson:"partnerId" json:"partnerId"`
	ServiceID string    `bson:"serviceId" json:"serviceId"`
	Date      string    `bson:"date" json:"date"` // "2006-01-02"
	Slots     []Slot    `bson:"slots" json:"slots"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// AvailabilityRequest asks for the bookable windows of a day, generated from
// open and close times at a fixed slot duration and filtered against the
// schedule's existing slots.
type AvailabilityRequest struct {
	ServiceID       string `form:"serviceId" json:"serviceId" binding:"required"`
	Date            string `form:"date" json:"date" binding:"required"`
	Open            int    `form:"open" json:"open" binding:"gte=0,lt=1440"`
	Close           int    `form:"close" json:"close" binding:"required,gt=0,lte=1440"`
	DurationMinutes int    `form:"durationMinutes" json:"durationMinutes" binding:"required,gt=0"`
}

// SetupSlotsRequest publishes a day's bookable slots, generated from open and
// close times at a fixed duration.
type SetupSlotsRequest struct {
	ServiceID       string `json:"serviceId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Open            int    `json:"open" binding:"gte=0,lt=1440"`
	Close           int    `json:"close" binding:"required,gt=0,lte=1440"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,gt=0"`
}

// BookSlotRequest books a window within a partner's schedule. PartnerID is
// filled from the authenticated caller, never from the request body.
type BookSlotRequest struct {
	PartnerID string `json:"-"`
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Start     int    `json:"start" binding:"gte=0,lt=1440"`
	End       int    `json:"end" binding:"required,gt=0,lte=1440"`
	BookingID string `json:"bookingId" binding:"required"`
}
