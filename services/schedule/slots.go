// File: services/schedule/slots.go
package schedule

import "partnerhub/models"

// GenerateTimeSlots produces contiguous fixed-duration slots covering
// [start, end). Times are minutes from midnight. A slot is emitted only when
// it fits entirely inside the range, so a trailing remainder shorter than the
// duration is left uncovered. Pure function of its inputs.
func GenerateTimeSlots(start, end, durationMinutes int) []models.Slot {
	if durationMinutes <= 0 || start >= end {
		return nil
	}

	var slots []models.Slot
	for cur := start; cur+durationMinutes <= end; cur += durationMinutes {
		slots = append(slots, models.Slot{
			Start: cur,
			End:   cur + durationMinutes,
		})
	}
	return slots
}

// IsSlotAvailable reports whether the candidate interval [start, end) is free
// of conflicts. A candidate does not conflict with an existing slot when
// start >= slot.End or end <= slot.Start. The check covers booked and
// unbooked slots alike, so an interval already booked can never be booked
// again.
func IsSlotAvailable(slots []models.Slot, start, end int) bool {
	for _, slot := range slots {
		if start >= slot.End || end <= slot.Start {
			continue
		}
		return false
	}
	return true
}
