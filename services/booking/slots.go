// File: services/booking/slots.go
package booking

import (
	"pitchside/models"
	"pitchside/utils"
)

// overlaps reports whether the half-open intervals [s1, e1) and
// [s2, e2) intersect. Inputs are zero-padded HH:MM strings, which
// order lexicographically, so plain string comparison is correct.
// Exact adjacency (e1 == s2 or e2 == s1) is not an overlap.
func overlaps(s1, e1, s2, e2 string) bool {
	return s1 < e2 && e1 > s2
}

// candidateSlots builds the fixed grid of bookable intervals for a day,
// ascending. For the default grid (09:00-18:00, 60 minutes) that is the
// nine slots 09:00-10:00 through 17:00-18:00.
func candidateSlots(grid models.SlotGrid) []models.Slot {
	dayStart := grid.DayStartHour * 60
	dayEnd := grid.DayEndHour * 60

	var slots []models.Slot
	for start := dayStart; start+grid.SlotMinutes <= dayEnd; start += grid.SlotMinutes {
		slots = append(slots, models.Slot{
			StartTime: utils.FormatClock(start),
			EndTime:   utils.FormatClock(start + grid.SlotMinutes),
		})
	}
	return slots
}

// filterAvailable removes every candidate that overlaps an occupying
// booking. Matching on start-time equality alone would let a mid-slot
// booking (10:30-11:30) leave both neighbouring candidates visible even
// though creating either would be refused, so availability uses the
// same interval-overlap test as conflict detection.
func filterAvailable(candidates []models.Slot, booked []models.Booking) []models.Slot {
	available := make([]models.Slot, 0, len(candidates))
	for _, slot := range candidates {
		blocked := false
		for _, b := range booked {
			// Callers pass occupying bookings only; re-check so a
			// cancelled or completed booking can never hide a slot.
			if !b.Status.Occupies() {
				continue
			}
			if overlaps(slot.StartTime, slot.EndTime, b.StartTime, b.EndTime) {
				blocked = true
				break
			}
		}
		if !blocked {
			available = append(available, slot)
		}
	}
	return available
}
