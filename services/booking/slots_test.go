// File: services/booking/slots_test.go
package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pitchside/models"
)

func defaultGrid() models.SlotGrid {
	return models.SlotGrid{DayStartHour: 9, DayEndHour: 18, SlotMinutes: 60}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"nested", "10:00", "12:00", "10:30", "11:00", true},
		{"partial front", "10:00", "11:00", "10:30", "11:30", true},
		{"partial back", "10:30", "11:30", "10:00", "11:00", true},
		{"adjacent before", "09:00", "10:00", "10:00", "11:00", false},
		{"adjacent after", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// The test is symmetric in the two intervals.
			assert.Equal(t, tc.want, overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestCandidateSlotsDefaultGrid(t *testing.T) {
	slots := candidateSlots(defaultGrid())

	assert.Len(t, slots, 9)
	assert.Equal(t, models.Slot{StartTime: "09:00", EndTime: "10:00"}, slots[0])
	assert.Equal(t, models.Slot{StartTime: "17:00", EndTime: "18:00"}, slots[8])
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].StartTime < slots[i].StartTime, "slots must ascend")
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime, "slots must be contiguous")
	}
}

func TestCandidateSlotsHalfHourGrid(t *testing.T) {
	grid := models.SlotGrid{DayStartHour: 9, DayEndHour: 11, SlotMinutes: 30}
	slots := candidateSlots(grid)

	assert.Len(t, slots, 4)
	assert.Equal(t, "09:30", slots[1].StartTime)
	assert.Equal(t, "10:00", slots[1].EndTime)
}

func TestFilterAvailableEmptyDay(t *testing.T) {
	slots := filterAvailable(candidateSlots(defaultGrid()), nil)
	assert.Len(t, slots, 9)
}

func TestFilterAvailableRemovesBookedSlot(t *testing.T) {
	booked := []models.Booking{
		{CoachID: "c1", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00", Status: models.BookingPending},
	}
	slots := filterAvailable(candidateSlots(defaultGrid()), booked)

	assert.Len(t, slots, 8)
	for _, s := range slots {
		assert.NotEqual(t, "10:00", s.StartTime)
	}
}

func TestFilterAvailableIgnoresNonOccupyingBookings(t *testing.T) {
	booked := []models.Booking{
		{CoachID: "c1", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00", Status: models.BookingCancelled},
		{CoachID: "c1", Date: "2026-09-01", StartTime: "14:00", EndTime: "15:00", Status: models.BookingCompleted},
	}
	slots := filterAvailable(candidateSlots(defaultGrid()), booked)

	assert.Len(t, slots, 9, "cancelled and completed bookings must not hide slots")
}

func TestFilterAvailableMidSlotBookingBlocksBothNeighbours(t *testing.T) {
	// A 10:30-11:30 session overlaps both the 10:00-11:00 and the
	// 11:00-12:00 candidates, so both disappear.
	booked := []models.Booking{
		{CoachID: "c1", Date: "2026-09-01", StartTime: "10:30", EndTime: "11:30", Status: models.BookingConfirmed},
	}
	slots := filterAvailable(candidateSlots(defaultGrid()), booked)

	assert.Len(t, slots, 7)
	for _, s := range slots {
		assert.NotEqual(t, "10:00", s.StartTime)
		assert.NotEqual(t, "11:00", s.StartTime)
	}
}
