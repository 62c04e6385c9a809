// File: models/booking_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingCompleted, true},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingCompleted, BookingConfirmed, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCancelled, BookingCompleted, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}

	// A no-op status write is always allowed.
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted} {
		assert.True(t, CanTransition(s, s))
	}
}

func TestOccupies(t *testing.T) {
	assert.True(t, BookingPending.Occupies())
	assert.True(t, BookingConfirmed.Occupies())
	assert.False(t, BookingCancelled.Occupies())
	assert.False(t, BookingCompleted.Occupies())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(BookingConfirmed))
	assert.False(t, ValidStatus("snoozed"))
	assert.False(t, ValidStatus(""))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
}
