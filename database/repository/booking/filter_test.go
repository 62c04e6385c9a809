// File: database/repository/booking/filter_test.go
package bookingRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func TestOverlapFilterMatchesOccupyingBookingsOnly(t *testing.T) {
	filter := overlapFilter("c1", "2026-09-01", "10:00", "11:00", "")

	assert.Equal(t, "c1", filter["coach_id"])
	assert.Equal(t, "2026-09-01", filter["date"])
	// Cancelled and completed bookings carry occupies=false and must
	// never count toward a conflict.
	assert.Equal(t, true, filter["occupies"])
	_, hasExclude := filter["id"]
	assert.False(t, hasExclude)
}

func TestOverlapFilterIntervalBounds(t *testing.T) {
	filter := overlapFilter("c1", "2026-09-01", "10:00", "11:00", "")

	start, ok := filter["start_time"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "11:00", start["$lt"], "a booking conflicts only if it starts before the window ends")

	end, ok := filter["end_time"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "10:00", end["$gt"], "a booking conflicts only if it ends after the window starts")
}

func TestOverlapFilterExcludeID(t *testing.T) {
	filter := overlapFilter("c1", "2026-09-01", "10:00", "11:00", "b42")

	exclude, ok := filter["id"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "b42", exclude["$ne"])
}
