// File: utils/clock_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	_, err = ParseClock("9:30")
	assert.Error(t, err, "hours must be zero-padded")

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(9*60))
	assert.Equal(t, "17:45", FormatClock(17*60+45))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2026-09-01")
	assert.NoError(t, err)

	_, err = ParseDate("01-09-2026")
	assert.Error(t, err)
}
