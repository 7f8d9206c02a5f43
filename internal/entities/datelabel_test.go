package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateLabel(t *testing.T) {
	tt := []struct {
		year, month, day int
		expected         string
	}{
		{2024, 1, 1, "January 1st 2024"},
		{2024, 3, 2, "March 2nd 2024"},
		{2024, 3, 3, "March 3rd 2024"},
		{2024, 3, 4, "March 4th 2024"},
		{2024, 9, 11, "September 11th 2024"},
		{2024, 9, 12, "September 12th 2024"},
		{2024, 9, 13, "September 13th 2024"},
		{2024, 10, 21, "October 21st 2024"},
		{2024, 10, 22, "October 22nd 2024"},
		{2024, 12, 31, "December 31st 2024"},
	}

	for _, tc := range tt {
		assert.EqualValues(t, tc.expected, FormatDateLabel(tc.year, tc.month, tc.day))
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate(2024, 2, 29))
	assert.True(t, ValidDate(2024, 12, 31))

	assert.False(t, ValidDate(2023, 2, 29))
	assert.False(t, ValidDate(2024, 13, 1))
	assert.False(t, ValidDate(2024, 0, 1))
	assert.False(t, ValidDate(2024, 4, 31))
	assert.False(t, ValidDate(2024, 1, 0))
	assert.False(t, ValidDate(0, 1, 1))
}

func TestNewDayRange(t *testing.T) {
	r := NewDayRange(2024, 3, 3)

	require.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), r.From)
	require.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), r.To)

	// inside the day
	assert.False(t, r.From.After(time.Date(2024, 3, 3, 23, 59, 59, 0, time.UTC)))
	// next midnight is excluded
	assert.False(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC).Before(r.To))
}
