package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-01T09:00:00", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"2024-01-01T09:00", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"2024-01-01 09:00:00", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"2024-01-01T09:00:00.250", time.Date(2024, 1, 1, 9, 0, 0, 250_000_000, time.UTC)},
		{"2024-01-01T10:00:00+01:00", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"2024-01-01T09:00:00Z", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		require.NoError(t, err, tc.in)
		assert.True(t, tc.want.Equal(got), "%s: got %v", tc.in, got)
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("yesterday")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "2024-01-01T09:15:00", FormatTimestamp(time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-01T09:15:00.5", FormatTimestamp(time.Date(2024, 1, 1, 9, 15, 0, 500_000_000, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), dayAfter(d))

	_, err = ParseDate("31/01/2024")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid date format", ve.Message)
}
