//go:build unit

package booking_test

import (
	"testing"
	"time"

	"pro-video-services/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		weekday time.Weekday
		errIs   error
	}{
		{name: "calendar date", input: "2025-06-02", want: "2025-06-02", weekday: time.Monday},
		{name: "saturday", input: "2025-11-29", want: "2025-11-29", weekday: time.Saturday},
		{name: "rfc3339 keeps utc day", input: "2025-06-02T23:30:00-02:00", want: "2025-06-03", weekday: time.Tuesday},
		{name: "surrounding spaces", input: " 2025-06-06 ", want: "2025-06-06", weekday: time.Friday},
		{name: "empty", input: "", errIs: booking.ErrInvalidDate},
		{name: "garbage", input: "tomorrow", errIs: booking.ErrInvalidDate},
		{name: "impossible day", input: "2025-02-30", errIs: booking.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.ParseDate(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.weekday, got.Weekday())
		})
	}
}

func TestParseSlot(t *testing.T) {
	slot, err := booking.ParseSlot("9:00")
	require.NoError(t, err)
	assert.Equal(t, booking.Slot("09:00"), slot)

	slot, err = booking.ParseSlot("14:00")
	require.NoError(t, err)
	assert.Equal(t, booking.Slot("14:00"), slot)

	for _, bad := range []string{"", "25:00", "noon", "09:00:00"} {
		_, err := booking.ParseSlot(bad)
		assert.ErrorIs(t, err, booking.ErrInvalidSlot, bad)
	}
}
