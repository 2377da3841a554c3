//go:build unit

package repository

import (
	"testing"

	"pro-video-services/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingWhere(t *testing.T) {
	date, err := booking.ParseDate("2025-06-02")
	require.NoError(t, err)
	slot := booking.Slot("09:00")

	testCases := []struct {
		name      string
		filter    booking.Filter
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "zero filter selects everything",
			filter:    booking.Filter{},
			wantWhere: "",
			wantArgs:  0,
		},
		{
			name:      "active slot lookup",
			filter:    booking.Filter{Date: &date, Slot: &slot, ActiveOnly: true},
			wantWhere: " WHERE booking_date = $1 AND slot = $2 AND status = $3",
			wantArgs:  3,
		},
		{
			name:      "email only",
			filter:    booking.Filter{Email: "a@x.com"},
			wantWhere: " WHERE lower(email) = lower($1)",
			wantArgs:  1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := bookingWhere(tc.filter)
			assert.Equal(t, tc.wantWhere, where)
			assert.Len(t, args, tc.wantArgs)
		})
	}
}
