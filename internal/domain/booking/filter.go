package booking

import (
	"slices"
	"strings"
)

// Filter selects bookings from a store. Zero value matches everything.
type Filter struct {
	Date       *Date
	Slot       *Slot
	ActiveOnly bool
	Email      string
}

func (f Filter) Match(b *Booking) bool {
	if f.Date != nil && !b.Date().Equal(*f.Date) {
		return false
	}
	if f.Slot != nil && b.Slot() != *f.Slot {
		return false
	}
	if f.ActiveOnly && !b.IsActive() {
		return false
	}
	if f.Email != "" && !strings.EqualFold(b.Email(), f.Email) {
		return false
	}
	return true
}

// SortChronologically orders by (date, time); bookings sharing a slot keep their insertion order.
func SortChronologically(bookings []*Booking) {
	slices.SortStableFunc(bookings, func(a, b *Booking) int {
		return strings.Compare(a.SortKey(), b.SortKey())
	})
}
