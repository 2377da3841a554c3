package booking

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// WeeklyTemplate maps a weekday to its ordered consultation slots.
// Weekdays without an entry have no availability.
type WeeklyTemplate struct {
	slots map[time.Weekday][]Slot
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func DefaultWeeklyTemplate() WeeklyTemplate {
	full := []Slot{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
	return WeeklyTemplate{slots: map[time.Weekday][]Slot{
		time.Monday:    full,
		time.Tuesday:   full,
		time.Wednesday: full,
		time.Thursday:  full,
		time.Friday:    {"09:00", "10:00", "11:00", "14:00", "15:00"},
	}}
}

// NewWeeklyTemplate builds a template from lower-case weekday names to HH:MM labels.
func NewWeeklyTemplate(days map[string][]string) (WeeklyTemplate, error) {
	out := WeeklyTemplate{slots: make(map[time.Weekday][]Slot, len(days))}
	for name, labels := range days {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return WeeklyTemplate{}, fmt.Errorf("unknown weekday %q", name)
		}
		slots := make([]Slot, 0, len(labels))
		for _, label := range labels {
			slot, err := ParseSlot(label)
			if err != nil {
				return WeeklyTemplate{}, fmt.Errorf("%s: %w", name, err)
			}
			if slices.Contains(slots, slot) {
				return WeeklyTemplate{}, fmt.Errorf("%s: duplicate slot %s", name, slot)
			}
			slots = append(slots, slot)
		}
		out.slots[day] = slots
	}
	return out, nil
}

// SlotsFor returns a copy of the template slots for the weekday of d.
func (w WeeklyTemplate) SlotsFor(d Date) []Slot {
	return slices.Clone(w.slots[d.Weekday()])
}

// Offers reports whether slot is part of the template for d.
func (w WeeklyTemplate) Offers(d Date, slot Slot) bool {
	return slices.Contains(w.slots[d.Weekday()], slot)
}

// AvailableSlots subtracts the slots held by active bookings on d, keeping template order.
func (w WeeklyTemplate) AvailableSlots(d Date, bookings []*Booking) []Slot {
	taken := make(map[Slot]struct{}, len(bookings))
	for _, b := range bookings {
		if b.IsActive() && b.Date().Equal(d) {
			taken[b.Slot()] = struct{}{}
		}
	}

	available := make([]Slot, 0, len(w.slots[d.Weekday()]))
	for _, slot := range w.slots[d.Weekday()] {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}
