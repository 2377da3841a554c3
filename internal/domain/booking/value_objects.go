package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDate = errors.New("date must be a calendar date (YYYY-MM-DD)")
	ErrInvalidSlot = errors.New("time must be a slot label (HH:MM)")
)

const (
	dateLayout = "2006-01-02"
	slotLayout = "15:04"
)

// Date is a calendar day normalised to UTC midnight.
type Date struct {
	t time.Time
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp; a timestamp keeps only its UTC calendar day.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrInvalidDate
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, ErrInvalidDate
}

func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d Date) Time() time.Time        { return d.t }
func (d Date) Weekday() time.Weekday  { return d.t.Weekday() }
func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// Slot is an HH:MM label from the weekly template.
type Slot string

func ParseSlot(s string) (Slot, error) {
	t, err := time.Parse(slotLayout, strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidSlot
	}
	return Slot(t.Format(slotLayout)), nil
}

func (s Slot) String() string {
	return string(s)
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
