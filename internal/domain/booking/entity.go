package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRequiredFields = errors.New("name, email, date, and time are required")
	ErrInvalidStatus         = errors.New("invalid booking status")
)

type Booking struct {
	id          uuid.UUID
	name        string
	email       string
	phone       string
	company     string
	date        Date
	slot        Slot
	projectType string
	budget      string
	message     string
	status      Status
	createdAt   time.Time
}

// Draft holds the raw fields of a booking request.
type Draft struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Date        string
	Time        string
	ProjectType string
	Budget      string
	Message     string
}

func NewBooking(id uuid.UUID, d Draft, now time.Time) (*Booking, error) {
	name := strings.TrimSpace(d.Name)
	email := strings.TrimSpace(d.Email)
	if name == "" || email == "" || strings.TrimSpace(d.Date) == "" || strings.TrimSpace(d.Time) == "" {
		return nil, ErrMissingRequiredFields
	}

	date, err := ParseDate(d.Date)
	if err != nil {
		return nil, err
	}
	slot, err := ParseSlot(d.Time)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:          id,
		name:        name,
		email:       email,
		phone:       strings.TrimSpace(d.Phone),
		company:     strings.TrimSpace(d.Company),
		date:        date,
		slot:        slot,
		projectType: strings.TrimSpace(d.ProjectType),
		budget:      strings.TrimSpace(d.Budget),
		message:     d.Message,
		status:      StatusConfirmed,
		createdAt:   now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, email, phone, company string,
	date Date,
	slot Slot,
	projectType, budget, message string,
	status Status,
	createdAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:          id,
		name:        name,
		email:       email,
		phone:       phone,
		company:     company,
		date:        date,
		slot:        slot,
		projectType: projectType,
		budget:      budget,
		message:     message,
		status:      status,
		createdAt:   createdAt,
	}, nil
}

// Cancel is idempotent; the record itself is never removed.
func (b *Booking) Cancel() {
	b.status = StatusCancelled
}

// Clone returns an independent copy so stores never share mutable state with callers.
func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}

func (b *Booking) IsActive() bool {
	return b.status != StatusCancelled
}

// SortKey orders bookings by date then slot.
func (b *Booking) SortKey() string {
	return b.date.String() + " " + b.slot.String()
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Name() string         { return b.name }
func (b *Booking) Email() string        { return b.email }
func (b *Booking) Phone() string        { return b.phone }
func (b *Booking) Company() string      { return b.company }
func (b *Booking) Date() Date           { return b.date }
func (b *Booking) Slot() Slot           { return b.slot }
func (b *Booking) ProjectType() string  { return b.projectType }
func (b *Booking) Budget() string       { return b.budget }
func (b *Booking) Message() string      { return b.message }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
