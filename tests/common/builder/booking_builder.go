//go:build unit || e2e

package builder

import (
	"time"

	"pro-video-services/internal/domain/booking"
	reqdto "pro-video-services/internal/handler/dto/request"
	"pro-video-services/internal/usecase"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	Company     string
	Date        string
	Time        string
	ProjectType string
	Budget      string
	Message     string
	Cancelled   bool
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		Name:        "A",
		Email:       "a@x.com",
		Date:        "2025-06-02", // Monday
		Time:        "09:00",
		ProjectType: "explainer",
		CreatedAt:   time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) Draft() booking.Draft {
	return booking.Draft{
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Company:     b.Company,
		Date:        b.Date,
		Time:        b.Time,
		ProjectType: b.ProjectType,
		Budget:      b.Budget,
		Message:     b.Message,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	bk, err := booking.NewBooking(b.ID, b.Draft(), b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if b.Cancelled {
		bk.Cancel()
	}
	return bk, nil
}

// MustBuildDomain panics on invalid fields; use only with valid builder state.
func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{Draft: b.Draft()}
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Company:     b.Company,
		Date:        b.Date,
		Time:        b.Time,
		ProjectType: b.ProjectType,
		Budget:      b.Budget,
		Message:     b.Message,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithSlot(date, slot string) *BookingBuilder {
	b.Date = date
	b.Time = slot
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Cancelled = true
	return b
}
