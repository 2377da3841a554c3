package memory

import (
	"context"

	"pro-video-services/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingStore struct {
	records *Collection[*booking.Booking]
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		records: NewCollection("booking", (*booking.Booking).ID, (*booking.Booking).Clone),
	}
}

func (s *BookingStore) Append(_ context.Context, b *booking.Booking) error {
	return s.records.Append(b)
}

func (s *BookingStore) ListFiltered(_ context.Context, f booking.Filter) ([]*booking.Booking, error) {
	return s.records.Filter(f.Match), nil
}

func (s *BookingStore) UpdateByKey(_ context.Context, id uuid.UUID, fn func(*booking.Booking) error) (*booking.Booking, error) {
	return s.records.Update(id, fn)
}
