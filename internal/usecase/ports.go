package usecase

import (
	"context"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/domain/client"
	"pro-video-services/internal/domain/payment"
	"pro-video-services/internal/domain/video"

	"github.com/google/uuid"
)

// BookingStore persists the booking ledger. ListFiltered returns bookings in
// insertion order. UpdateByKey applies fn atomically and returns the stored result.
type BookingStore interface {
	Append(ctx context.Context, b *booking.Booking) error
	ListFiltered(ctx context.Context, f booking.Filter) ([]*booking.Booking, error)
	UpdateByKey(ctx context.Context, id uuid.UUID, fn func(*booking.Booking) error) (*booking.Booking, error)
}

type ClientStore interface {
	Append(ctx context.Context, c *client.Client) error
	List(ctx context.Context) ([]*client.Client, error)
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	FindByEmail(ctx context.Context, email string) (*client.Client, error)
	UpdateByKey(ctx context.Context, id uuid.UUID, fn func(*client.Client) error) (*client.Client, error)
}

type ProjectStore interface {
	Append(ctx context.Context, p *client.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*client.Project, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*client.Project, error)
	UpdateByKey(ctx context.Context, id uuid.UUID, fn func(*client.Project) error) (*client.Project, error)
}

type CommunicationStore interface {
	Append(ctx context.Context, c *client.Communication) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*client.Communication, error)
}

// SlotLocker guards one (date, slot) pair across processes. The returned
// release func must be called once the booking has been written.
type SlotLocker interface {
	Lock(ctx context.Context, date booking.Date, slot booking.Slot) (release func(), err error)
}

// BillingRecorder receives the fire-and-forget billing entry emitted before a vendor call.
type BillingRecorder interface {
	Record(ctx context.Context, entry video.BillingEntry) error
}

// ClientRegistrar turns a fresh booking into a CRM lead.
type ClientRegistrar interface {
	RegisterFromBooking(ctx context.Context, b *booking.Booking) (*client.Client, error)
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
	GetIntent(ctx context.Context, id string) (*payment.Intent, error)
	ParseWebhook(payload []byte, signature string) (*payment.Event, error)
}
