package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/pkg/clock"
	"pro-video-services/internal/pkg/errs"
	"pro-video-services/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrDateRequired    = errs.MarkNew(errs.ErrInvalidInput, "date parameter required")
	ErrBookingNotFound = errs.MarkNew(errs.ErrNotFound, "booking not found")
)

type CreateBookingParams struct {
	booking.Draft
}

type BookingResult struct {
	Booking             *booking.Booking
	ConfirmationMessage string
}

type BookingUseCase interface {
	GetAvailability(ctx context.Context, rawDate string) (booking.Date, []booking.Slot, error)
	CreateBooking(ctx context.Context, params CreateBookingParams) (*BookingResult, error)
	ListBookings(ctx context.Context) ([]*booking.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type BookingOptions struct {
	// AllowDoubleBooking skips the slot conflict check inside CreateBooking.
	AllowDoubleBooking bool
	CompanyName        string
}

type bookingUseCaseImpl struct {
	store     BookingStore
	template  booking.WeeklyTemplate
	locker    SlotLocker
	registrar ClientRegistrar
	clock     clock.Clock
	logger    *slog.Logger
	opts      BookingOptions

	// serialises check-then-append within this process
	mu sync.Mutex
}

// NewBookingUseCase wires the ledger. locker and registrar may be nil.
func NewBookingUseCase(
	store BookingStore,
	template booking.WeeklyTemplate,
	locker SlotLocker,
	registrar ClientRegistrar,
	clock clock.Clock,
	logger *slog.Logger,
	opts BookingOptions,
) BookingUseCase {
	opts.CompanyName = patch.CoalesceString(opts.CompanyName, "Pro Video Services")
	return &bookingUseCaseImpl{
		store:     store,
		template:  template,
		locker:    locker,
		registrar: registrar,
		clock:     clock,
		logger:    logger,
		opts:      opts,
	}
}

func (u *bookingUseCaseImpl) GetAvailability(ctx context.Context, rawDate string) (booking.Date, []booking.Slot, error) {
	if strings.TrimSpace(rawDate) == "" {
		return booking.Date{}, nil, ErrDateRequired
	}
	date, err := booking.ParseDate(rawDate)
	if err != nil {
		return booking.Date{}, nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	taken, err := u.store.ListFiltered(ctx, booking.Filter{Date: &date, ActiveOnly: true})
	if err != nil {
		return booking.Date{}, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return date, u.template.AvailableSlots(date, taken), nil
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*BookingResult, error) {
	b, err := booking.NewBooking(uuid.New(), params.Draft, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if u.opts.AllowDoubleBooking {
		err = u.append(ctx, b)
	} else {
		err = u.appendExclusive(ctx, b)
	}
	if err != nil {
		return nil, err
	}

	u.logger.Info("booking created",
		slog.String("booking_id", b.ID().String()),
		slog.String("date", b.Date().String()),
		slog.String("time", b.Slot().String()))

	if u.registrar != nil {
		if c, regErr := u.registrar.RegisterFromBooking(ctx, b); regErr != nil {
			u.logger.Warn("failed to register client from booking",
				slog.String("booking_id", b.ID().String()),
				slog.Any("error", regErr))
		} else {
			u.logger.Info("client registered from booking",
				slog.String("booking_id", b.ID().String()),
				slog.String("client_id", c.ID().String()))
		}
	}

	return &BookingResult{
		Booking:             b,
		ConfirmationMessage: u.confirmationMessage(b),
	}, nil
}

// appendExclusive holds the process mutex and, when configured, the distributed
// slot lock across the availability read and the append.
func (u *bookingUseCaseImpl) appendExclusive(ctx context.Context, b *booking.Booking) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.locker != nil {
		release, err := u.locker.Lock(ctx, b.Date(), b.Slot())
		if err != nil {
			if infra.IsKind(err, infra.KindLocked) {
				return u.conflict(b)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		defer release()
	}

	date, slot := b.Date(), b.Slot()
	existing, err := u.store.ListFiltered(ctx, booking.Filter{Date: &date, Slot: &slot, ActiveOnly: true})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(existing) > 0 {
		return u.conflict(b)
	}

	return u.append(ctx, b)
}

func (u *bookingUseCaseImpl) append(ctx context.Context, b *booking.Booking) error {
	if err := u.store.Append(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return u.conflict(b)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *bookingUseCaseImpl) conflict(b *booking.Booking) error {
	return errs.MarkNew(errs.ErrSlotConflict,
		fmt.Sprintf("the %s slot on %s is already booked", b.Slot(), b.Date()))
}

func (u *bookingUseCaseImpl) confirmationMessage(b *booking.Booking) string {
	projectType := patch.CoalesceString(b.ProjectType(), "video")
	return fmt.Sprintf(
		"Hi %s! Your consultation is confirmed for %s at %s. We'll discuss your %s project and how %s can help!",
		b.Name(), b.Date(), b.Slot(), projectType, u.opts.CompanyName,
	)
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*booking.Booking, error) {
	all, err := u.store.ListFiltered(ctx, booking.Filter{})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	booking.SortChronologically(all)
	return all, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := u.store.UpdateByKey(ctx, id, func(b *booking.Booking) error {
		b.Cancel()
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.logger.Info("booking cancelled", slog.String("booking_id", b.ID().String()))
	return b, nil
}
