package components

import (
	"log/slog"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/domain/user"
	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/pkg/clock"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseServicesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewAdmin,
	NewClientRegistrar,
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		NewBookingUseCase,
		NewVideoUseCase,
		usecase.NewClientUseCase,
		usecase.NewPricingUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewAuthUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAdmin(cfg config.Config, logger *slog.Logger) (*user.Admin, error) {
	email, err := user.NewEmail(cfg.Admin.Email)
	if err != nil {
		return nil, err
	}
	if !cfg.Admin.Enabled() {
		logger.Warn("ADMIN_PASSWORD_HASH not set, admin routes are open and login is disabled")
	}
	return user.NewAdmin(email, cfg.Admin.PasswordHash), nil
}

// NewClientRegistrar returns nil when bookings should not create CRM leads.
func NewClientRegistrar(cfg config.Config, clients usecase.ClientUseCase) usecase.ClientRegistrar {
	if !cfg.Booking.AutoCreateClient {
		return nil
	}
	return clients
}

func NewBookingUseCase(
	cfg config.Config,
	store usecase.BookingStore,
	template booking.WeeklyTemplate,
	locker usecase.SlotLocker,
	registrar usecase.ClientRegistrar,
	clock clock.Clock,
	logger *slog.Logger,
) usecase.BookingUseCase {
	return usecase.NewBookingUseCase(store, template, locker, registrar, clock, logger, usecase.BookingOptions{
		AllowDoubleBooking: cfg.Booking.AllowDoubleBooking,
		CompanyName:        cfg.Booking.ConfirmationCompany,
	})
}

func NewVideoUseCase(
	cfg config.Config,
	registry *video.Registry,
	recorder usecase.BillingRecorder,
	clock clock.Clock,
	logger *slog.Logger,
) usecase.VideoUseCase {
	return usecase.NewVideoUseCase(registry, recorder, clock, logger, usecase.VideoOptions{
		DefaultProvider: cfg.Video.DefaultProvider,
		Timeout:         cfg.Video.RequestTimeout,
	})
}
