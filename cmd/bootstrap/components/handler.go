package components

import (
	"pro-video-services/internal/handler"
	"pro-video-services/internal/handler/api"
	"pro-video-services/internal/handler/middleware"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewVideoHandler,
		api.NewClientHandler,
		api.NewPaymentHandler,
		NewHandlers,
		NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	health *api.HealthHandler,
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	video *api.VideoHandler,
	client *api.ClientHandler,
	payment *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Health:  health,
		Auth:    auth,
		Booking: booking,
		Video:   video,
		Client:  client,
		Payment: payment,
	}
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, authUseCase usecase.AuthUseCase) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokenValidator, authUseCase.AdminEnabled())
}

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}
