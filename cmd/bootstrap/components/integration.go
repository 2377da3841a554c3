package components

import (
	"log/slog"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/infra/billing"
	"pro-video-services/internal/infra/cache"
	"pro-video-services/internal/infra/payment"
	"pro-video-services/internal/infra/template"
	"pro-video-services/internal/infra/videogen"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewSlotLocker,
		NewBillingRecorder,
		NewPaymentGateway,
		NewVideoRegistry,
		NewWeeklyTemplate,
	),
)

// Optional integrations return an untyped nil interface when disabled so
// use cases can compare against nil.

func NewSlotLocker(cfg config.Config, client *redis.Client, logger *slog.Logger) usecase.SlotLocker {
	if client == nil {
		return nil
	}
	return cache.NewRedisSlotLocker(client, cfg.Redis.SlotTTL, logger)
}

func NewBillingRecorder(cfg config.Config, writer *kafka.Writer, logger *slog.Logger) usecase.BillingRecorder {
	if writer == nil {
		return billing.NewLogRecorder(logger)
	}
	return billing.NewKafkaRecorder(writer, cfg.Kafka.BillingTopic, logger)
}

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) usecase.PaymentGateway {
	if !cfg.Stripe.Enabled() {
		logger.Warn("STRIPE_SECRET_KEY not set, payment endpoints will return 503")
		return nil
	}
	return payment.NewStripeGateway(cfg.Stripe, logger)
}

func NewVideoRegistry(cfg config.Config) (*video.Registry, error) {
	return videogen.NewRegistry(cfg.Video, videogen.NewHTTPClient(cfg.Video.RequestTimeout))
}

func NewWeeklyTemplate(cfg config.Config) (booking.WeeklyTemplate, error) {
	return template.Load(cfg.Booking.TemplateFile)
}
