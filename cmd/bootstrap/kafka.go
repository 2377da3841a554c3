package bootstrap

import (
	"context"
	"log/slog"

	"pro-video-services/internal/infra/billing"
	"pro-video-services/internal/pkg/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewKafkaWriter,
	),
)

// NewKafkaWriter returns nil when no brokers are configured.
func NewKafkaWriter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *kafka.Writer {
	if !cfg.Kafka.Enabled() {
		return nil
	}

	writer := billing.NewKafkaWriter(cfg.Kafka, logger)
	logger.Info("billing entries will be published to kafka",
		"brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.BillingTopic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			// flushes pending async batches
			return writer.Close()
		},
	})
	return writer
}
