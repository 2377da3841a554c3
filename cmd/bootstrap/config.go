package bootstrap

import (
	"log/slog"

	"pro-video-services/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logIntegrations),
)

// logIntegrations reports which optional backends this process runs with.
func logIntegrations(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"storage", cfg.Storage.Driver,
		"redis_slot_lock", cfg.Redis.Enabled(),
		"kafka_billing", cfg.Kafka.Enabled(),
		"stripe_payments", cfg.Stripe.Enabled(),
		"admin_auth", cfg.Admin.Enabled(),
		"default_video_provider", cfg.Video.DefaultProvider)
}
