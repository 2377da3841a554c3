package billing

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// LogRecorder writes billing entries to the application log.
type LogRecorder struct {
	logger *slog.Logger
}

func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(_ context.Context, entry video.BillingEntry) error {
	r.logger.Info("billing entry",
		slog.String("client_id", entry.ClientID),
		slog.String("project_id", entry.ProjectID),
		slog.String("provider", entry.Provider),
		slog.Float64("cost", entry.Cost),
		slog.Time("timestamp", entry.Timestamp),
		slog.String("status", entry.Status))
	return nil
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaRecorder publishes billing entries keyed by client id.
type KafkaRecorder struct {
	writer MessageWriter
	topic  string
	logger *slog.Logger
}

func NewKafkaWriter(cfg config.KafkaConfig, logger *slog.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				logger.Warn("failed to publish billing entries",
					slog.Int("count", len(msgs)),
					slog.Any("error", err))
			}
		},
	}
}

func NewKafkaRecorder(writer MessageWriter, topic string, logger *slog.Logger) *KafkaRecorder {
	return &KafkaRecorder{writer: writer, topic: topic, logger: logger}
}

func (r *KafkaRecorder) Record(ctx context.Context, entry video.BillingEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindUpstream, "failed to encode billing entry", err)
	}

	// entries without a client fall back to the provider as partition key
	key := entry.ClientID
	if key == "" {
		key = entry.Provider
	}
	msg := kafka.Message{
		Topic: r.topic,
		Key:   []byte(key),
		Value: payload,
		Time:  entry.Timestamp,
	}
	if err := r.writer.WriteMessages(ctx, msg); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindUpstream, "failed to publish billing entry", err)
	}
	return nil
}

func (r *KafkaRecorder) Close() error {
	return r.writer.Close()
}
