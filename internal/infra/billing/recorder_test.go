//go:build unit

package billing_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/infra/billing"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/tests/common/testutil"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

var testEntry = video.BillingEntry{
	ClientID:  "c-1",
	ProjectID: "p-1",
	Provider:  video.ProviderRunway,
	Cost:      5.00,
	Timestamp: time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC),
	Status:    video.BillingStatusInitiated,
}

func TestKafkaRecorder_KeyFallsBackToProvider(t *testing.T) {
	w := &fakeWriter{}
	rec := billing.NewKafkaRecorder(w, "video.billing", testutil.DiscardLogger())

	entry := testEntry
	entry.ClientID = ""
	require.NoError(t, rec.Record(context.Background(), entry))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "runway", string(w.msgs[0].Key))
}

func TestKafkaRecorder_Record(t *testing.T) {
	w := &fakeWriter{}
	rec := billing.NewKafkaRecorder(w, "video.billing", testutil.DiscardLogger())

	require.NoError(t, rec.Record(context.Background(), testEntry))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "video.billing", msg.Topic)
	assert.Equal(t, "c-1", string(msg.Key))
	assert.Equal(t, testEntry.Timestamp, msg.Time)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "c-1", decoded["clientId"])
	assert.Equal(t, "p-1", decoded["projectId"])
	assert.Equal(t, "initiated", decoded["status"])
	assert.InDelta(t, 5.0, decoded["cost"], 0.0001)

	require.NoError(t, rec.Close())
	assert.True(t, w.closed)
}

func TestKafkaRecorder_WriteFailure(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	rec := billing.NewKafkaRecorder(w, "video.billing", testutil.DiscardLogger())

	err := rec.Record(context.Background(), testEntry)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUpstream))
}

func TestLogRecorder_Record(t *testing.T) {
	rec := billing.NewLogRecorder(testutil.DiscardLogger())
	assert.NoError(t, rec.Record(context.Background(), testEntry))
}

func TestNewKafkaWriter(t *testing.T) {
	w := billing.NewKafkaWriter(config.KafkaConfig{Brokers: []string{"broker-1:9092", "broker-2:9092"}}, testutil.DiscardLogger())
	defer w.Close()

	assert.True(t, w.Async)
	assert.Empty(t, w.Topic)
	assert.Equal(t, "broker-1:9092,broker-2:9092", w.Addr.String())
}
