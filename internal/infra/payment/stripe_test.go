//go:build unit

package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pro-video-services/internal/domain/payment"
	"pro-video-services/internal/infra"
	paymentinfra "pro-video-services/internal/infra/payment"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const webhookSecret = "whsec_test_secret"

func newGateway(t *testing.T, handler http.HandlerFunc) *paymentinfra.StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.StripeConfig{SecretKey: "sk_test_123", WebhookSecret: webhookSecret}
	return paymentinfra.NewStripeGatewayWithBackends(cfg, paymentinfra.NewBackends(srv.URL, srv.Client()), testutil.DiscardLogger())
}

func TestStripeGateway_CreateIntent(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "150050", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "Wedding highlights", r.PostForm.Get("description"))
		assert.Equal(t, "client-1", r.PostForm.Get("metadata[client_id]"))
		assert.Equal(t, "project-1", r.PostForm.Get("metadata[project_id]"))
		assert.Equal(t, "true", r.PostForm.Get("automatic_payment_methods[enabled]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc","amount":150050,"currency":"usd","status":"requires_payment_method"}`))
	})

	intent, err := gw.CreateIntent(context.Background(), payment.IntentRequest{
		Amount:      1500.50,
		Currency:    "USD",
		ClientID:    "client-1",
		ProjectID:   "project-1",
		Description: "Wedding highlights",
	})

	require.NoError(t, err)
	assert.Equal(t, &payment.Intent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret_abc",
		AmountCents:  150050,
		Currency:     "USD",
		Status:       "requires_payment_method",
	}, intent)
}

func TestStripeGateway_GetIntent(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:   "success: intent found",
			status: http.StatusOK,
			body:   `{"id":"pi_123","object":"payment_intent","amount":2500,"currency":"eur","status":"succeeded"}`,
		},
		{
			name:     "error: missing intent is not found",
			status:   http.StatusNotFound,
			body:     `{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such payment_intent"}}`,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "error: authentication failure is upstream",
			status:   http.StatusUnauthorized,
			body:     `{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`,
			wantKind: infra.KindUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			intent, err := gw.GetIntent(context.Background(), "pi_123")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "succeeded", intent.Status)
			assert.Equal(t, "EUR", intent.Currency)
			assert.InDelta(t, 25.0, intent.Amount(), 0.001)
		})
	}
}

func TestStripeGateway_ParseWebhook(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	payload := []byte(`{"id":"evt_1","object":"event","api_version":"2020-08-27","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","object":"payment_intent","metadata":{"client_id":"client-1","project_id":"project-1"}}}}`)

	t.Run("success: valid signature", func(t *testing.T) {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   payload,
			Secret:    webhookSecret,
			Timestamp: time.Now(),
		})

		event, err := gw.ParseWebhook(signed.Payload, signed.Header)

		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, payment.EventSucceeded, event.Type)
		assert.Equal(t, "pi_123", event.IntentID)
		assert.Equal(t, map[string]string{"client_id": "client-1", "project_id": "project-1"}, event.Metadata)
	})

	t.Run("error: signature from another secret", func(t *testing.T) {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload: payload,
			Secret:  "whsec_other",
		})

		_, err := gw.ParseWebhook(signed.Payload, signed.Header)
		assert.Error(t, err)
	})

	t.Run("error: missing header", func(t *testing.T) {
		_, err := gw.ParseWebhook(payload, "")
		assert.Error(t, err)
	})
}
