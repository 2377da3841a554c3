package payment

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pro-video-services/internal/domain/payment"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/internal/pkg/errs"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway creates and reads PaymentIntents and verifies webhook events.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

func NewStripeGateway(cfg config.StripeConfig, logger *slog.Logger) *StripeGateway {
	return NewStripeGatewayWithBackends(cfg, nil, logger)
}

// NewStripeGatewayWithBackends lets callers point the client at another API host.
func NewStripeGatewayWithBackends(cfg config.StripeConfig, backends *stripe.Backends, logger *slog.Logger) *StripeGateway {
	return &StripeGateway{
		api:           client.New(cfg.SecretKey, backends),
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}
}

// NewBackends builds API backends for baseURL without network retries.
func NewBackends(baseURL string, httpClient *http.Client) *stripe.Backends {
	return &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(baseURL),
			HTTPClient:        httpClient,
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
		}),
	}
}

func (g *StripeGateway) CreateIntent(_ context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.AmountCents()),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("client_id", req.ClientID)
	params.AddMetadata("project_id", req.ProjectID)

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, g.mapErr("failed to create payment intent", err)
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) GetIntent(_ context.Context, id string) (*payment.Intent, error) {
	pi, err := g.api.PaymentIntents.Get(id, nil)
	if err != nil {
		return nil, g.mapErr("failed to retrieve payment intent", err)
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*payment.Event, error) {
	if g.webhookSecret == "" {
		return nil, errs.New("webhook secret is not configured")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "verify webhook signature")
	}

	out := &payment.Event{ID: event.ID, Type: string(event.Type)}
	if event.Data != nil && strings.HasPrefix(out.Type, "payment_intent.") {
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errs.Wrap(err, "decode payment intent")
		}
		out.IntentID = pi.ID
		out.Metadata = pi.Metadata
	}
	return out, nil
}

func (g *StripeGateway) mapErr(msg string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) &&
		(stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing) {
		return infra.NewRepoErr(infra.KindNotFound, msg)
	}
	return infra.WrapRepoErr(g.logger, infra.KindUpstream, msg, err)
}

func toIntent(pi *stripe.PaymentIntent) *payment.Intent {
	return &payment.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Currency:     strings.ToUpper(string(pi.Currency)),
		Status:       string(pi.Status),
	}
}
