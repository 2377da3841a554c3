package usecase

import (
	"context"
	"log/slog"
	"strings"

	"pro-video-services/internal/domain/payment"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/pkg/errs"
)

var (
	ErrPaymentsDisabled = errs.MarkNew(errs.ErrPaymentsDisabled, "payment gateway is not configured")
	ErrPaymentNotFound  = errs.MarkNew(errs.ErrNotFound, "payment not found")
)

type PaymentUseCase interface {
	CreatePayment(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
	GetPaymentStatus(ctx context.Context, id string) (*payment.Intent, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*payment.Event, error)
}

type paymentUseCaseImpl struct {
	gateway PaymentGateway
	logger  *slog.Logger
}

// NewPaymentUseCase accepts a nil gateway; every operation then reports ErrPaymentsDisabled.
func NewPaymentUseCase(gateway PaymentGateway, logger *slog.Logger) PaymentUseCase {
	return &paymentUseCaseImpl{gateway: gateway, logger: logger}
}

func (u *paymentUseCaseImpl) CreatePayment(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	if u.gateway == nil {
		return nil, ErrPaymentsDisabled
	}
	req, err := req.Normalize()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	intent, err := u.gateway.CreateIntent(ctx, req)
	if err != nil {
		return nil, errs.Wrap(err, "create payment intent")
	}

	u.logger.Info("payment created",
		slog.String("payment_id", intent.ID),
		slog.String("client_id", req.ClientID),
		slog.String("project_id", req.ProjectID),
		slog.Int64("amount_cents", intent.AmountCents),
		slog.String("currency", intent.Currency))
	return intent, nil
}

func (u *paymentUseCaseImpl) GetPaymentStatus(ctx context.Context, id string) (*payment.Intent, error) {
	if u.gateway == nil {
		return nil, ErrPaymentsDisabled
	}
	if strings.TrimSpace(id) == "" {
		return nil, errs.Mark(payment.ErrMissingID, errs.ErrValidation)
	}

	intent, err := u.gateway.GetIntent(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Wrap(err, "get payment intent")
	}
	return intent, nil
}

// HandleWebhook verifies and logs the event. Events are not linked back to
// booking or project state.
func (u *paymentUseCaseImpl) HandleWebhook(_ context.Context, payload []byte, signature string) (*payment.Event, error) {
	if u.gateway == nil {
		return nil, ErrPaymentsDisabled
	}

	event, err := u.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSignature)
	}

	switch event.Type {
	case payment.EventSucceeded:
		u.logger.Info("payment completed",
			slog.String("payment_id", event.IntentID),
			slog.String("client_id", event.Metadata["client_id"]),
			slog.String("project_id", event.Metadata["project_id"]))
	case payment.EventFailed:
		u.logger.Warn("payment failed", slog.String("payment_id", event.IntentID))
	default:
		u.logger.Info("payment webhook received", slog.String("type", event.Type))
	}
	return event, nil
}
