package payment

import (
	"errors"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrMissingID     = errors.New("payment id is required")
)

const (
	DefaultCurrency    = "USD"
	DefaultDescription = "Pro Video Services - Video Production"
)

const (
	EventSucceeded = "payment_intent.succeeded"
	EventFailed    = "payment_intent.payment_failed"
)

// IntentRequest is a charge in major currency units.
type IntentRequest struct {
	Amount      float64
	Currency    string
	ClientID    string
	ProjectID   string
	Description string
}

func (r IntentRequest) Normalize() (IntentRequest, error) {
	if r.Amount <= 0 {
		return IntentRequest{}, ErrInvalidAmount
	}
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	if strings.TrimSpace(r.Description) == "" {
		r.Description = DefaultDescription
	}
	return r, nil
}

// AmountCents converts to the smallest currency unit, rounding half up.
func (r IntentRequest) AmountCents() int64 {
	return int64(r.Amount*100 + 0.5)
}

type Intent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Status       string
}

// Amount reports the intent in major units.
func (i Intent) Amount() float64 {
	return float64(i.AmountCents) / 100
}

type Event struct {
	ID       string
	Type     string
	IntentID string
	Metadata map[string]string
}
