package request

import (
	"pro-video-services/internal/domain/payment"

	"github.com/jinzhu/copier"
)

type CreatePaymentRequest struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	ClientID    string  `json:"clientId"`
	ProjectID   string  `json:"projectId"`
	Description string  `json:"description"`
}

func (r *CreatePaymentRequest) ToDomain() (payment.IntentRequest, error) {
	var req payment.IntentRequest
	err := copier.Copy(&req, r)
	return req, err
}
