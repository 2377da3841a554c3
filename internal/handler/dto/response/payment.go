package response

type PaymentCreatedResponse struct {
	Success      bool   `json:"success"`
	PaymentID    string `json:"paymentId"`
	ClientSecret string `json:"clientSecret"`
	Status       string `json:"status"`
}

type PaymentStatusResponse struct {
	Success  bool    `json:"success"`
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
