package payment

import "context"

// PaymentProvider covers the checkout flow for paid placements: create an
// intent the client confirms, then verify it succeeded before honoring it.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, request *PaymentRequest) (*PaymentResponse, error)
	VerifyPayment(ctx context.Context, paymentID string) (bool, error)
}

type PaymentRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type PaymentResponse struct {
	PaymentID    string  `json:"payment_id"`
	ClientSecret string  `json:"client_secret,omitempty"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}
