package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeProvider struct {
	client *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &StripeProvider{
		client: sc,
	}
}

func (s *StripeProvider) CreatePaymentIntent(ctx context.Context, request *PaymentRequest) (*PaymentResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(request.Amount * 100)), // Convert to cents
		Currency: stripe.String(request.Currency),
	}
	params.Context = ctx

	for key, value := range request.Metadata {
		params.AddMetadata(key, value)
	}

	pi, err := s.client.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentResponse{
		PaymentID:    pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       float64(pi.Amount) / 100,
		Currency:     string(pi.Currency),
	}, nil
}

func (s *StripeProvider) VerifyPayment(ctx context.Context, paymentID string) (bool, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := s.client.PaymentIntents.Get(paymentID, params)
	if err != nil {
		return false, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	return pi.Status == stripe.PaymentIntentStatusSucceeded, nil
}
