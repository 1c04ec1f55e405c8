package services

import (
	"context"

	"golang-food-storefront/internal/models"
	"golang-food-storefront/pkg/gateway"
)

// PaymentService proxies the platform's payment-session endpoints. The
// gateway integration itself (Stripe et al.) is entirely server-side; the
// storefront only relays the redirect URL and the verification result.
type PaymentService struct {
	client *gateway.Client
}

func NewPaymentService(client *gateway.Client) *PaymentService {
	return &PaymentService{client: client}
}

func (s *PaymentService) CreateCheckoutSession(ctx context.Context, ts gateway.TokenSource) (*models.CheckoutSession, error) {
	var session models.CheckoutSession
	if err := s.client.Post(ctx, "/api/payment/create-checkout-session", ts, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

type PaymentVerification struct {
	Status  string `json:"status"`
	OrderID string `json:"orderId"`
}

func (s *PaymentService) VerifyCheckoutSession(ctx context.Context, ts gateway.TokenSource) (*PaymentVerification, error) {
	var verification PaymentVerification
	if err := s.client.Get(ctx, "/api/payment/verify-checkout-session", ts, &verification); err != nil {
		return nil, err
	}
	return &verification, nil
}
