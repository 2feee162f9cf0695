package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// StripeGateway is a placeholder Stripe integration. It accepts every charge
// and fabricates a transaction ID.
// TODO: replace with a real PaymentIntent flow once Stripe credentials exist.
type StripeGateway struct{}

// NewStripeGateway constructs a StripeGateway.
func NewStripeGateway() *StripeGateway {
	return &StripeGateway{}
}

// Method returns the payment method this gateway handles.
func (g *StripeGateway) Method() models.PaymentMethod {
	return models.MethodStripe
}

// Charge attempts to collect the payment.
func (g *StripeGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error) {
	return &ChargeResult{
		Success:       true,
		TransactionID: fmt.Sprintf("stripe_%d", time.Now().UnixMilli()),
		Message:       "Payment processed successfully",
		Response:      json.RawMessage(`{"mock":true}`),
	}, nil
}
