package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// PayPalGateway is a placeholder PayPal integration.
type PayPalGateway struct{}

// NewPayPalGateway constructs a PayPalGateway.
func NewPayPalGateway() *PayPalGateway {
	return &PayPalGateway{}
}

// Method returns the payment method this gateway handles.
func (g *PayPalGateway) Method() models.PaymentMethod {
	return models.MethodPayPal
}

// Charge attempts to collect the payment.
func (g *PayPalGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error) {
	return &ChargeResult{
		Success:       true,
		TransactionID: fmt.Sprintf("paypal_%d", time.Now().UnixMilli()),
		Message:       "Payment processed successfully",
		Response:      json.RawMessage(`{"mock":true}`),
	}, nil
}
