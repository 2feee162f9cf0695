package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// PaynowGateway is a placeholder Paynow integration.
type PaynowGateway struct{}

// NewPaynowGateway constructs a PaynowGateway.
func NewPaynowGateway() *PaynowGateway {
	return &PaynowGateway{}
}

// Method returns the payment method this gateway handles.
func (g *PaynowGateway) Method() models.PaymentMethod {
	return models.MethodPaynow
}

// Charge attempts to collect the payment.
func (g *PaynowGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error) {
	return &ChargeResult{
		Success:       true,
		TransactionID: fmt.Sprintf("paynow_%d", time.Now().UnixMilli()),
		Message:       "Payment processed successfully",
		Response:      json.RawMessage(`{"mock":true}`),
	}, nil
}
