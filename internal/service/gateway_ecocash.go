package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// EcocashGateway is a placeholder EcoCash integration. EcoCash charges are
// pushed to the customer's phone, so the request should carry a phone number.
type EcocashGateway struct{}

// NewEcocashGateway constructs an EcocashGateway.
func NewEcocashGateway() *EcocashGateway {
	return &EcocashGateway{}
}

// Method returns the payment method this gateway handles.
func (g *EcocashGateway) Method() models.PaymentMethod {
	return models.MethodEcocash
}

// Charge attempts to collect the payment.
func (g *EcocashGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error) {
	return &ChargeResult{
		Success:       true,
		TransactionID: fmt.Sprintf("ecocash_%d", time.Now().UnixMilli()),
		Message:       "Payment processed successfully",
		Response:      json.RawMessage(`{"mock":true}`),
	}, nil
}
