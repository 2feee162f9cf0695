package service

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/guardianpro/guardianpro-api/internal/models"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// ChargeRequest is the unified request passed to any payment gateway.
type ChargeRequest struct {
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone *string         `json:"customerPhone,omitempty"`
	Description   *string         `json:"description,omitempty"`
}

// ChargeResult is the unified outcome returned by any payment gateway.
type ChargeResult struct {
	Success       bool            `json:"success"`
	TransactionID string          `json:"transactionId"`
	Message       string          `json:"message"`
	Response      json.RawMessage `json:"response,omitempty"`
}

// PaymentGateway is implemented once per supported payment method.
type PaymentGateway interface {
	// Method returns the payment method this gateway handles.
	Method() models.PaymentMethod

	// Charge attempts to collect the payment.
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}

// GatewayRegistry dispatches charge requests to the gateway registered for a
// payment method.
type GatewayRegistry struct {
	gateways map[models.PaymentMethod]PaymentGateway
}

// NewGatewayRegistry creates an empty GatewayRegistry.
func NewGatewayRegistry() *GatewayRegistry {
	return &GatewayRegistry{
		gateways: make(map[models.PaymentMethod]PaymentGateway),
	}
}

// Register adds a gateway to the registry.
func (r *GatewayRegistry) Register(gw PaymentGateway) {
	r.gateways[gw.Method()] = gw
}

// Resolve returns the gateway for a method, or ErrUnsupportedMethod.
func (r *GatewayRegistry) Resolve(method models.PaymentMethod) (PaymentGateway, error) {
	gw, ok := r.gateways[method]
	if !ok {
		return nil, utils.ErrUnsupportedMethod
	}
	return gw, nil
}

// Supported reports whether a method has a registered gateway.
func (r *GatewayRegistry) Supported(method models.PaymentMethod) bool {
	_, ok := r.gateways[method]
	return ok
}
