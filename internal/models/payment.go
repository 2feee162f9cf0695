package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string
type PaymentStatus string

// Supported payment methods. Each maps to one gateway implementation.
const (
	MethodStripe  PaymentMethod = "stripe"
	MethodPayPal  PaymentMethod = "paypal"
	MethodPaynow  PaymentMethod = "paynow"
	MethodEcocash PaymentMethod = "ecocash"
)

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment captures the lifecycle of a customer payment. A row is inserted as
// pending before the gateway is called and updated once with the outcome.
type Payment struct {
	ID              string          `db:"id" json:"id"`
	ReferenceNumber string          `db:"reference_number" json:"reference_number"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	Currency        string          `db:"currency" json:"currency"`
	PaymentMethod   PaymentMethod   `db:"payment_method" json:"payment_method"`
	CustomerEmail   string          `db:"customer_email" json:"customer_email"`
	CustomerName    string          `db:"customer_name" json:"customer_name"`
	CustomerPhone   *string         `db:"customer_phone" json:"customer_phone,omitempty"`
	Description     *string         `db:"description" json:"description,omitempty"`
	ServiceID       *string         `db:"service_id" json:"service_id,omitempty"`
	Status          PaymentStatus   `db:"status" json:"status"`
	TransactionID   *string         `db:"transaction_id" json:"transaction_id,omitempty"`
	GatewayResponse json.RawMessage `db:"gateway_response" json:"gateway_response,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	ProcessedAt     *time.Time      `db:"processed_at" json:"processed_at,omitempty"`
	UpdatedAt       time.Time       `db:"updated_at" json:"-"`
}
