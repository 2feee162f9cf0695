package service

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guardianpro/guardianpro-api/internal/models"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

func validProcessRequest() *ProcessPaymentRequest {
	return &ProcessPaymentRequest{
		Amount:        decimal.NewFromFloat(150.00),
		Currency:      "USD",
		PaymentMethod: "stripe",
		CustomerEmail: "customer@example.com",
		CustomerName:  "Jane Doe",
	}
}

func TestProcessPaymentRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProcessPaymentRequest)
		wantErr error
	}{
		{"valid", func(r *ProcessPaymentRequest) {}, nil},
		{"missing currency", func(r *ProcessPaymentRequest) { r.Currency = "" }, utils.ErrMissingField},
		{"missing method", func(r *ProcessPaymentRequest) { r.PaymentMethod = "" }, utils.ErrMissingField},
		{"missing email", func(r *ProcessPaymentRequest) { r.CustomerEmail = "" }, utils.ErrMissingField},
		{"missing name", func(r *ProcessPaymentRequest) { r.CustomerName = " " }, utils.ErrMissingField},
		{"zero amount", func(r *ProcessPaymentRequest) { r.Amount = decimal.Zero }, utils.ErrInvalidAmount},
		{"negative amount", func(r *ProcessPaymentRequest) { r.Amount = decimal.NewFromInt(-5) }, utils.ErrInvalidAmount},
		{"bad email", func(r *ProcessPaymentRequest) { r.CustomerEmail = "not-an-email" }, utils.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProcessRequest()
			tt.mutate(req)
			if err := req.Validate(); err != tt.wantErr {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBuildPaymentsCSV(t *testing.T) {
	created := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	processed := created.Add(2 * time.Second)
	txn := "stripe_1700000000001"

	payments := []models.Payment{
		{
			ReferenceNumber: "GP1700000000000ABC123",
			Amount:          decimal.RequireFromString("150.00"),
			Currency:        "USD",
			PaymentMethod:   models.MethodStripe,
			CustomerEmail:   "customer@example.com",
			CustomerName:    "Jane Doe",
			Status:          models.PaymentCompleted,
			TransactionID:   &txn,
			CreatedAt:       created,
			ProcessedAt:     &processed,
		},
		{
			ReferenceNumber: "GP1699999999999XYZ789",
			Amount:          decimal.RequireFromString("75.50"),
			Currency:        "USD",
			PaymentMethod:   models.MethodEcocash,
			CustomerEmail:   "other@example.com",
			CustomerName:    "John Smith",
			Status:          models.PaymentPending,
			CreatedAt:       created.Add(-time.Hour),
		},
	}

	out, err := BuildPaymentsCSV(payments)
	if err != nil {
		t.Fatalf("build csv failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("want 3 rows (header + 2), got %d", len(records))
	}

	wantHeader := []string{
		"Reference", "Amount", "Currency", "Payment Method",
		"Customer Name", "Customer Email", "Status", "Created At", "Processed At",
	}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Fatalf("header[%d] want %q, got %q", i, col, records[0][i])
		}
	}

	row := records[1]
	if len(row) != 9 {
		t.Fatalf("want 9 columns, got %d", len(row))
	}
	if row[0] != "GP1700000000000ABC123" || row[1] != "150" || row[2] != "USD" {
		t.Fatalf("unexpected first row: %v", row)
	}
	if row[3] != "stripe" || row[4] != "Jane Doe" || row[5] != "customer@example.com" {
		t.Fatalf("unexpected first row: %v", row)
	}
	if row[6] != "completed" {
		t.Fatalf("status want completed, got %q", row[6])
	}
	if row[8] == "" {
		t.Fatalf("processed at should be set for completed payment")
	}

	// Pending payment has no processed_at
	if records[2][8] != "" {
		t.Fatalf("processed at should be empty for pending payment, got %q", records[2][8])
	}
}

func TestBuildPaymentsCSVEmpty(t *testing.T) {
	out, err := BuildPaymentsCSV(nil)
	if err != nil {
		t.Fatalf("build csv failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("want header only, got %d lines", len(lines))
	}
}
