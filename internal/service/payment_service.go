package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guardianpro/guardianpro-api/internal/cache"
	"github.com/guardianpro/guardianpro-api/internal/models"
	"github.com/guardianpro/guardianpro-api/internal/repository"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// PaymentService processes payments through the registered gateways and
// serves the verify/history/export read paths.
type PaymentService struct {
	paymentRepo  *repository.PaymentRepository
	activityLog  *repository.ActivityLogRepository
	gateways     *GatewayRegistry
	paymentCache *cache.PaymentCache
}

// NewPaymentService constructs a PaymentService. paymentCache may be nil;
// verify then always hits the database.
func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	activityLog *repository.ActivityLogRepository,
	gateways *GatewayRegistry,
	paymentCache *cache.PaymentCache,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		activityLog:  activityLog,
		gateways:     gateways,
		paymentCache: paymentCache,
	}
}

// ProcessPaymentRequest is the payload for POST /payments/process.
type ProcessPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	CustomerEmail string          `json:"customer_email"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone *string         `json:"customer_phone"`
	Description   *string         `json:"description"`
	ServiceID     *string         `json:"service_id"`
}

// Validate checks required fields before anything is persisted.
func (r *ProcessPaymentRequest) Validate() error {
	if strings.TrimSpace(r.Currency) == "" ||
		strings.TrimSpace(r.PaymentMethod) == "" ||
		strings.TrimSpace(r.CustomerEmail) == "" ||
		strings.TrimSpace(r.CustomerName) == "" {
		return utils.ErrMissingField
	}
	if !r.Amount.IsPositive() {
		return utils.ErrInvalidAmount
	}
	if !emailPattern.MatchString(r.CustomerEmail) {
		return utils.ErrInvalidEmail
	}
	return nil
}

// ProcessResult is the outcome returned to the caller of process.
type ProcessResult struct {
	Success       bool    `json:"success"`
	PaymentID     string  `json:"payment_id"`
	Reference     string  `json:"reference"`
	TransactionID *string `json:"transaction_id,omitempty"`
	Message       string  `json:"message"`
}

// Process validates the request, persists a pending payment, charges the
// gateway for the requested method once, and records the outcome.
func (s *PaymentService) Process(ctx context.Context, req *ProcessPaymentRequest) (*ProcessResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	method := models.PaymentMethod(strings.ToLower(strings.TrimSpace(req.PaymentMethod)))
	gw, err := s.gateways.Resolve(method)
	if err != nil {
		// Unsupported methods are rejected before any row is written.
		return nil, err
	}

	reference, err := utils.GeneratePaymentReference()
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ReferenceNumber: reference,
		Amount:          req.Amount,
		Currency:        strings.ToUpper(strings.TrimSpace(req.Currency)),
		PaymentMethod:   method,
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Description:     req.Description,
		ServiceID:       req.ServiceID,
		Status:          models.PaymentPending,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		log.Error().Err(err).Str("reference", reference).Msg("Failed to initialize payment")
		return nil, err
	}

	result, err := gw.Charge(ctx, &ChargeRequest{
		Reference:     reference,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		CustomerEmail: payment.CustomerEmail,
		CustomerName:  payment.CustomerName,
		CustomerPhone: payment.CustomerPhone,
		Description:   payment.Description,
	})
	if err != nil {
		// A transport-level gateway failure counts as a failed charge.
		log.Error().Err(err).Str("reference", reference).Str("method", string(method)).Msg("Gateway charge failed")
		result = &ChargeResult{Success: false, Message: "Payment gateway unavailable"}
	}

	now := time.Now()
	payment.ProcessedAt = &now
	payment.GatewayResponse = result.Response
	if result.TransactionID != "" {
		payment.TransactionID = &result.TransactionID
	}
	if result.Success {
		payment.Status = models.PaymentCompleted
	} else {
		payment.Status = models.PaymentFailed
	}

	if err := s.paymentRepo.UpdateOutcome(payment); err != nil {
		log.Error().Err(err).Str("reference", reference).Msg("Failed to record payment outcome")
		return nil, err
	}
	if s.paymentCache != nil {
		if err := s.paymentCache.Invalidate(ctx, reference); err != nil {
			log.Warn().Err(err).Str("reference", reference).Msg("Failed to invalidate payment cache")
		}
	}

	if err := s.activityLog.Insert("payment_processed", nil, map[string]interface{}{
		"payment_id": payment.ID,
		"reference":  reference,
		"amount":     payment.Amount,
		"status":     payment.Status,
	}); err != nil {
		log.Error().Err(err).Msg("Failed to log payment activity")
	}

	log.Info().
		Str("reference", reference).
		Str("method", string(method)).
		Str("status", string(payment.Status)).
		Msg("Payment processed")

	return &ProcessResult{
		Success:       result.Success,
		PaymentID:     payment.ID,
		Reference:     reference,
		TransactionID: payment.TransactionID,
		Message:       result.Message,
	}, nil
}

// Verify looks up a payment by its reference number, consulting the cache
// first.
func (s *PaymentService) Verify(ctx context.Context, reference string) (*models.Payment, error) {
	if s.paymentCache != nil {
		if p := s.paymentCache.Get(ctx, reference); p != nil {
			return p, nil
		}
	}

	p, err := s.paymentRepo.GetByReference(reference)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrPaymentNotFound
		}
		return nil, err
	}

	if s.paymentCache != nil {
		if err := s.paymentCache.Set(ctx, p); err != nil {
			log.Warn().Err(err).Str("reference", reference).Msg("Failed to cache payment")
		}
	}
	return p, nil
}

// History returns paginated payments with an optional status filter.
func (s *PaymentService) History(filter *repository.HistoryFilter) (*repository.HistoryResult, error) {
	return s.paymentRepo.History(filter)
}

// Export returns all payments in the optional date range, newest first.
func (s *PaymentService) Export(startDate, endDate *string) ([]models.Payment, error) {
	return s.paymentRepo.GetByDateRange(startDate, endDate)
}

// csvHeader is the fixed column set of a payments export.
var csvHeader = []string{
	"Reference", "Amount", "Currency", "Payment Method",
	"Customer Name", "Customer Email", "Status", "Created At", "Processed At",
}

// BuildPaymentsCSV renders payments as CSV: one header row, one row per
// payment in the given order, nine columns.
func BuildPaymentsCSV(payments []models.Payment) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for i := range payments {
		p := &payments[i]
		processedAt := ""
		if p.ProcessedAt != nil {
			processedAt = p.ProcessedAt.Format(time.RFC3339)
		}
		row := []string{
			p.ReferenceNumber,
			p.Amount.String(),
			p.Currency,
			string(p.PaymentMethod),
			p.CustomerName,
			p.CustomerEmail,
			string(p.Status),
			p.CreatedAt.Format(time.RFC3339),
			processedAt,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
