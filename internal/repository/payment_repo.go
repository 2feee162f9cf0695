package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// PaymentRepository handles data access for payments.
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// nullableJSON converts an empty raw message to nil for proper NULL handling
// in PostgreSQL.
func nullableJSON(v json.RawMessage) interface{} {
	if len(v) == 0 {
		return nil
	}
	return []byte(v)
}

// Create inserts a new pending payment row.
func (r *PaymentRepository) Create(p *models.Payment) error {
	const q = `
		INSERT INTO payments (
			reference_number, amount, currency, payment_method,
			customer_email, customer_name, customer_phone,
			description, service_id, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(q,
		p.ReferenceNumber, p.Amount, p.Currency, p.PaymentMethod,
		p.CustomerEmail, p.CustomerName, p.CustomerPhone,
		p.Description, p.ServiceID, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// UpdateOutcome records the gateway result for a payment.
func (r *PaymentRepository) UpdateOutcome(p *models.Payment) error {
	const q = `
		UPDATE payments SET
			status           = $2,
			transaction_id   = $3,
			gateway_response = $4,
			processed_at     = $5,
			updated_at       = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(q, p.ID, p.Status, p.TransactionID, nullableJSON(p.GatewayResponse), p.ProcessedAt)
	return err
}

// GetByReference returns a payment by its customer-facing reference number.
func (r *PaymentRepository) GetByReference(reference string) (*models.Payment, error) {
	const q = `
		SELECT id, reference_number, amount, currency, payment_method,
		       customer_email, customer_name, customer_phone, description, service_id,
		       status, transaction_id, COALESCE(gateway_response, 'null'::jsonb) AS gateway_response,
		       created_at, processed_at, updated_at
		FROM payments
		WHERE reference_number = $1
		LIMIT 1`

	var p models.Payment
	if err := r.db.Get(&p, q, reference); err != nil {
		return nil, err
	}
	return &p, nil
}

// HistoryFilter holds filters for payment history queries.
type HistoryFilter struct {
	Status *string
	Page   int
	Limit  int
}

// HistoryResult contains paginated payment results.
type HistoryResult struct {
	Payments   []models.Payment
	TotalItems int
	TotalPages int
	Page       int
	Limit      int
}

// History returns payments newest first with optional status filter and
// pagination.
func (r *PaymentRepository) History(filter *HistoryFilter) (*HistoryResult, error) {
	baseQ := `FROM payments WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseQ += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var total int
	if err := r.db.Get(&total, "SELECT COUNT(*) "+baseQ, args...); err != nil {
		return nil, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	offset := (filter.Page - 1) * filter.Limit
	totalPages := (total + filter.Limit - 1) / filter.Limit

	selectQ := fmt.Sprintf(`
		SELECT id, reference_number, amount, currency, payment_method,
		       customer_email, customer_name, customer_phone, description, service_id,
		       status, transaction_id, COALESCE(gateway_response, 'null'::jsonb) AS gateway_response,
		       created_at, processed_at, updated_at
		%s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, baseQ, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	payments := []models.Payment{}
	if err := r.db.Select(&payments, selectQ, args...); err != nil {
		return nil, err
	}

	return &HistoryResult{
		Payments:   payments,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// GetByDateRange returns payments created within the optional date bounds,
// newest first. Used by export.
func (r *PaymentRepository) GetByDateRange(startDate, endDate *string) ([]models.Payment, error) {
	q := `
		SELECT id, reference_number, amount, currency, payment_method,
		       customer_email, customer_name, customer_phone, description, service_id,
		       status, transaction_id, COALESCE(gateway_response, 'null'::jsonb) AS gateway_response,
		       created_at, processed_at, updated_at
		FROM payments WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if startDate != nil && *startDate != "" {
		q += fmt.Sprintf(" AND created_at >= $%d::date", argIdx)
		args = append(args, *startDate)
		argIdx++
	}
	if endDate != nil && *endDate != "" {
		q += fmt.Sprintf(" AND created_at < ($%d::date + interval '1 day')", argIdx)
		args = append(args, *endDate)
		argIdx++
	}

	q += " ORDER BY created_at DESC"

	payments := []models.Payment{}
	if err := r.db.Select(&payments, q, args...); err != nil {
		return nil, err
	}
	return payments, nil
}

// ExpireStalePending marks pending payments older than maxAge as failed.
// Returns the references that were expired.
func (r *PaymentRepository) ExpireStalePending(maxAge time.Duration) ([]string, error) {
	const q = `
		UPDATE payments SET
			status           = 'failed',
			gateway_response = '{"expired": true}'::jsonb,
			processed_at     = NOW(),
			updated_at       = NOW()
		WHERE status = 'pending'
		  AND created_at < NOW() - $1::interval
		RETURNING reference_number`

	intervalStr := fmt.Sprintf("%d seconds", int(maxAge.Seconds()))

	refs := []string{}
	if err := r.db.Select(&refs, q, intervalStr); err != nil {
		return nil, err
	}
	return refs, nil
}

// Count returns the total number of payments.
func (r *PaymentRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM payments`)
	return n, err
}
