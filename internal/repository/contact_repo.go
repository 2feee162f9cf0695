package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// ContactRepository handles data access for contact-form submissions.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact message with status "new".
func (r *ContactRepository) Create(m *models.ContactMessage) error {
	const q = `
		INSERT INTO contact_messages (name, email, phone, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRow(q, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.Status).
		Scan(&m.ID, &m.CreatedAt)
}

// List returns contact messages newest first with pagination.
func (r *ContactRepository) List(page, limit int) ([]models.ContactMessage, int, error) {
	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM contact_messages`); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	const q = `
		SELECT id, name, email, phone, subject, message, status, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	messages := []models.ContactMessage{}
	if err := r.db.Select(&messages, q, limit, offset); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// Count returns the total number of contact messages.
func (r *ContactRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM contact_messages`)
	return n, err
}

// CountByStatus returns how many messages are in the given status.
func (r *ContactRepository) CountByStatus(status string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM contact_messages WHERE status = $1`, status)
	return n, err
}
