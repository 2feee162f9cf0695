package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// FAQRepository handles data access for FAQs.
type FAQRepository struct {
	db *sqlx.DB
}

// NewFAQRepository creates a new FAQRepository.
func NewFAQRepository(db *sqlx.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

// List returns all FAQs in display order.
func (r *FAQRepository) List() ([]models.FAQ, error) {
	const q = `
		SELECT id, question, answer, category, sort_order, is_active, created_at, updated_at
		FROM faqs
		ORDER BY sort_order ASC`

	faqs := []models.FAQ{}
	if err := r.db.Select(&faqs, q); err != nil {
		return nil, err
	}
	return faqs, nil
}

// Create inserts a new FAQ.
func (r *FAQRepository) Create(f *models.FAQ) error {
	const q = `
		INSERT INTO faqs (question, answer, category, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(q, f.Question, f.Answer, f.Category, f.SortOrder, f.IsActive).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

// FAQUpdate carries the updatable fields of a FAQ. Nil fields are left
// unchanged.
type FAQUpdate struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	Category  *string `json:"category"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// Update applies a partial update and returns the updated row.
func (r *FAQRepository) Update(id string, upd *FAQUpdate) (*models.FAQ, error) {
	const q = `
		UPDATE faqs SET
			question   = COALESCE($2, question),
			answer     = COALESCE($3, answer),
			category   = COALESCE($4, category),
			sort_order = COALESCE($5, sort_order),
			is_active  = COALESCE($6, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, question, answer, category, sort_order, is_active, created_at, updated_at`

	var f models.FAQ
	if err := r.db.Get(&f, q, id, upd.Question, upd.Answer, upd.Category, upd.SortOrder, upd.IsActive); err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete removes a FAQ by ID and reports whether a row was deleted.
func (r *FAQRepository) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the total number of FAQs.
func (r *FAQRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM faqs`)
	return n, err
}
