package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// ServiceRepository handles data access for service offerings.
type ServiceRepository struct {
	db *sqlx.DB
}

// NewServiceRepository creates a new ServiceRepository.
func NewServiceRepository(db *sqlx.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// List returns all services, newest first.
func (r *ServiceRepository) List() ([]models.Service, error) {
	const q = `
		SELECT id, title, description, price, image_url, is_active, created_at, updated_at
		FROM services
		ORDER BY created_at DESC`

	services := []models.Service{}
	if err := r.db.Select(&services, q); err != nil {
		return nil, err
	}
	return services, nil
}

// Create inserts a new service.
func (r *ServiceRepository) Create(s *models.Service) error {
	const q = `
		INSERT INTO services (title, description, price, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(q, s.Title, s.Description, s.Price, s.ImageURL, s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// ServiceUpdate carries the updatable fields of a service. Nil fields are
// left unchanged.
type ServiceUpdate struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	IsActive    *bool            `json:"is_active"`
}

// Update applies a partial update and returns the updated row.
func (r *ServiceRepository) Update(id string, upd *ServiceUpdate) (*models.Service, error) {
	const q = `
		UPDATE services SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			price       = COALESCE($4, price),
			image_url   = COALESCE($5, image_url),
			is_active   = COALESCE($6, is_active),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING id, title, description, price, image_url, is_active, created_at, updated_at`

	var s models.Service
	if err := r.db.Get(&s, q, id, upd.Title, upd.Description, upd.Price, upd.ImageURL, upd.IsActive); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a service by ID and reports whether a row was deleted.
func (r *ServiceRepository) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the total number of services.
func (r *ServiceRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM services`)
	return n, err
}
