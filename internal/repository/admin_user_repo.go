package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// AdminUserRepository handles data access for admin accounts.
type AdminUserRepository struct {
	db *sqlx.DB
}

// NewAdminUserRepository creates a new AdminUserRepository.
func NewAdminUserRepository(db *sqlx.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// GetActiveByUsername returns an active admin by username.
func (r *AdminUserRepository) GetActiveByUsername(username string) (*models.AdminUser, error) {
	const q = `
		SELECT id, username, password_hash, role, full_name, is_active, last_login_at, created_at, updated_at
		FROM admin_users
		WHERE username = $1 AND is_active = true`

	var user models.AdminUser
	if err := r.db.Get(&user, q, username); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetActiveByID returns an active admin by ID. Used by token verification to
// confirm the account still exists and has not been deactivated.
func (r *AdminUserRepository) GetActiveByID(id string) (*models.AdminUser, error) {
	const q = `
		SELECT id, username, password_hash, role, full_name, is_active, last_login_at, created_at, updated_at
		FROM admin_users
		WHERE id = $1 AND is_active = true`

	var user models.AdminUser
	if err := r.db.Get(&user, q, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new admin account.
func (r *AdminUserRepository) Create(user *models.AdminUser) error {
	const q = `
		INSERT INTO admin_users (username, password_hash, role, full_name, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(q, user.Username, user.PasswordHash, user.Role, user.FullName, user.IsActive).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// UpdateLastLogin stamps a successful login.
func (r *AdminUserRepository) UpdateLastLogin(id string) error {
	const q = `UPDATE admin_users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}
