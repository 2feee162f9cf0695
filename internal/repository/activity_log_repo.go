package repository

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// ActivityLogRepository handles the append-only audit trail.
type ActivityLogRepository struct {
	db *sqlx.DB
}

// NewActivityLogRepository creates a new ActivityLogRepository.
func NewActivityLogRepository(db *sqlx.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Insert appends an audit entry. details is marshaled to jsonb; adminID may
// be empty for anonymous actions.
func (r *ActivityLogRepository) Insert(action string, adminID *string, details interface{}) error {
	var raw json.RawMessage
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			return err
		}
		raw = b
	}

	const q = `INSERT INTO activity_logs (action, admin_id, details) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(q, action, adminID, nullableJSON(raw))
	return err
}

// ListRecent returns the newest audit entries up to limit.
func (r *ActivityLogRepository) ListRecent(limit int) ([]models.ActivityLog, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}

	const q = `
		SELECT id, action, admin_id, COALESCE(details, 'null'::jsonb) AS details, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1`

	logs := []models.ActivityLog{}
	if err := r.db.Select(&logs, q, limit); err != nil {
		return nil, err
	}
	return logs, nil
}
