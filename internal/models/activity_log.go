package models

import (
	"encoding/json"
	"time"
)

// ActivityLog is an append-only audit entry. AdminID is nil for anonymous
// actions such as contact submissions and failed logins.
type ActivityLog struct {
	ID        int64           `db:"id" json:"id"`
	Action    string          `db:"action" json:"action"`
	AdminID   *string         `db:"admin_id" json:"admin_id,omitempty"`
	Details   json.RawMessage `db:"details" json:"details,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
