package model

import "time"

// AuditFields carries the shared created/updated timestamps. Row types embed
// it instead of inheriting from a common base.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
