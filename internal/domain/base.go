package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Model carries the columns shared by every persisted entity. DeletedAt is a
// soft-delete slot: no operation writes it yet, rows are insert-only.
type Model struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt sql.NullTime `json:"deleted_at,omitempty" db:"deleted_at"`
}
