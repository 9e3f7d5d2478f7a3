package repository

import (
	"database/sql"
)

// ExtHandle is the subset of sqlx operations the repositories use. Both
// *sqlx.DB and *Session satisfy it, so the same repository can run against
// the pool directly or inside a request-scoped session.
type ExtHandle interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
}
