package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SessionProvider hands out one database session per request.
type SessionProvider struct {
	db *sqlx.DB
}

func NewSessionProvider(db *sqlx.DB) *SessionProvider {
	return &SessionProvider{db: db}
}

// Acquire opens a transaction-backed session. The caller must Close it on
// every exit path, typically via defer; Close after Commit is a no-op.
func (p *SessionProvider) Acquire(ctx context.Context) (*Session, error) {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("acquire session: %w", err)
	}
	return &Session{tx: tx}, nil
}

// Session is a request-scoped handle over a single transaction. Not safe for
// concurrent use, same as the underlying *sqlx.Tx.
type Session struct {
	tx   *sqlx.Tx
	done bool
}

func (s *Session) Commit() error {
	if s.done {
		return sql.ErrTxDone
	}
	s.done = true
	return s.tx.Commit()
}

// Close rolls back the session unless it was committed. Only the first call
// reaches the database, so deferring it alongside an explicit Commit is safe.
func (s *Session) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.tx.Rollback()
}

func (s *Session) Exec(query string, args ...interface{}) (sql.Result, error) {
	return s.tx.Exec(query, args...)
}

func (s *Session) QueryRow(query string, args ...interface{}) *sql.Row {
	return s.tx.QueryRow(query, args...)
}

func (s *Session) Get(dest interface{}, query string, args ...interface{}) error {
	return s.tx.Get(dest, query, args...)
}

func (s *Session) Select(dest interface{}, query string, args ...interface{}) error {
	return s.tx.Select(dest, query, args...)
}
