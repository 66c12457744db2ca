package repositories

import (
	"database/sql"
	"errors"
)

// ErrDatabaseError is returned for unexpected database errors.
// It wraps the more specific driver error.
var ErrDatabaseError = errors.New("database error")

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx so repository writes
// can run inside a transaction or against the pool directly.
type SQLExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
}
