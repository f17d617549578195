package database

import (
	"context"
	"database/sql"
	"strconv"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Placeholder returns the bind marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Dialect() Dialect
	SQLDB() *sql.DB
}

// ErrNoRows is what Row.Scan returns for an empty result on every engine.
var ErrNoRows = sql.ErrNoRows

type Row interface {
	Scan(dest ...any) error
}
