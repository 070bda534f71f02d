// Package dbx holds the minimal database/sql surface shared by SQL-backed
// stores. Both *sql.DB and *sql.Tx satisfy DBTX, though nothing in Memoria
// relies on transactions: the storage contract is whole-value get/set only.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the stores.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
