// Package repository handles all interactions with the database.
//
// It contains the raw SQL for users, properties and reservations, and the
// dynamic statement builder behind property search. Every method runs a
// single statement on the injected pool; nothing here opens a transaction.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use. pgx.Tx satisfies
// it too, so a caller can run repository methods inside its own transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
