package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is an interface that abstracts the database access layer.
// It is implemented by *pgxpool.Pool, pgx.Conn and pgx.Tx, allowing
// our code to work with a pooled connection, a single connection or
// a transaction. Every call acquires a connection from the pool and
// releases it on all exit paths, including errors.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
