package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the common interface implemented by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Builder is the squirrel statement builder configured for PostgreSQL placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txCtxKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return ok
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns the pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// Exec runs a squirrel statement through q.
func Exec(ctx context.Context, q Querier, stmt sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return q.Exec(ctx, query, args...)
}

// Query runs a squirrel select through q.
func Query(ctx context.Context, q Querier, stmt sq.Sqlizer) (pgx.Rows, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}
	return q.Query(ctx, query, args...)
}

// CollectFileIDs returns the distinct file_id values of table as strings.
func CollectFileIDs(ctx context.Context, q Querier, table string) ([]string, error) {
	rows, err := Query(ctx, q, Builder.Select("DISTINCT file_id").From(table))
	if err != nil {
		return nil, fmt.Errorf("collect %s file ids: %w", table, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect %s file ids: %w", table, err)
	}
	return ids, nil
}
