package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs coordinator operations inside one PostgreSQL transaction.
// A context that already carries a transaction is joined, never nested.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx commits when fn returns nil and rolls back otherwise, including on panic.
// Rollback runs detached from ctx so an expired request deadline still releases the tx.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("tx begin: %w", err)
	}

	rollback := func() error {
		return tx.Rollback(context.WithoutCancel(ctx))
	}

	defer func() {
		if r := recover(); r != nil {
			_ = rollback()
			panic(r)
		}
	}()

	if fnErr := fn(withTx(ctx, tx)); fnErr != nil {
		if rbErr := rollback(); rbErr != nil {
			return errors.Join(fnErr, fmt.Errorf("tx rollback: %w", rbErr))
		}
		return fnErr
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}
	return nil
}
