package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs store calls inside one transaction carried on the context.
// Row locks taken with SELECT ... FOR UPDATE inside RunInTx are held until
// fn returns, which is how session mutations are serialized.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx commits when fn returns nil and rolls back otherwise.
// A panic inside fn rolls back and is re-raised. When ctx already carries a
// transaction, fn joins it and the outermost call decides the outcome.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return MapError(fmt.Errorf("begin transaction: %w", err), "transaction", "")
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		// Rollback must outlive a cancelled request context.
		rbErr := tx.Rollback(context.WithoutCancel(ctx))
		if r := recover(); r != nil {
			panic(r)
		}
		if rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(fmt.Errorf("commit transaction: %w", err), "transaction", "")
	}
	committed = true

	return nil
}
