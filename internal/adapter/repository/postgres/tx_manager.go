package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bankapp/bankcore/internal/usecase"
)

type pgxPool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// UnitOfWorkManager implements usecase.UnitOfWorkManager over a pgx
// connection pool. Every unit of work maps to exactly one database
// transaction.
type UnitOfWorkManager struct {
	pool pgxPool
}

// NewUnitOfWorkManager creates a new UnitOfWorkManager.
func NewUnitOfWorkManager(pool *pgxpool.Pool) *UnitOfWorkManager {
	return newUnitOfWorkManagerWithPool(pool)
}

func newUnitOfWorkManagerWithPool(pool pgxPool) *UnitOfWorkManager {
	return &UnitOfWorkManager{pool: pool}
}

// Begin starts a new unit of work. Row locks taken inside it are held
// until commit or rollback, so Read Committed is enough for the
// engines' lock-then-mutate discipline.
func (m *UnitOfWorkManager) Begin(ctx context.Context) (usecase.UnitOfWork, error) {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}

	return &UnitOfWork{tx: tx}, nil
}

// UnitOfWork wraps a pgx transaction. It settles exactly once: the
// first Commit or Rollback decides the outcome and later Rollback
// calls are no-ops, which makes a deferred Rollback safe on every
// return path.
type UnitOfWork struct {
	tx      pgx.Tx
	settled bool
}

// Commit makes the unit of work's changes durable.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.settled {
		return pgx.ErrTxClosed
	}

	if err := u.tx.Commit(ctx); err != nil {
		return err
	}

	u.settled = true

	return nil
}

// Rollback discards the unit of work's changes. Once the unit has
// settled it returns nil without touching the connection.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.settled {
		return nil
	}

	u.settled = true

	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}

	return nil
}

// PgxTx returns the underlying pgx.Tx.
func (u *UnitOfWork) PgxTx() pgx.Tx {
	return u.tx
}
