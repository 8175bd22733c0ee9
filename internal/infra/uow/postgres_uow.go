package uow

import (
	"context"
	"errors"
	"log/slog"

	"adslot-ledger/internal/infra/kvstore"
	"adslot-ledger/internal/pkg/errs"
	"adslot-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerLockID is the advisory lock every writing transaction takes first.
const ledgerLockID int64 = 0x6164736c6f74 // "adslot"

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errLedgerLock        = errs.New("failed to acquire ledger lock")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
	}
}

// Within runs fn under a transaction-scoped advisory lock, so ledger writes
// are applied one at a time in lock order. Failed transactions are not
// retried; the caller sees the error and decides.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer u.rollback(ctx, pgxTx)

	if _, err := pgxTx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", ledgerLockID); err != nil {
		return errs.Mark(err, errLedgerLock)
	}

	if err := fn(ctx, newStoreTx(kvstore.NewPostgresStore(pgxTx, false), u.logger)); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// Read-only transaction for a consistent snapshot across keys
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer u.rollback(ctx, pgxTx)

	if err := fn(ctx, newStoreTx(kvstore.NewPostgresStore(pgxTx, true), u.logger)); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) rollback(ctx context.Context, pgxTx pgx.Tx) {
	if err := pgxTx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", err.Error())
	}
}
