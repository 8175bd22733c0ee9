package uow

import (
	"context"
	"log/slog"

	"adslot-ledger/internal/infra/kvstore"
	"adslot-ledger/internal/usecase/shared"
)

type MemoryUoW struct {
	store  *kvstore.MemoryStore
	logger *slog.Logger
}

func NewMemoryUoW(store *kvstore.MemoryStore, logger *slog.Logger) shared.UnitOfWork {
	return &MemoryUoW{store: store, logger: logger}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, false, fn)
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, true, fn)
}

func (u *MemoryUoW) run(ctx context.Context, readOnly bool, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mtx, err := u.store.BeginContext(ctx, readOnly)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			mtx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, newStoreTx(mtx, u.logger)); err != nil {
		mtx.Rollback()
		return err
	}
	if readOnly {
		mtx.Rollback()
		return nil
	}
	mtx.Commit()
	return nil
}
