//go:build unit

package uow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"adslot-ledger/internal/infra/kvstore"
	"adslot-ledger/internal/infra/uow"
	"adslot-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMemoryUoW_Within(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		work := uow.NewMemoryUoW(store, discard)

		err := work.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Units().NextID(ctx)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("discards writes on error", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		work := uow.NewMemoryUoW(store, discard)
		boom := errors.New("boom")

		err := work.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Units().NextID(ctx); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("stops waiting for a busy writer when the context ends", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		work := uow.NewMemoryUoW(store, discard)
		busy := store.Begin(false)
		defer busy.Rollback()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		called := false
		err := work.Within(ctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, called)
	})
}
