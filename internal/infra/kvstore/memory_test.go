//go:build unit

package kvstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"adslot-ledger/internal/infra/kvstore"
	"adslot-ledger/internal/runtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	tx := store.Begin(false)
	require.NoError(t, tx.Put(ctx, "a", []byte("1")))
	got, err := tx.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
	tx.Rollback()
	assert.Zero(t, store.Len())

	tx = store.Begin(false)
	require.NoError(t, tx.Put(ctx, "a", []byte("1")))
	require.NoError(t, tx.Put(ctx, "b", []byte("2")))
	tx.Commit()
	assert.Equal(t, 2, store.Len())

	tx = store.Begin(false)
	require.NoError(t, tx.Delete(ctx, "a"))
	_, err = tx.Get(ctx, "a")
	assert.ErrorIs(t, err, runtime.ErrKeyNotFound)
	tx.Commit()
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Scan(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	tx := store.Begin(false)
	for _, k := range []string{"slot/3", "slot/1", "space/1", "slot/2"} {
		require.NoError(t, tx.Put(ctx, k, []byte(k)))
	}
	tx.Commit()

	tx = store.Begin(false)
	defer tx.Rollback()
	require.NoError(t, tx.Delete(ctx, "slot/2"))
	require.NoError(t, tx.Put(ctx, "slot/0", []byte("staged")))

	entries, err := tx.Scan(ctx, "slot/")
	require.NoError(t, err)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"slot/0", "slot/1", "slot/3"}, keys)
}

func TestMemoryStore_ReadOnly(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	tx := store.Begin(true)
	defer tx.Rollback()
	assert.ErrorIs(t, tx.Put(ctx, "a", nil), runtime.ErrReadOnly)
	assert.ErrorIs(t, tx.Delete(ctx, "a"), runtime.ErrReadOnly)
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	value := []byte("abc")
	tx := store.Begin(false)
	require.NoError(t, tx.Put(ctx, "k", value))
	tx.Commit()
	value[0] = 'x'

	tx = store.Begin(true)
	defer tx.Rollback()
	got, err := tx.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestMemoryStore_WritersAreSerialized(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	const writers = 50
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx := store.Begin(false)
			n := 0
			if raw, err := tx.Get(ctx, "counter"); err == nil {
				n = int(raw[0])
			}
			_ = tx.Put(ctx, "counter", []byte{byte(n + 1)})
			tx.Commit()
		}()
	}
	wg.Wait()

	tx := store.Begin(true)
	defer tx.Rollback()
	raw, err := tx.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, byte(writers), raw[0])
}

func TestMemoryStore_BeginContextGivesUpWaiting(t *testing.T) {
	store := kvstore.NewMemoryStore()
	holder := store.Begin(false)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	tx, err := store.BeginContext(ctx, false)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, tx)

	// readers are not held up by a waiting or active writer
	reader, err := store.BeginContext(ctx, true)
	require.NoError(t, err)
	reader.Rollback()

	holder.Rollback()
	tx, err = store.BeginContext(context.Background(), false)
	require.NoError(t, err)
	tx.Rollback()
}
