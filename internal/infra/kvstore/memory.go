package kvstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"adslot-ledger/internal/runtime"

	"golang.org/x/sync/semaphore"
)

// MemoryStore keeps ledger state in process memory. It admits one writing
// transaction at a time; read-only transactions run concurrently with each
// other and observe only committed state.
type MemoryStore struct {
	writer *semaphore.Weighted
	dataMu sync.RWMutex
	data   map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{writer: semaphore.NewWeighted(1), data: make(map[string][]byte)}
}

// Begin opens a transaction without a deadline. See BeginContext.
func (m *MemoryStore) Begin(readOnly bool) *MemoryTx {
	tx, _ := m.BeginContext(context.Background(), readOnly)
	return tx
}

// BeginContext opens a transaction. A writing transaction waits until the
// previous writer has committed or rolled back, or until ctx is done.
// Exactly one of Commit or Rollback must be called on the returned
// transaction.
func (m *MemoryStore) BeginContext(ctx context.Context, readOnly bool) (*MemoryTx, error) {
	if readOnly {
		m.dataMu.RLock()
	} else if err := m.writer.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return &MemoryTx{
		store:    m,
		readOnly: readOnly,
		staged:   make(map[string]*[]byte),
	}, nil
}

// Len reports the number of committed keys.
func (m *MemoryStore) Len() int {
	m.dataMu.RLock()
	defer m.dataMu.RUnlock()
	return len(m.data)
}

// MemoryTx stages writes until Commit. A nil staged value marks a deletion.
type MemoryTx struct {
	store    *MemoryStore
	readOnly bool
	staged   map[string]*[]byte
	done     bool
}

var _ runtime.Store = (*MemoryTx)(nil)

func (t *MemoryTx) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := t.staged[key]; ok {
		if v == nil {
			return nil, runtime.ErrKeyNotFound
		}
		return clone(*v), nil
	}
	v, ok := t.store.data[key]
	if !ok {
		return nil, runtime.ErrKeyNotFound
	}
	return clone(v), nil
}

func (t *MemoryTx) Put(_ context.Context, key string, value []byte) error {
	if t.readOnly {
		return runtime.ErrReadOnly
	}
	v := clone(value)
	t.staged[key] = &v
	return nil
}

func (t *MemoryTx) Delete(_ context.Context, key string) error {
	if t.readOnly {
		return runtime.ErrReadOnly
	}
	t.staged[key] = nil
	return nil
}

func (t *MemoryTx) Scan(_ context.Context, prefix string) ([]runtime.Entry, error) {
	merged := make(map[string][]byte)
	for k, v := range t.store.data {
		if strings.HasPrefix(k, prefix) {
			merged[k] = v
		}
	}
	for k, v := range t.staged {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = *v
	}

	entries := make([]runtime.Entry, 0, len(merged))
	for k, v := range merged {
		entries = append(entries, runtime.Entry{Key: k, Value: clone(v)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Commit publishes every staged write at once.
func (t *MemoryTx) Commit() {
	if t.done {
		return
	}
	t.done = true
	if t.readOnly {
		t.store.dataMu.RUnlock()
		return
	}

	t.store.dataMu.Lock()
	for k, v := range t.staged {
		if v == nil {
			delete(t.store.data, k)
		} else {
			t.store.data[k] = *v
		}
	}
	t.store.dataMu.Unlock()
	t.store.writer.Release(1)
}

// Rollback discards staged writes.
func (t *MemoryTx) Rollback() {
	if t.done {
		return
	}
	t.done = true
	t.staged = nil
	if t.readOnly {
		t.store.dataMu.RUnlock()
		return
	}
	t.store.writer.Release(1)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
