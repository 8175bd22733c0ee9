// Package runtime is the boundary between the ledger core and the host it
// runs on: logical time, caller identity, attached funds, persistent
// key-value storage and value transfer. Nothing in here is global; every
// ledger call receives its Call and Store explicitly.
package runtime

import (
	"context"
	"errors"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/pkg/clock"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrReadOnly    = errors.New("store is read-only")
)

// Call is the execution context of a single ledger call. Now is fixed for
// the whole call so every check inside it observes the same instant.
type Call struct {
	Now      time.Time
	Caller   account.ID
	Attached money.Amount
}

func NewCall(clk clock.Clock, caller account.ID, attached money.Amount) Call {
	return Call{
		Now:      clk.Now(),
		Caller:   caller,
		Attached: attached,
	}
}

// View is a Call without caller or funds, for read-only projections.
func View(clk clock.Clock) Call {
	return Call{Now: clk.Now(), Attached: money.Zero}
}

type Entry struct {
	Key   string
	Value []byte
}

// Store is the ledger's persistent key-value storage as seen from inside one
// unit of work. Writes become visible to other calls only when the unit of
// work commits.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Scan returns every entry whose key starts with prefix, ordered by key.
	Scan(ctx context.Context, prefix string) ([]Entry, error)
}
