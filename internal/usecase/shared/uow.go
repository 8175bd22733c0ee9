package shared

import (
	"context"

	"adslot-ledger/internal/runtime"
)

type UnitOfWork interface {
	// Within: serialized read-write transaction. Writes made by fn commit
	// together when it returns nil and are discarded otherwise.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent read of the last committed state
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Units() UnitRepository
	Spaces() SpaceRepository
	Slots() SlotRepository
	Payouts() PayoutRepository
	Idempotency() IdempotencyRepository
	Bank() runtime.Bank
}
