package uow

import (
	"log/slog"

	"adslot-ledger/internal/infra/repository"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/shared"
)

// storeTx hands out repositories bound to one transactional Store. It is the
// same for every backend; only the Store differs.
type storeTx struct {
	store  runtime.Store
	logger *slog.Logger

	// Lazy-initialized repositories
	unitRepo        shared.UnitRepository
	spaceRepo       shared.SpaceRepository
	slotRepo        shared.SlotRepository
	payoutRepo      shared.PayoutRepository
	idempotencyRepo shared.IdempotencyRepository
	bank            runtime.Bank
}

func newStoreTx(store runtime.Store, logger *slog.Logger) *storeTx {
	return &storeTx{store: store, logger: logger}
}

func (t *storeTx) Units() shared.UnitRepository {
	if t.unitRepo == nil {
		t.unitRepo = repository.NewUnitRepository(t.store, t.logger)
	}
	return t.unitRepo
}

func (t *storeTx) Spaces() shared.SpaceRepository {
	if t.spaceRepo == nil {
		t.spaceRepo = repository.NewSpaceRepository(t.store, t.logger)
	}
	return t.spaceRepo
}

func (t *storeTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.store, t.logger)
	}
	return t.slotRepo
}

func (t *storeTx) Payouts() shared.PayoutRepository {
	if t.payoutRepo == nil {
		t.payoutRepo = repository.NewPayoutRepository(t.store, t.logger)
	}
	return t.payoutRepo
}

func (t *storeTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.store, t.logger)
	}
	return t.idempotencyRepo
}

func (t *storeTx) Bank() runtime.Bank {
	if t.bank == nil {
		t.bank = runtime.NewBank(t.store)
	}
	return t.bank
}
