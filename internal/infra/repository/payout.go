package repository

import (
	"context"
	"log/slog"

	"adslot-ledger/internal/domain/settlement"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/infra/repository/converter"
	"adslot-ledger/internal/runtime"
)

// PayoutRepository stores payouts keyed by the slot they settle, so a second
// payout for the same slot is rejected as a duplicate.
type PayoutRepository struct {
	kv kvRepo
}

func NewPayoutRepository(store runtime.Store, logger *slog.Logger) *PayoutRepository {
	return &PayoutRepository{kv: kvRepo{store: store, logger: logger}}
}

func (r *PayoutRepository) Create(ctx context.Context, p *settlement.Payout) error {
	key := idKey(payoutPrefix, uint64(p.SlotID()))
	exists, err := r.kv.exists(ctx, key, "payout")
	if err != nil {
		return err
	}
	if exists {
		return infra.WrapRepoErr(r.kv.logger, infra.KindDuplicateKey, "payout already recorded for slot", nil)
	}
	return r.kv.putJSON(ctx, key, "payout", converter.PayoutToRecord(p))
}

func (r *PayoutRepository) FindBySlotID(ctx context.Context, id slot.ID) (*settlement.Payout, error) {
	var rec converter.PayoutRecord
	if err := r.kv.getJSON(ctx, idKey(payoutPrefix, uint64(id)), "payout", &rec); err != nil {
		return nil, err
	}
	p, err := converter.PayoutFromRecord(rec)
	if err != nil {
		return nil, infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "failed to restore payout", err)
	}
	return p, nil
}
