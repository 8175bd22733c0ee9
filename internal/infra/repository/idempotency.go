package repository

import (
	"context"
	"log/slog"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type idempotencyRecord struct {
	Key         uuid.UUID `json:"key"`
	Caller      string    `json:"caller"`
	Endpoint    string    `json:"endpoint"`
	RequestHash string    `json:"request_hash"`
	SlotID      uint64    `json:"slot_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// IdempotencyRepository remembers which slot a client request key produced.
// Keys are scoped per caller.
type IdempotencyRepository struct {
	kv kvRepo
}

func NewIdempotencyRepository(store runtime.Store, logger *slog.Logger) *IdempotencyRepository {
	return &IdempotencyRepository{kv: kvRepo{store: store, logger: logger}}
}

func idempotencyKey(caller account.ID, key uuid.UUID) string {
	return idempotencyPrefix + caller.String() + "/" + key.String()
}

func (r *IdempotencyRepository) Get(ctx context.Context, caller account.ID, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	var rec idempotencyRecord
	if err := r.kv.getJSON(ctx, idempotencyKey(caller, key), "idempotency key", &rec); err != nil {
		return nil, err
	}
	return &shared.IdempotencyRecord{
		Key:         rec.Key,
		Caller:      account.ID(rec.Caller),
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		SlotID:      slot.ID(rec.SlotID),
		CreatedAt:   rec.CreatedAt,
	}, nil
}

func (r *IdempotencyRepository) Create(ctx context.Context, rec shared.IdempotencyRecord) error {
	key := idempotencyKey(rec.Caller, rec.Key)
	exists, err := r.kv.exists(ctx, key, "idempotency key")
	if err != nil {
		return err
	}
	if exists {
		return infra.WrapRepoErr(r.kv.logger, infra.KindDuplicateKey, "idempotency key already used", nil)
	}
	return r.kv.putJSON(ctx, key, "idempotency key", idempotencyRecord{
		Key:         rec.Key,
		Caller:      rec.Caller.String(),
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		SlotID:      uint64(rec.SlotID),
		CreatedAt:   rec.CreatedAt,
	})
}
