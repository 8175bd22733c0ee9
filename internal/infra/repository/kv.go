package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/runtime"
)

// Key layout of the ledger state. Numeric ids are zero padded so that a
// prefix scan returns records in id order.
const (
	unitSeqKey = "seq/unit"
	slotSeqKey = "seq/slot"

	unitPrefix        = "unit/"
	spacePrefix       = "space/"
	slotPrefix        = "slot/"
	spaceWindowPrefix = "space-window/"
	bookedPrefix      = "booked/"
	payoutPrefix      = "payout/"
	idempotencyPrefix = "idem/"
)

func idKey(prefix string, id uint64) string {
	return fmt.Sprintf("%s%020d", prefix, id)
}

func spaceWindowKey(spaceID, slotID uint64) string {
	return fmt.Sprintf("%s%020d/%020d", spaceWindowPrefix, spaceID, slotID)
}

// booked/<end unix>/<slot id>, so due slots come first in a scan. End times
// before the epoch are not bookable, the start must lie in the future.
func bookedKey(end time.Time, slotID uint64) string {
	return fmt.Sprintf("%s%020d/%020d", bookedPrefix, end.Unix(), slotID)
}

type kvRepo struct {
	store  runtime.Store
	logger *slog.Logger
}

func (r kvRepo) getJSON(ctx context.Context, key, what string, dst any) error {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, runtime.ErrKeyNotFound) {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, what+" not found", nil)
	}
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read "+what, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to decode "+what, err)
	}
	return nil
}

func (r kvRepo) putJSON(ctx context.Context, key, what string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to encode "+what, err)
	}
	if err := r.store.Put(ctx, key, raw); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to write "+what, err)
	}
	return nil
}

func (r kvRepo) delete(ctx context.Context, key, what string) error {
	if err := r.store.Delete(ctx, key); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete "+what, err)
	}
	return nil
}

func (r kvRepo) exists(ctx context.Context, key, what string) (bool, error) {
	_, err := r.store.Get(ctx, key)
	if errors.Is(err, runtime.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read "+what, err)
	}
	return true, nil
}

func (r kvRepo) scan(ctx context.Context, prefix, what string) ([]runtime.Entry, error) {
	entries, err := r.store.Scan(ctx, prefix)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan "+what, err)
	}
	return entries, nil
}

// nextSeq advances and returns the sequence stored under key. The first value
// handed out is 1.
func (r kvRepo) nextSeq(ctx context.Context, key string) (uint64, error) {
	var current uint64
	raw, err := r.store.Get(ctx, key)
	switch {
	case errors.Is(err, runtime.ErrKeyNotFound):
	case err != nil:
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read sequence "+key, err)
	default:
		current, err = strconv.ParseUint(string(raw), 10, 64)
		if err != nil {
			return 0, infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to decode sequence "+key, err)
		}
	}

	next := current + 1
	if err := r.store.Put(ctx, key, []byte(strconv.FormatUint(next, 10))); err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to write sequence "+key, err)
	}
	return next, nil
}

func decodeAll[T any](r kvRepo, entries []runtime.Entry, what string) ([]T, error) {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var rec T
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to decode "+what+" "+e.Key, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
