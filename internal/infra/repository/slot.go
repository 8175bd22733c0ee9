package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/infra/repository/converter"
	"adslot-ledger/internal/runtime"
)

// SlotRepository keeps three views of every slot: the record itself, a
// window entry under its space for overlap checks, and a booked entry keyed
// by end time that is dropped once the slot settles.
type SlotRepository struct {
	kv kvRepo
}

func NewSlotRepository(store runtime.Store, logger *slog.Logger) *SlotRepository {
	return &SlotRepository{kv: kvRepo{store: store, logger: logger}}
}

func (r *SlotRepository) NextID(ctx context.Context) (slot.ID, error) {
	id, err := r.kv.nextSeq(ctx, slotSeqKey)
	return slot.ID(id), err
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) error {
	key := idKey(slotPrefix, uint64(s.ID()))
	exists, err := r.kv.exists(ctx, key, "slot")
	if err != nil {
		return err
	}
	if exists {
		return infra.WrapRepoErr(r.kv.logger, infra.KindDuplicateKey, "slot already exists", nil)
	}

	if err := r.kv.putJSON(ctx, key, "slot", converter.SlotToRecord(s)); err != nil {
		return err
	}
	windowKey := spaceWindowKey(uint64(s.SpaceID()), uint64(s.ID()))
	if err := r.kv.putJSON(ctx, windowKey, "slot window", converter.SlotToWindowRecord(s)); err != nil {
		return err
	}
	if s.IsBooked() {
		return r.kv.putJSON(ctx, bookedKey(s.Window().End(), uint64(s.ID())), "booked index", converter.SlotToWindowRecord(s))
	}
	return nil
}

// MarkSettled persists a slot that has gone through Settle.
func (r *SlotRepository) MarkSettled(ctx context.Context, s *slot.Slot) error {
	if s.Status() != slot.StatusSettled {
		return infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "slot is not settled", slot.ErrInvalidStatus)
	}
	key := idKey(slotPrefix, uint64(s.ID()))
	exists, err := r.kv.exists(ctx, key, "slot")
	if err != nil {
		return err
	}
	if !exists {
		return infra.WrapRepoErr(r.kv.logger, infra.KindNotFound, "slot not found", nil)
	}

	if err := r.kv.putJSON(ctx, key, "slot", converter.SlotToRecord(s)); err != nil {
		return err
	}
	return r.kv.delete(ctx, bookedKey(s.Window().End(), uint64(s.ID())), "booked index")
}

func (r *SlotRepository) FindByID(ctx context.Context, id slot.ID) (*slot.Slot, error) {
	var rec converter.SlotRecord
	if err := r.kv.getJSON(ctx, idKey(slotPrefix, uint64(id)), "slot", &rec); err != nil {
		return nil, err
	}
	return r.restore(rec)
}

func (r *SlotRepository) List(ctx context.Context) ([]*slot.Slot, error) {
	entries, err := r.kv.scan(ctx, slotPrefix, "slots")
	if err != nil {
		return nil, err
	}
	records, err := decodeAll[converter.SlotRecord](r.kv, entries, "slot")
	if err != nil {
		return nil, err
	}

	slots := make([]*slot.Slot, 0, len(records))
	for _, rec := range records {
		s, err := r.restore(rec)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *SlotRepository) ListBySpace(ctx context.Context, spaceID space.ID) ([]*slot.Slot, error) {
	windows, err := r.windowRecords(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	slots := make([]*slot.Slot, 0, len(windows))
	for _, w := range windows {
		s, err := r.FindByID(ctx, slot.ID(w.SlotID))
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *SlotRepository) WindowsBySpace(ctx context.Context, spaceID space.ID) ([]slot.TimeWindow, error) {
	records, err := r.windowRecords(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	windows := make([]slot.TimeWindow, 0, len(records))
	for _, rec := range records {
		w, err := converter.WindowFromRecord(rec)
		if err != nil {
			return nil, infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "failed to restore slot window", err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (r *SlotRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]slot.ID, error) {
	entries, err := r.kv.scan(ctx, bookedPrefix, "booked slots")
	if err != nil {
		return nil, err
	}

	var due []slot.ID
	for _, e := range entries {
		if limit > 0 && len(due) >= limit {
			break
		}
		end, id, err := parseBookedKey(e.Key)
		if err != nil {
			return nil, infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "malformed booked index "+e.Key, err)
		}
		if end > now.Unix() {
			break
		}
		due = append(due, slot.ID(id))
	}
	return due, nil
}

func (r *SlotRepository) CountBooked(ctx context.Context) (int, error) {
	entries, err := r.kv.scan(ctx, bookedPrefix, "booked slots")
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (r *SlotRepository) windowRecords(ctx context.Context, spaceID space.ID) ([]converter.WindowRecord, error) {
	prefix := strings.TrimSuffix(spaceWindowKey(uint64(spaceID), 0), strings.Repeat("0", 20))
	entries, err := r.kv.scan(ctx, prefix, "slot windows")
	if err != nil {
		return nil, err
	}

	records := make([]converter.WindowRecord, 0, len(entries))
	for _, e := range entries {
		var rec converter.WindowRecord
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			return nil, infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "failed to decode slot window "+e.Key, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *SlotRepository) restore(rec converter.SlotRecord) (*slot.Slot, error) {
	s, err := converter.SlotFromRecord(rec)
	if err != nil {
		return nil, infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "failed to restore slot", err)
	}
	return s, nil
}

func parseBookedKey(key string) (end int64, id uint64, err error) {
	parts := strings.Split(strings.TrimPrefix(key, bookedPrefix), "/")
	if len(parts) != 2 {
		return 0, 0, strconv.ErrSyntax
	}
	end, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	id, err = strconv.ParseUint(parts[1], 10, 64)
	return end, id, err
}
