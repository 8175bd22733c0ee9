package repository

import (
	"context"
	"log/slog"

	"adslot-ledger/internal/domain/unit"
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/infra/repository/converter"
	"adslot-ledger/internal/runtime"
)

type UnitRepository struct {
	kv kvRepo
}

func NewUnitRepository(store runtime.Store, logger *slog.Logger) *UnitRepository {
	return &UnitRepository{kv: kvRepo{store: store, logger: logger}}
}

func (r *UnitRepository) NextID(ctx context.Context) (unit.ID, error) {
	id, err := r.kv.nextSeq(ctx, unitSeqKey)
	return unit.ID(id), err
}

func (r *UnitRepository) Create(ctx context.Context, u *unit.Unit) error {
	key := idKey(unitPrefix, uint64(u.ID()))
	exists, err := r.kv.exists(ctx, key, "unit")
	if err != nil {
		return err
	}
	if exists {
		return infra.WrapRepoErr(r.kv.logger, infra.KindDuplicateKey, "unit already exists", nil)
	}
	return r.kv.putJSON(ctx, key, "unit", converter.UnitToRecord(u))
}

func (r *UnitRepository) FindByID(ctx context.Context, id unit.ID) (*unit.Unit, error) {
	var rec converter.UnitRecord
	if err := r.kv.getJSON(ctx, idKey(unitPrefix, uint64(id)), "unit", &rec); err != nil {
		return nil, err
	}
	u, err := converter.UnitFromRecord(rec)
	if err != nil {
		return nil, infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "failed to restore unit", err)
	}
	return u, nil
}

func (r *UnitRepository) List(ctx context.Context) ([]*unit.Unit, error) {
	entries, err := r.kv.scan(ctx, unitPrefix, "units")
	if err != nil {
		return nil, err
	}
	records, err := decodeAll[converter.UnitRecord](r.kv, entries, "unit")
	if err != nil {
		return nil, err
	}

	units := make([]*unit.Unit, 0, len(records))
	for _, rec := range records {
		u, err := converter.UnitFromRecord(rec)
		if err != nil {
			return nil, infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "failed to restore unit", err)
		}
		units = append(units, u)
	}
	return units, nil
}
