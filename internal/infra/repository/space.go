package repository

import (
	"context"
	"log/slog"

	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/infra/repository/converter"
	"adslot-ledger/internal/runtime"
)

type SpaceRepository struct {
	kv kvRepo
}

func NewSpaceRepository(store runtime.Store, logger *slog.Logger) *SpaceRepository {
	return &SpaceRepository{kv: kvRepo{store: store, logger: logger}}
}

func (r *SpaceRepository) Create(ctx context.Context, sp *space.Space) error {
	key := idKey(spacePrefix, uint64(sp.ID()))
	exists, err := r.kv.exists(ctx, key, "space")
	if err != nil {
		return err
	}
	if exists {
		return infra.WrapRepoErr(r.kv.logger, infra.KindDuplicateKey, "space already exists", nil)
	}
	return r.kv.putJSON(ctx, key, "space", converter.SpaceToRecord(sp))
}

func (r *SpaceRepository) FindByID(ctx context.Context, id space.ID) (*space.Space, error) {
	var rec converter.SpaceRecord
	if err := r.kv.getJSON(ctx, idKey(spacePrefix, uint64(id)), "space", &rec); err != nil {
		return nil, err
	}
	sp, err := converter.SpaceFromRecord(rec)
	if err != nil {
		return nil, infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "failed to restore space", err)
	}
	return sp, nil
}

func (r *SpaceRepository) List(ctx context.Context) ([]*space.Space, error) {
	entries, err := r.kv.scan(ctx, spacePrefix, "spaces")
	if err != nil {
		return nil, err
	}
	records, err := decodeAll[converter.SpaceRecord](r.kv, entries, "space")
	if err != nil {
		return nil, err
	}

	spaces := make([]*space.Space, 0, len(records))
	for _, rec := range records {
		sp, err := converter.SpaceFromRecord(rec)
		if err != nil {
			return nil, infra.WrapRepoErr(r.kv.logger, infra.KindCorruptRecord, "failed to restore space", err)
		}
		spaces = append(spaces, sp)
	}
	return spaces, nil
}
