package queries

import (
	"context"

	"adslot-ledger/internal/domain/unit"
	"adslot-ledger/internal/usecase/shared"
)

type UnitQueries interface {
	GetByID(ctx context.Context, id unit.ID) (*UnitView, error)
	// List returns every unit keyed by id.
	List(ctx context.Context) (map[uint64]*UnitView, error)
}

type unitQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUnitQueries(uow shared.UnitOfWork) UnitQueries {
	return &unitQueriesImpl{uow: uow}
}

func (q *unitQueriesImpl) GetByID(ctx context.Context, id unit.ID) (*UnitView, error) {
	var view *UnitView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Units().FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err, unit.ErrNotFound)
		}
		view = NewUnitView(u)
		return nil
	})
	return view, err
}

func (q *unitQueriesImpl) List(ctx context.Context) (map[uint64]*UnitView, error) {
	views := make(map[uint64]*UnitView)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		units, err := tx.Units().List(ctx)
		if err != nil {
			return notFoundOr(err, unit.ErrNotFound)
		}
		for _, u := range units {
			views[uint64(u.ID())] = NewUnitView(u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
