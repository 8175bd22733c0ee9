package queries

import (
	"context"

	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/usecase/shared"
)

type SlotQueries interface {
	GetByID(ctx context.Context, id slot.ID) (*SlotView, error)
	List(ctx context.Context) (map[uint64]*SlotView, error)
}

type slotQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSlotQueries(uow shared.UnitOfWork) SlotQueries {
	return &slotQueriesImpl{uow: uow}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id slot.ID) (*SlotView, error) {
	var view *SlotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err, slot.ErrNotFound)
		}
		view = NewSlotView(s)
		return nil
	})
	return view, err
}

func (q *slotQueriesImpl) List(ctx context.Context) (map[uint64]*SlotView, error) {
	views := make(map[uint64]*SlotView)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		slots, err := tx.Slots().List(ctx)
		if err != nil {
			return notFoundOr(err, slot.ErrNotFound)
		}
		for _, s := range slots {
			views[uint64(s.ID())] = NewSlotView(s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
