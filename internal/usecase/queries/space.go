package queries

import (
	"context"
	"sort"

	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/usecase/shared"
)

type SpaceQueries interface {
	GetByID(ctx context.Context, id space.ID) (*SpaceView, error)
	List(ctx context.Context) (map[uint64]*SpaceView, error)
	// ListSlots returns every slot ever booked on the space, ordered by start
	// time. The space does not have to be registered.
	ListSlots(ctx context.Context, id space.ID) ([]*SlotView, error)
}

type spaceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSpaceQueries(uow shared.UnitOfWork) SpaceQueries {
	return &spaceQueriesImpl{uow: uow}
}

func (q *spaceQueriesImpl) GetByID(ctx context.Context, id space.ID) (*SpaceView, error) {
	var view *SpaceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		sp, err := tx.Spaces().FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err, space.ErrNotFound)
		}
		view = NewSpaceView(sp)
		return nil
	})
	return view, err
}

func (q *spaceQueriesImpl) List(ctx context.Context) (map[uint64]*SpaceView, error) {
	views := make(map[uint64]*SpaceView)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		spaces, err := tx.Spaces().List(ctx)
		if err != nil {
			return notFoundOr(err, space.ErrNotFound)
		}
		for _, sp := range spaces {
			views[uint64(sp.ID())] = NewSpaceView(sp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *spaceQueriesImpl) ListSlots(ctx context.Context, id space.ID) ([]*SlotView, error) {
	var views []*SlotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		slots, err := tx.Slots().ListBySpace(ctx, id)
		if err != nil {
			return notFoundOr(err, slot.ErrNotFound)
		}
		views = make([]*SlotView, 0, len(slots))
		for _, s := range slots {
			views = append(views, NewSlotView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(views, func(i, j int) bool { return views[i].StartTime < views[j].StartTime })
	return views, nil
}
