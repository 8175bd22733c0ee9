package queries

import (
	"context"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/settlement"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/pkg/errs"
	"adslot-ledger/internal/usecase/shared"
)

// LedgerQueries exposes the money side of the ledger.
type LedgerQueries interface {
	Escrow(ctx context.Context) (*EscrowView, error)
	BalanceOf(ctx context.Context, acc account.ID) (*BalanceView, error)
	PayoutBySlot(ctx context.Context, id slot.ID) (*PayoutView, error)
}

type ledgerQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewLedgerQueries(uow shared.UnitOfWork) LedgerQueries {
	return &ledgerQueriesImpl{uow: uow}
}

func (q *ledgerQueriesImpl) Escrow(ctx context.Context) (*EscrowView, error) {
	var view EscrowView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		held, err := tx.Bank().Held(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		booked, err := tx.Slots().CountBooked(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view = EscrowView{Held: held, BookedSlots: booked}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (q *ledgerQueriesImpl) BalanceOf(ctx context.Context, acc account.ID) (*BalanceView, error) {
	var view BalanceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		balance, err := tx.Bank().BalanceOf(ctx, acc)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view = BalanceView{Account: acc.String(), Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (q *ledgerQueriesImpl) PayoutBySlot(ctx context.Context, id slot.ID) (*PayoutView, error) {
	var view *PayoutView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payouts().FindBySlotID(ctx, id)
		if err != nil {
			return notFoundOr(err, settlement.ErrPayoutNotFound)
		}
		view = NewPayoutView(p)
		return nil
	})
	return view, err
}
