package commands

import (
	"context"
	"log/slog"

	"adslot-ledger/internal/domain/settlement"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/pkg/errs"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/queries"
	"adslot-ledger/internal/usecase/shared"
)

type SettlementResult struct {
	Slot   *queries.SlotView
	Payout *queries.PayoutView
}

type SettleDueResult struct {
	Settled []*SettlementResult
	// Failed counts due slots that could not be settled in this run. They
	// stay Booked and are picked up again next time.
	Failed int
}

type SettlementCommands interface {
	TransferFunds(ctx context.Context, call runtime.Call, id slot.ID) (*SettlementResult, error)
	SettleDue(ctx context.Context, call runtime.Call, limit int) (*SettleDueResult, error)
}

type settlementUseCaseImpl struct {
	uow    shared.UnitOfWork
	rules  Rules
	logger *slog.Logger
}

func NewSettlementUseCase(uow shared.UnitOfWork, rules Rules, logger *slog.Logger) SettlementCommands {
	return &settlementUseCaseImpl{uow: uow, rules: rules, logger: logger}
}

// TransferFunds pays a slot's escrowed price out to its publisher once the
// booked window is over. Anyone may trigger it; a slot pays out at most once.
func (uc *settlementUseCaseImpl) TransferFunds(ctx context.Context, call runtime.Call, id slot.ID) (*SettlementResult, error) {
	var (
		settled *slot.Slot
		payout  *settlement.Payout
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, slot.ErrNotFound)
		}

		if err := s.Settle(call.Now); err != nil {
			switch {
			case errs.Is(err, slot.ErrAlreadySettled):
				return errs.Mark(err, errs.ErrAlreadySettled)
			case errs.Is(err, slot.ErrWindowNotElapsed):
				return errs.Mark(err, errs.ErrTooEarly)
			default:
				return err
			}
		}

		p, err := settlement.NewPayout(s, uc.rules.Fees, call.Caller)
		if err != nil {
			return err
		}

		if err := tx.Slots().MarkSettled(ctx, s); err != nil {
			return storageErr(err)
		}
		if err := tx.Bank().Release(ctx, p.Publisher(), p.Net()); err != nil {
			return storageErr(err)
		}
		if p.Fee().IsPositive() {
			if err := tx.Bank().Release(ctx, p.FeeAccount(), p.Fee()); err != nil {
				return storageErr(err)
			}
		}
		if err := tx.Payouts().Create(ctx, p); err != nil {
			return storageErr(err)
		}

		settled, payout = s, p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("slot funds transferred",
		slog.Uint64("slot_id", uint64(settled.ID())),
		slog.String("publisher", payout.Publisher().String()),
		slog.String("amount", payout.Net().String()),
		slog.String("fee", payout.Fee().String()),
		slog.String("triggered_by", payout.TriggeredBy().String()),
	)
	return &SettlementResult{
		Slot:   queries.NewSlotView(settled),
		Payout: queries.NewPayoutView(payout),
	}, nil
}

// SettleDue settles up to limit Booked slots whose window has elapsed, each
// in its own commit. limit <= 0 means no limit.
func (uc *settlementUseCaseImpl) SettleDue(ctx context.Context, call runtime.Call, limit int) (*SettleDueResult, error) {
	var due []slot.ID
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Slots().ListDue(ctx, call.Now, limit)
		if err != nil {
			return storageErr(err)
		}
		due = ids
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &SettleDueResult{Settled: make([]*SettlementResult, 0, len(due))}
	for _, id := range due {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		res, err := uc.TransferFunds(ctx, call, id)
		switch {
		case err == nil:
			result.Settled = append(result.Settled, res)
		case errs.Is(err, errs.ErrAlreadySettled):
			// settled by someone else since the scan
		default:
			result.Failed++
			uc.logger.Warn("settlement of due slot failed",
				slog.Uint64("slot_id", uint64(id)),
				slog.String("error", err.Error()),
			)
		}
	}
	return result, nil
}
