package commands

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/domain/unit"
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/pkg/errs"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/queries"
	"adslot-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const takeSlotEndpoint = "POST /api/slots"

// TakeSlotInput carries a booking request. The attached funds travel on the
// runtime.Call, not here.
type TakeSlotInput struct {
	SpaceID            uint64
	UnitID             uint64
	StartTime          int64
	EndTime            int64
	PublisherAccountID string
	IdempotencyKey     *uuid.UUID
}

type TakeSlotResult struct {
	Slot       *queries.SlotView
	IsReplayed bool
}

type SlotCommands interface {
	TakeSlot(ctx context.Context, call runtime.Call, in TakeSlotInput) (*TakeSlotResult, error)
}

type slotUseCaseImpl struct {
	uow    shared.UnitOfWork
	rules  Rules
	logger *slog.Logger
}

func NewSlotUseCase(uow shared.UnitOfWork, rules Rules, logger *slog.Logger) SlotCommands {
	return &slotUseCaseImpl{uow: uow, rules: rules, logger: logger}
}

// TakeSlot books a window on a space. Checks run in a fixed order and the
// first failing one decides the error: unit, window and parties, payment,
// overlap. Funds move into escrow only when every check passed.
func (uc *slotUseCaseImpl) TakeSlot(ctx context.Context, call runtime.Call, in TakeSlotInput) (*TakeSlotResult, error) {
	requestHash := calculateRequestHash(call, in)

	var result *TakeSlotResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.IdempotencyKey != nil {
			replayed, err := uc.replay(ctx, tx, call.Caller, *in.IdempotencyKey, requestHash)
			if err != nil {
				return err
			}
			if replayed != nil {
				result = &TakeSlotResult{Slot: replayed, IsReplayed: true}
				return nil
			}
		}

		s, err := uc.book(ctx, tx, call, in)
		if err != nil {
			return err
		}

		if in.IdempotencyKey != nil {
			rec := shared.IdempotencyRecord{
				Key:         *in.IdempotencyKey,
				Caller:      call.Caller,
				Endpoint:    takeSlotEndpoint,
				RequestHash: requestHash,
				SlotID:      s.ID(),
				CreatedAt:   call.Now,
			}
			if err := tx.Idempotency().Create(ctx, rec); err != nil {
				return storageErr(err)
			}
		}

		result = &TakeSlotResult{Slot: queries.NewSlotView(s)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.IsReplayed {
		uc.logger.Info("slot booking replayed",
			slog.Uint64("slot_id", result.Slot.ID),
			slog.String("advertiser", call.Caller.String()),
		)
		return result, nil
	}
	uc.logger.Info("slot booked",
		slog.Uint64("slot_id", result.Slot.ID),
		slog.Uint64("space_id", result.Slot.SpaceID),
		slog.Int64("start_time", result.Slot.StartTime),
		slog.Int64("end_time", result.Slot.EndTime),
		slog.String("advertiser", result.Slot.Advertiser),
		slog.String("price", result.Slot.Price.String()),
	)
	return result, nil
}

func (uc *slotUseCaseImpl) book(ctx context.Context, tx shared.Tx, call runtime.Call, in TakeSlotInput) (*slot.Slot, error) {
	u, err := tx.Units().FindByID(ctx, unit.ID(in.UnitID))
	if err != nil {
		return nil, lookupErr(err, unit.ErrNotFound)
	}
	if uc.rules.RequireUnitOwner && !u.IsOwnedBy(call.Caller) {
		return nil, errs.Mark(unit.ErrNotOwner, errs.ErrForbidden)
	}

	params, sp, err := uc.bookingParams(ctx, tx, call, in)
	if err != nil {
		return nil, err
	}

	if err := uc.rules.Pricing.Check(call.Attached, sp); err != nil {
		return nil, errs.Mark(err, errs.ErrPayment)
	}

	windows, err := tx.Slots().WindowsBySpace(ctx, params.SpaceID)
	if err != nil {
		return nil, storageErr(err)
	}
	for _, w := range windows {
		if w.Overlaps(params.Window) {
			return nil, errs.Mark(slot.ErrOverlap, errs.ErrConflict)
		}
	}

	id, err := tx.Slots().NextID(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	s, err := slot.NewSlot(id, params, call.Now)
	if err != nil {
		return nil, invalid(err)
	}
	if err := tx.Slots().Create(ctx, s); err != nil {
		return nil, storageErr(err)
	}
	if err := tx.Bank().Hold(ctx, s.Price()); err != nil {
		return nil, storageErr(err)
	}
	return s, nil
}

// bookingParams validates the window and the parties. sp is nil when the
// space was never registered.
func (uc *slotUseCaseImpl) bookingParams(ctx context.Context, tx shared.Tx, call runtime.Call, in TakeSlotInput) (slot.BookingParams, *space.Space, error) {
	window, err := slot.NewTimeWindowFromUnix(in.StartTime, in.EndTime)
	if err != nil {
		return slot.BookingParams{}, nil, invalid(err)
	}
	if !window.StartsAfter(call.Now) {
		return slot.BookingParams{}, nil, invalid(slot.ErrStartNotInFuture)
	}
	if in.SpaceID == 0 {
		return slot.BookingParams{}, nil, invalid(slot.ErrInvalidSpace)
	}
	publisher, err := account.NewID(in.PublisherAccountID)
	if err != nil {
		return slot.BookingParams{}, nil, invalid(err)
	}

	sp, err := tx.Spaces().FindByID(ctx, space.ID(in.SpaceID))
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		sp = nil
	case err != nil:
		return slot.BookingParams{}, nil, storageErr(err)
	case sp.Owner() != publisher:
		return slot.BookingParams{}, nil, invalid(slot.ErrPublisherMismatch)
	}

	return slot.BookingParams{
		SpaceID:      space.ID(in.SpaceID),
		UnitID:       unit.ID(in.UnitID),
		Window:       window,
		Publisher:    publisher,
		Advertiser:   call.Caller,
		Price:        call.Attached,
		Presentation: slot.PresentationOf(sp),
	}, sp, nil
}

// replay returns the slot an earlier request with the same key produced, or
// nil when the key is new.
func (uc *slotUseCaseImpl) replay(ctx context.Context, tx shared.Tx, caller account.ID, key uuid.UUID, requestHash string) (*queries.SlotView, error) {
	existing, err := tx.Idempotency().Get(ctx, caller, key)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	if existing.RequestHash != requestHash {
		return nil, errs.Mark(errs.Newf("idempotency key %s", key), errs.ErrIdempotencyKeyReused)
	}

	s, err := tx.Slots().FindByID(ctx, existing.SlotID)
	if err != nil {
		return nil, lookupErr(err, slot.ErrNotFound)
	}
	return queries.NewSlotView(s), nil
}

func calculateRequestHash(call runtime.Call, in TakeSlotInput) string {
	data, _ := json.Marshal(struct {
		SpaceID   uint64 `json:"space_id"`
		UnitID    uint64 `json:"unit_id"`
		StartTime int64  `json:"start_time"`
		EndTime   int64  `json:"end_time"`
		Publisher string `json:"publisher"`
		Attached  string `json:"attached"`
	}{in.SpaceID, in.UnitID, in.StartTime, in.EndTime, in.PublisherAccountID, call.Attached.String()})
	hash := blake2b.Sum256(data)
	return hex.EncodeToString(hash[:])
}
