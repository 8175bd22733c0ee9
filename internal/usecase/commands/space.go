package commands

import (
	"context"
	"log/slog"

	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/pkg/errs"
	"adslot-ledger/internal/pkg/validate"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/queries"
	"adslot-ledger/internal/usecase/shared"
)

type MakeSpaceInput struct {
	ID            uint64 `validate:"required"`
	Name          string `validate:"required"`
	Price         money.Amount
	ShowKind      *string `validate:"omitempty,max=64"`
	PublisherEarn *money.Amount
}

type SpaceCommands interface {
	MakeSpace(ctx context.Context, call runtime.Call, in MakeSpaceInput) (*queries.SpaceView, error)
}

type spaceUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewSpaceUseCase(uow shared.UnitOfWork, logger *slog.Logger) SpaceCommands {
	return &spaceUseCaseImpl{uow: uow, logger: logger}
}

func (uc *spaceUseCaseImpl) MakeSpace(ctx context.Context, call runtime.Call, in MakeSpaceInput) (*queries.SpaceView, error) {
	if in.ID == 0 {
		return nil, invalid(space.ErrInvalidID)
	}
	if err := validate.Struct(in); err != nil {
		return nil, invalid(err)
	}

	sp, err := space.NewSpace(space.ID(in.ID), call.Caller, in.Name, in.Price, in.ShowKind, in.PublisherEarn, call.Now)
	if err != nil {
		return nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Spaces().Create(ctx, sp); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(space.ErrAlreadyExists, errs.ErrConflict)
			}
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("space registered",
		slog.Uint64("space_id", in.ID),
		slog.String("owner", sp.Owner().String()),
		slog.String("price", sp.Price().String()),
	)
	return queries.NewSpaceView(sp), nil
}
