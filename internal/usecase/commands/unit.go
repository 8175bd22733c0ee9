package commands

import (
	"context"
	"log/slog"

	"adslot-ledger/internal/domain/unit"
	"adslot-ledger/internal/pkg/validate"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/queries"
	"adslot-ledger/internal/usecase/shared"
)

type MakeUnitInput struct {
	Name    string  `validate:"required"`
	Content string  `validate:"required"`
	NFTCID  *string `validate:"omitempty,max=256"`
}

type UnitCommands interface {
	MakeUnit(ctx context.Context, call runtime.Call, in MakeUnitInput) (*queries.UnitView, error)
}

type unitUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewUnitUseCase(uow shared.UnitOfWork, logger *slog.Logger) UnitCommands {
	return &unitUseCaseImpl{uow: uow, logger: logger}
}

func (uc *unitUseCaseImpl) MakeUnit(ctx context.Context, call runtime.Call, in MakeUnitInput) (*queries.UnitView, error) {
	if err := validate.Struct(in); err != nil {
		return nil, invalid(err)
	}

	var view *queries.UnitView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Units().NextID(ctx)
		if err != nil {
			return storageErr(err)
		}

		u, err := unit.NewUnit(id, call.Caller, in.Name, in.Content, in.NFTCID, call.Now)
		if err != nil {
			return invalid(err)
		}
		if err := tx.Units().Create(ctx, u); err != nil {
			return storageErr(err)
		}
		view = queries.NewUnitView(u)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("unit registered",
		slog.Uint64("unit_id", view.ID),
		slog.String("owner", view.Owner),
	)
	return view, nil
}
