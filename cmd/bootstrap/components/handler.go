package components

import (
	"adslot-ledger/internal/handler"
	"adslot-ledger/internal/handler/api"
	"adslot-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUnitHandler,
		api.NewSpaceHandler,
		api.NewSlotHandler,
		api.NewLedgerHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(units *api.UnitHandler, spaces *api.SpaceHandler, slots *api.SlotHandler, ledger *api.LedgerHandler) handler.Handlers {
	return handler.Handlers{
		Units:  units,
		Spaces: spaces,
		Slots:  slots,
		Ledger: ledger,
	}
}
