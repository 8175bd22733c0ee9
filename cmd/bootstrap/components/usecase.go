package components

import (
	"adslot-ledger/internal/pkg/clock"
	"adslot-ledger/internal/pkg/config"
	"adslot-ledger/internal/usecase/commands"
	"adslot-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (commands.Rules, error) {
		return commands.NewRules(cfg.Ledger)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUnitUseCase,
		commands.NewSpaceUseCase,
		commands.NewSlotUseCase,
		commands.NewSettlementUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUnitQueries,
		queries.NewSpaceQueries,
		queries.NewSlotQueries,
		queries.NewLedgerQueries,
	),
)
