package components

import (
	"context"
	"fmt"
	"log/slog"

	"adslot-ledger/internal/infra/db"
	"adslot-ledger/internal/infra/kvstore"
	"adslot-ledger/internal/infra/uow"
	"adslot-ledger/internal/pkg/config"
	"adslot-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork picks the ledger state backend. Repositories are bound per
// transaction inside the unit of work, so nothing else is provided here.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Ledger.Storage {
	case "memory":
		logger.Warn("ledger state is kept in memory and lost on restart")
		return uow.NewMemoryUoW(kvstore.NewMemoryStore(), logger), nil
	case "postgres":
		if pool == nil {
			return nil, fmt.Errorf("postgres storage selected but no database pool is available")
		}
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return db.Migrate(ctx, pool, cfg, logger)
			},
		})
		return uow.NewPostgresUoW(pool, logger), nil
	default:
		return nil, fmt.Errorf("unknown LEDGER_STORAGE %q", cfg.Ledger.Storage)
	}
}
