package db

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"adslot-ledger/internal/pkg/config"
	"adslot-ledger/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate brings the schema up to date. With UseAtlas the versioned
// directory is applied through the atlas CLI, which also records revisions;
// otherwise the embedded files are executed in name order. Every embedded
// statement is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) error {
	if !cfg.Migration.Enabled {
		return nil
	}
	if cfg.Migration.UseAtlas {
		return migrateWithAtlas(ctx, cfg, logger)
	}
	return ApplyEmbedded(ctx, pool, logger)
}

func migrateWithAtlas(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.Migration.AtlasBin)
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + cfg.Migration.Dir,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied",
		slog.String("tool", "atlas"),
		slog.Int("applied", len(res.Applied)),
		slog.String("target", res.Target),
	)
	return nil
}

func ApplyEmbedded(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		sqlContent, err := migrations.FS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
		logger.Info("migration executed", slog.String("file", file))
	}
	return nil
}
