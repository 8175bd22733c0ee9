package worker

import (
	"context"
	"log/slog"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/pkg/clock"
	"adslot-ledger/internal/pkg/config"
	"adslot-ledger/internal/pkg/errs"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// SettlementSweeper settles elapsed slots on a schedule, acting as the
// platform account. It is just another caller of SettleDue; a slot it misses
// can still be settled by anyone through the API.
type SettlementSweeper struct {
	settlement commands.SettlementCommands
	clock      clock.Clock
	platform   account.ID
	cfg        config.SweeperConfig
	logger     *slog.Logger
	cron       *cron.Cron
}

func NewSettlementSweeper(settlement commands.SettlementCommands, clk clock.Clock, cfg config.Config, logger *slog.Logger) (*SettlementSweeper, error) {
	platform, err := account.NewID(cfg.Ledger.PlatformAccount)
	if err != nil {
		return nil, errs.Wrap(err, "invalid LEDGER_PLATFORM_ACCOUNT")
	}

	return &SettlementSweeper{
		settlement: settlement,
		clock:      clk,
		platform:   platform,
		cfg:        cfg.Sweeper,
		logger:     logger,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}, nil
}

// RunOnce settles up to one batch of due slots.
func (s *SettlementSweeper) RunOnce(ctx context.Context) (*commands.SettleDueResult, error) {
	call := runtime.NewCall(s.clock, s.platform, money.Zero)
	res, err := s.settlement.SettleDue(ctx, call, s.cfg.BatchSize)
	if err != nil {
		return nil, err
	}
	if len(res.Settled) > 0 || res.Failed > 0 {
		s.logger.Info("settlement sweep finished",
			"settled", len(res.Settled),
			"failed", res.Failed,
		)
	}
	return res, nil
}

func (s *SettlementSweeper) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("settlement sweeper disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if _, err := s.RunOnce(ctx); err != nil {
			s.logger.Error("settlement sweep failed", "error", err)
		}
	})
	if err != nil {
		return errs.Wrapf(err, "invalid SWEEPER_SCHEDULE %q", s.cfg.Schedule)
	}

	s.cron.Start()
	s.logger.Info("settlement sweeper scheduled", "schedule", s.cfg.Schedule, "batch_size", s.cfg.BatchSize)
	return nil
}

// Stop waits for a running sweep to finish or for ctx to expire.
func (s *SettlementSweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
