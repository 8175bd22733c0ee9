//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/pkg/clock"
	"adslot-ledger/internal/pkg/config"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/commands"
	"adslot-ledger/internal/worker"
	"adslot-ledger/tests/common/builder"
	commandsmock "adslot-ledger/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSweeper(t *testing.T, mutate ...func(*config.Config)) (*worker.SettlementSweeper, *commandsmock.MockSettlementCommands) {
	t.Helper()

	cfg := config.NewTestConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	ctrl := gomock.NewController(t)
	settlement := commandsmock.NewMockSettlementCommands(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sw, err := worker.NewSettlementSweeper(settlement, clock.NewMockClock(builder.BaseTime), cfg, logger)
	require.NoError(t, err)
	return sw, settlement
}

func TestSettlementSweeper_RunOnce(t *testing.T) {
	t.Run("settles as the platform account with the configured batch", func(t *testing.T) {
		sw, settlement := newSweeper(t, func(c *config.Config) { c.Sweeper.BatchSize = 25 })

		settlement.EXPECT().SettleDue(gomock.Any(), gomock.Any(), 25).
			DoAndReturn(func(_ context.Context, call runtime.Call, _ int) (*commands.SettleDueResult, error) {
				assert.Equal(t, account.ID("adslot.platform"), call.Caller)
				assert.True(t, call.Now.Equal(builder.BaseTime))
				assert.True(t, call.Attached.IsZero())
				return &commands.SettleDueResult{Settled: []*commands.SettlementResult{{}}, Failed: 1}, nil
			})

		res, err := sw.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Len(t, res.Settled, 1)
		assert.Equal(t, 1, res.Failed)
	})

	t.Run("propagates errors", func(t *testing.T) {
		sw, settlement := newSweeper(t)
		settlement.EXPECT().SettleDue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("store down"))

		_, err := sw.RunOnce(context.Background())
		assert.Error(t, err)
	})
}

func TestSettlementSweeper_Start(t *testing.T) {
	t.Run("disabled sweeper does nothing", func(t *testing.T) {
		sw, _ := newSweeper(t)
		require.NoError(t, sw.Start())
		require.NoError(t, sw.Stop(context.Background()))
	})

	t.Run("invalid schedule", func(t *testing.T) {
		sw, _ := newSweeper(t, func(c *config.Config) {
			c.Sweeper.Enabled = true
			c.Sweeper.Schedule = "every so often"
		})
		assert.Error(t, sw.Start())
	})

	t.Run("invalid platform account", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Ledger.PlatformAccount = "Not An Account"
		_, err := worker.NewSettlementSweeper(nil, clock.NewMockClock(builder.BaseTime), cfg, slog.Default())
		assert.Error(t, err)
	})
}
