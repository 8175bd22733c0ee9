//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/infra/kvstore"
	"adslot-ledger/internal/infra/uow"
	"adslot-ledger/internal/pkg/config"
	"adslot-ledger/internal/runtime"
	"adslot-ledger/internal/usecase/commands"
	"adslot-ledger/internal/usecase/queries"
	"adslot-ledger/tests/common/builder"

	"github.com/stretchr/testify/require"
)

const (
	advertiser = account.ID("advertiser.near")
	publisher  = account.ID("publisher.near")
	keeper     = account.ID("keeper.near")
	platform   = account.ID("adslot.platform")
)

type ledger struct {
	units      commands.UnitCommands
	spaces     commands.SpaceCommands
	slots      commands.SlotCommands
	settlement commands.SettlementCommands

	unitQueries   queries.UnitQueries
	spaceQueries  queries.SpaceQueries
	slotQueries   queries.SlotQueries
	ledgerQueries queries.LedgerQueries

	now time.Time
}

func newLedger(t *testing.T, mutate ...func(*config.LedgerConfig)) *ledger {
	t.Helper()

	cfg := config.NewTestConfig().Ledger
	for _, m := range mutate {
		m(&cfg)
	}
	rules, err := commands.NewRules(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	work := uow.NewMemoryUoW(kvstore.NewMemoryStore(), logger)

	return &ledger{
		units:         commands.NewUnitUseCase(work, logger),
		spaces:        commands.NewSpaceUseCase(work, logger),
		slots:         commands.NewSlotUseCase(work, rules, logger),
		settlement:    commands.NewSettlementUseCase(work, rules, logger),
		unitQueries:   queries.NewUnitQueries(work),
		spaceQueries:  queries.NewSpaceQueries(work),
		slotQueries:   queries.NewSlotQueries(work),
		ledgerQueries: queries.NewLedgerQueries(work),
		now:           builder.BaseTime,
	}
}

// at builds a call offset seconds after the base time.
func (l *ledger) at(offset int64, caller account.ID, attached int64) runtime.Call {
	return runtime.Call{
		Now:      l.now.Add(time.Duration(offset) * time.Second),
		Caller:   caller,
		Attached: money.FromInt(attached),
	}
}

func (l *ledger) mustMakeUnit(t *testing.T, owner account.ID) uint64 {
	t.Helper()
	view, err := l.units.MakeUnit(context.Background(), l.at(0, owner, 0), builder.NewUnitBuilder().BuildInput())
	require.NoError(t, err)
	return view.ID
}

func (l *ledger) book(t *testing.T, b *builder.SlotBuilder) (*commands.TakeSlotResult, error) {
	t.Helper()
	return l.slots.TakeSlot(context.Background(), l.at(0, advertiser, b.Price), b.BuildInput())
}

func (l *ledger) escrow(t *testing.T) *queries.EscrowView {
	t.Helper()
	view, err := l.ledgerQueries.Escrow(context.Background())
	require.NoError(t, err)
	return view
}

func (l *ledger) balance(t *testing.T, acc account.ID) string {
	t.Helper()
	view, err := l.ledgerQueries.BalanceOf(context.Background(), acc)
	require.NoError(t, err)
	return view.Balance.String()
}
