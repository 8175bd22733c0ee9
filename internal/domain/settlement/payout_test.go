//go:build unit

package settlement_test

import (
	"strings"
	"testing"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/settlement"
	"adslot-ledger/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeePolicy(t *testing.T) {
	t.Run("rejects out of range", func(t *testing.T) {
		_, err := settlement.NewFeePolicy(-1, "platform.near")
		assert.ErrorIs(t, err, settlement.ErrInvalidFee)
		_, err = settlement.NewFeePolicy(settlement.MaxBasisPoints+1, "platform.near")
		assert.ErrorIs(t, err, settlement.ErrInvalidFee)
	})

	t.Run("fee needs an account", func(t *testing.T) {
		_, err := settlement.NewFeePolicy(1000, "")
		assert.ErrorIs(t, err, account.ErrInvalidID)
	})

	t.Run("net plus fee equals gross", func(t *testing.T) {
		fees, err := settlement.NewFeePolicy(1000, "platform.near")
		require.NoError(t, err)

		s, err := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.Price = 99 }).BuildDomain()
		require.NoError(t, err)

		net, fee := fees.Split(s.Price())
		assert.Equal(t, "9", fee.String())
		assert.Equal(t, "90", net.String())
		assert.True(t, net.Add(fee).Equal(s.Price()))
	})
}

func TestNewPayout(t *testing.T) {
	fees, err := settlement.NewFeePolicy(0, "")
	require.NoError(t, err)

	s, err := builder.NewSlotBuilder().BuildDomain()
	require.NoError(t, err)

	_, err = settlement.NewPayout(s, fees, "keeper.near")
	assert.ErrorIs(t, err, settlement.ErrSlotNotSettled)

	require.NoError(t, s.Settle(builder.BaseTime.Add(time.Minute)))
	p, err := settlement.NewPayout(s, fees, "keeper.near")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(p.ID()), "payout_"))
	assert.Equal(t, s.ID(), p.SlotID())
	assert.Equal(t, account.ID("publisher.near"), p.Publisher())
	assert.Equal(t, "100", p.Gross().String())
	assert.Equal(t, "100", p.Net().String())
	assert.True(t, p.Fee().IsZero())
	assert.True(t, p.FeeAccount().IsZero())
	assert.Equal(t, account.ID("keeper.near"), p.TriggeredBy())

	parsed, err := settlement.ParsePayoutID(string(p.ID()))
	require.NoError(t, err)
	assert.Equal(t, p.ID(), parsed)
}

func TestParsePayoutID_WrongPrefix(t *testing.T) {
	_, err := settlement.ParsePayoutID("slot_01h455vb4pex5vsknk084sn02q")
	assert.Error(t, err)
}
