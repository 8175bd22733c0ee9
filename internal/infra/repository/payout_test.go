//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"adslot-ledger/internal/domain/settlement"
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/infra/repository"
	"adslot-ledger/internal/usecase/shared"
	"adslot-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPayoutRepository(newTx(t), discard)

	s := mustSlot(t, 4, 1, 10, 15)
	require.NoError(t, s.Settle(builder.BaseTime.Add(time.Minute)))
	fees, err := settlement.NewFeePolicy(500, "adslot.platform")
	require.NoError(t, err)
	p, err := settlement.NewPayout(s, fees, "keeper.near")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, p))
	assert.True(t, infra.IsKind(repo.Create(ctx, p), infra.KindDuplicateKey))

	got, err := repo.FindBySlotID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, p.ID(), got.ID())
	assert.Equal(t, "95", got.Net().String())
	assert.Equal(t, "5", got.Fee().String())
	assert.Equal(t, p.FeeAccount(), got.FeeAccount())
	assert.True(t, p.SettledAt().Equal(got.SettledAt()))
}

func TestIdempotencyRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewIdempotencyRepository(newTx(t), discard)
	key := uuid.New()

	_, err := repo.Get(ctx, "advertiser.near", key)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	rec := shared.IdempotencyRecord{
		Key:         key,
		Caller:      "advertiser.near",
		Endpoint:    "POST /api/slots",
		RequestHash: "abc",
		SlotID:      3,
		CreatedAt:   builder.BaseTime,
	}
	require.NoError(t, repo.Create(ctx, rec))
	assert.True(t, infra.IsKind(repo.Create(ctx, rec), infra.KindDuplicateKey))

	got, err := repo.Get(ctx, "advertiser.near", key)
	require.NoError(t, err)
	assert.Equal(t, rec.SlotID, got.SlotID)
	assert.Equal(t, rec.RequestHash, got.RequestHash)

	_, err = repo.Get(ctx, "other.near", key)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
