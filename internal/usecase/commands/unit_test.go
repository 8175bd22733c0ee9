//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/domain/unit"
	"adslot-ledger/internal/pkg/errs"
	"adslot-ledger/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUnit(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	first, err := l.units.MakeUnit(ctx, l.at(0, advertiser, 0), builder.NewUnitBuilder().BuildInput())
	require.NoError(t, err)
	second, err := l.units.MakeUnit(ctx, l.at(1, publisher, 0), builder.NewUnitBuilder().BuildInput())
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)
	assert.Equal(t, advertiser.String(), first.Owner)
	assert.Equal(t, publisher.String(), second.Owner)

	tests := []struct {
		name   string
		mutate func(*builder.UnitBuilder)
		errIs  error
	}{
		{name: "empty name", mutate: func(b *builder.UnitBuilder) { b.Name = "" }},
		{name: "blank name", mutate: func(b *builder.UnitBuilder) { b.Name = "  " }, errIs: unit.ErrEmptyName},
		{name: "empty content", mutate: func(b *builder.UnitBuilder) { b.Content = "" }},
		{name: "long name", mutate: func(b *builder.UnitBuilder) { b.Name = strings.Repeat("x", 101) }, errIs: unit.ErrNameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.units.MakeUnit(ctx, l.at(2, advertiser, 0), builder.NewUnitBuilder().With(tt.mutate).BuildInput())
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.Equal(t, "VALIDATION_ERROR", errs.Code(err))
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}

	// failed registrations do not consume ids
	third, err := l.units.MakeUnit(ctx, l.at(3, advertiser, 0), builder.NewUnitBuilder().BuildInput())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), third.ID)

	t.Run("stored exactly as sent", func(t *testing.T) {
		cid := " bafy123 "
		in := builder.NewUnitBuilder().With(func(b *builder.UnitBuilder) {
			b.Name = " Unit #1 "
			b.Content = "   "
			b.NFTCID = &cid
		}).BuildInput()

		created, err := l.units.MakeUnit(ctx, l.at(4, advertiser, 0), in)
		require.NoError(t, err)

		fetched, err := l.unitQueries.GetByID(ctx, unit.ID(created.ID))
		require.NoError(t, err)
		assert.Equal(t, " Unit #1 ", fetched.Name)
		assert.Equal(t, "   ", fetched.Content)
		require.NotNil(t, fetched.NFTCID)
		assert.Equal(t, " bafy123 ", *fetched.NFTCID)
	})
}

func TestMakeSpace(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	view, err := l.spaces.MakeSpace(ctx, l.at(0, publisher, 0), builder.NewSpaceBuilder().BuildInput())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), view.ID)
	assert.Equal(t, publisher.String(), view.Owner)

	t.Run("duplicate id", func(t *testing.T) {
		_, err := l.spaces.MakeSpace(ctx, l.at(1, "other.near", 0), builder.NewSpaceBuilder().BuildInput())
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.ErrorIs(t, err, space.ErrAlreadyExists)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := l.spaces.MakeSpace(ctx, l.at(1, publisher, 0), builder.NewSpaceBuilder().With(func(b *builder.SpaceBuilder) { b.ID = 0 }).BuildInput())
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.ErrorIs(t, err, space.ErrInvalidID)
	})

	t.Run("zero price", func(t *testing.T) {
		_, err := l.spaces.MakeSpace(ctx, l.at(1, publisher, 0), builder.NewSpaceBuilder().With(func(b *builder.SpaceBuilder) { b.ID = 2; b.Price = 0 }).BuildInput())
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.ErrorIs(t, err, space.ErrPriceNotSet)
	})
}
