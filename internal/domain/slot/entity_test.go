//go:build unit

package slot_test

import (
	"testing"
	"time"

	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SlotBuilder)
	errIs  error
}

func TestSlot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, slot.StatusBooked, actual.Status())
		assert.True(t, actual.IsBooked())
		assert.Nil(t, actual.SettledAt())
		assert.Equal(t, builder.BaseTime, actual.BookedAt())
		assert.Equal(t, 5*time.Second, actual.Window().Duration())
	})

	t.Run("window validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "start equals end",
				mutate: func(b *builder.SlotBuilder) { b.Window(10, 10) },
				errIs:  slot.ErrInvertedWindow,
			},
			{
				name:   "start after end",
				mutate: func(b *builder.SlotBuilder) { b.Window(20, 10) },
				errIs:  slot.ErrInvertedWindow,
			},
			{
				name:   "start equals now",
				mutate: func(b *builder.SlotBuilder) { b.Window(0, 10) },
				errIs:  slot.ErrStartNotInFuture,
			},
			{
				name:   "start in the past",
				mutate: func(b *builder.SlotBuilder) { b.Window(-10, 10) },
				errIs:  slot.ErrStartNotInFuture,
			},
			{
				name:   "one second in the future",
				mutate: func(b *builder.SlotBuilder) { b.Window(1, 2) },
			},
		})
	})

	t.Run("party validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero id",
				mutate: func(b *builder.SlotBuilder) { b.ID = 0 },
				errIs:  slot.ErrInvalidID,
			},
			{
				name:   "zero space",
				mutate: func(b *builder.SlotBuilder) { b.SpaceID = 0 },
				errIs:  slot.ErrInvalidSpace,
			},
		})
	})
}

func TestSlot_Settle(t *testing.T) {
	t.Run("too early", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		err = s.Settle(builder.BaseTime.Add(14 * time.Second))
		assert.ErrorIs(t, err, slot.ErrWindowNotElapsed)
		assert.True(t, s.IsBooked())
	})

	t.Run("exactly at end", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		at := builder.BaseTime.Add(15 * time.Second)
		require.NoError(t, s.Settle(at))
		assert.Equal(t, slot.StatusSettled, s.Status())
		require.NotNil(t, s.SettledAt())
		assert.Equal(t, at, *s.SettledAt())
	})

	t.Run("twice", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		at := builder.BaseTime.Add(time.Minute)
		require.NoError(t, s.Settle(at))
		assert.ErrorIs(t, s.Settle(at.Add(time.Second)), slot.ErrAlreadySettled)
		assert.Equal(t, at, *s.SettledAt())
	})
}

func TestSlot_IsDue(t *testing.T) {
	s, err := builder.NewSlotBuilder().BuildDomain()
	require.NoError(t, err)

	assert.False(t, s.IsDue(builder.BaseTime.Add(14*time.Second)))
	assert.True(t, s.IsDue(builder.BaseTime.Add(15*time.Second)))

	require.NoError(t, s.Settle(builder.BaseTime.Add(15*time.Second)))
	assert.False(t, s.IsDue(builder.BaseTime.Add(time.Hour)))
}

func TestReconstructSlot_InvalidStatus(t *testing.T) {
	window, err := slot.NewTimeWindowFromUnix(10, 20)
	require.NoError(t, err)

	_, err = slot.ReconstructSlot(1, slot.BookingParams{SpaceID: 1, Window: window}, slot.Status("Cancelled"), builder.BaseTime, nil)
	assert.ErrorIs(t, err, slot.ErrInvalidStatus)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewSlotBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
