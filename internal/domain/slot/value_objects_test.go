//go:build unit

package slot_test

import (
	"testing"
	"time"

	"adslot-ledger/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     [2]int64
		expected bool
	}{
		{name: "identical", a: [2]int64{10, 15}, b: [2]int64{10, 15}, expected: true},
		{name: "contained", a: [2]int64{10, 20}, b: [2]int64{12, 13}, expected: true},
		{name: "partial overlap left", a: [2]int64{10, 15}, b: [2]int64{12, 20}, expected: true},
		{name: "partial overlap right", a: [2]int64{12, 20}, b: [2]int64{10, 15}, expected: true},
		{name: "adjacent after", a: [2]int64{10, 15}, b: [2]int64{15, 20}, expected: false},
		{name: "adjacent before", a: [2]int64{15, 20}, b: [2]int64{10, 15}, expected: false},
		{name: "disjoint", a: [2]int64{10, 15}, b: [2]int64{30, 40}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := slot.NewTimeWindowFromUnix(tt.a[0], tt.a[1])
			require.NoError(t, err)
			b, err := slot.NewTimeWindowFromUnix(tt.b[0], tt.b[1])
			require.NoError(t, err)

			assert.Equal(t, tt.expected, a.Overlaps(b))
			assert.Equal(t, tt.expected, b.Overlaps(a))
		})
	}
}

func TestTimeWindow_Bounds(t *testing.T) {
	w, err := slot.NewTimeWindowFromUnix(100, 160)
	require.NoError(t, err)

	assert.Equal(t, int64(100), w.Start().Unix())
	assert.Equal(t, int64(160), w.End().Unix())
	assert.Equal(t, time.Minute, w.Duration())

	assert.True(t, w.StartsAfter(time.Unix(99, 0)))
	assert.False(t, w.StartsAfter(time.Unix(100, 0)))

	assert.False(t, w.HasElapsed(time.Unix(159, 0)))
	assert.True(t, w.HasElapsed(time.Unix(160, 0)))
}
