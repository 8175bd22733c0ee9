package slot

import (
	"time"

	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/space"
)

// Presentation is what the advertiser saw of a registered space at booking
// time. Later changes to the space do not reach it.
type Presentation struct {
	SpaceName     string
	ShowKind      *string
	PublisherEarn *money.Amount
}

func PresentationOf(sp *space.Space) *Presentation {
	if sp == nil {
		return nil
	}
	return &Presentation{
		SpaceName:     sp.Name(),
		ShowKind:      sp.ShowKind(),
		PublisherEarn: sp.PublisherEarn(),
	}
}

// TimeWindow is the half-open interval [start, end) a slot occupies.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvertedWindow
	}
	return TimeWindow{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

// NewTimeWindowFromUnix builds a window from unix-second timestamps.
func NewTimeWindowFromUnix(start, end int64) (TimeWindow, error) {
	return NewTimeWindow(time.Unix(start, 0), time.Unix(end, 0))
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports whether the two half-open windows share any instant.
// Windows that only touch (one ends exactly when the other starts) do not.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w TimeWindow) StartsAfter(now time.Time) bool {
	return w.start.After(now)
}

func (w TimeWindow) HasElapsed(now time.Time) bool {
	return !now.Before(w.end)
}
