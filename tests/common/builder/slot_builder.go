//go:build unit || e2e

package builder

import (
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/domain/unit"
	reqdto "adslot-ledger/internal/handler/dto/request"
	"adslot-ledger/internal/usecase/commands"
	"adslot-ledger/internal/usecase/queries"
)

// BaseTime is the logical "now" fixtures are built around.
var BaseTime = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

type SlotBuilder struct {
	ID         uint64
	SpaceID    uint64
	UnitID     uint64
	StartTime  time.Time
	EndTime    time.Time
	Publisher  string
	Advertiser string
	Price      int64
	// Presentation is only carried into BuildDomain.
	Presentation *slot.Presentation
	Now          time.Time
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:         1,
		SpaceID:    1,
		UnitID:     1,
		StartTime:  BaseTime.Add(10 * time.Second),
		EndTime:    BaseTime.Add(15 * time.Second),
		Publisher:  "publisher.near",
		Advertiser: "advertiser.near",
		Price:      100,
		Now:        BaseTime,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

// Window sets the slot to [now+startOffset, now+endOffset) in seconds.
func (b *SlotBuilder) Window(startOffset, endOffset int64) *SlotBuilder {
	b.StartTime = b.Now.Add(time.Duration(startOffset) * time.Second)
	b.EndTime = b.Now.Add(time.Duration(endOffset) * time.Second)
	return b
}

// Build methods
func (b *SlotBuilder) BuildDomain() (*slot.Slot, error) {
	window, err := slot.NewTimeWindow(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return slot.NewSlot(slot.ID(b.ID), slot.BookingParams{
		SpaceID:      space.ID(b.SpaceID),
		UnitID:       unit.ID(b.UnitID),
		Window:       window,
		Publisher:    account.ID(b.Publisher),
		Advertiser:   account.ID(b.Advertiser),
		Price:        money.FromInt(b.Price),
		Presentation: b.Presentation,
	}, b.Now)
}

func (b *SlotBuilder) BuildInput() commands.TakeSlotInput {
	return commands.TakeSlotInput{
		SpaceID:            b.SpaceID,
		UnitID:             b.UnitID,
		StartTime:          b.StartTime.Unix(),
		EndTime:            b.EndTime.Unix(),
		PublisherAccountID: b.Publisher,
	}
}

func (b *SlotBuilder) Attached() money.Amount {
	return money.FromInt(b.Price)
}

func (b *SlotBuilder) BuildRequestDTO() reqdto.TakeSlotRequest {
	attached := b.Attached().String()
	return reqdto.TakeSlotRequest{
		SpaceID:            b.SpaceID,
		UnitID:             b.UnitID,
		StartTime:          b.StartTime.Unix(),
		EndTime:            b.EndTime.Unix(),
		PublisherAccountID: b.Publisher,
		AttachedAmount:     &attached,
	}
}

func (b *SlotBuilder) BuildViewQuery() *queries.SlotView {
	return &queries.SlotView{
		ID:         b.ID,
		SpaceID:    b.SpaceID,
		UnitID:     b.UnitID,
		StartTime:  b.StartTime.Unix(),
		EndTime:    b.EndTime.Unix(),
		Publisher:  b.Publisher,
		Advertiser: b.Advertiser,
		Price:      money.FromInt(b.Price),
		Status:     slot.StatusBooked.String(),
		BookedAt:   b.Now,
	}
}
