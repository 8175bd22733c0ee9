package queries

import (
	"time"

	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/settlement"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/domain/unit"
)

// UnitView represents read-optimized unit data
type UnitView struct {
	ID        uint64    `json:"id"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	NFTCID    *string   `json:"nft_cid,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SpaceView represents read-optimized space data
type SpaceView struct {
	ID            uint64        `json:"id"`
	Owner         string        `json:"owner"`
	Name          string        `json:"name"`
	Price         money.Amount  `json:"price"`
	ShowKind      *string       `json:"show_kind,omitempty"`
	PublisherEarn *money.Amount `json:"publisher_earn,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// SlotView represents read-optimized slot data. Times are unix seconds.
type SlotView struct {
	ID           uint64            `json:"id"`
	SpaceID      uint64            `json:"space_id"`
	UnitID       uint64            `json:"unit_id"`
	StartTime    int64             `json:"start_time"`
	EndTime      int64             `json:"end_time"`
	Publisher    string            `json:"publisher_account_id"`
	Advertiser   string            `json:"advertiser_account_id"`
	Price        money.Amount      `json:"price"`
	Presentation *PresentationView `json:"presentation,omitempty"`
	Status       string            `json:"status"`
	BookedAt     time.Time         `json:"booked_at"`
	SettledAt    *time.Time        `json:"settled_at,omitempty"`
}

// PresentationView is the space snapshot a slot carries when it was booked on
// a registered space.
type PresentationView struct {
	SpaceName     string        `json:"space_name"`
	ShowKind      *string       `json:"show_kind,omitempty"`
	PublisherEarn *money.Amount `json:"publisher_earn,omitempty"`
}

// PayoutView represents read-optimized settlement receipt data
type PayoutView struct {
	ID          string       `json:"id"`
	SlotID      uint64       `json:"slot_id"`
	Publisher   string       `json:"publisher"`
	Gross       money.Amount `json:"gross"`
	Net         money.Amount `json:"net"`
	Fee         money.Amount `json:"fee"`
	FeeAccount  string       `json:"fee_account,omitempty"`
	TriggeredBy string       `json:"triggered_by"`
	SettledAt   time.Time    `json:"settled_at"`
}

type EscrowView struct {
	Held        money.Amount `json:"held"`
	BookedSlots int          `json:"booked_slots"`
}

type BalanceView struct {
	Account string       `json:"account"`
	Balance money.Amount `json:"balance"`
}

func NewUnitView(u *unit.Unit) *UnitView {
	return &UnitView{
		ID:        uint64(u.ID()),
		Owner:     u.Owner().String(),
		Name:      u.Name(),
		Content:   u.Content(),
		NFTCID:    u.NFTCID(),
		CreatedAt: u.CreatedAt(),
	}
}

func NewSpaceView(sp *space.Space) *SpaceView {
	return &SpaceView{
		ID:            uint64(sp.ID()),
		Owner:         sp.Owner().String(),
		Name:          sp.Name(),
		Price:         sp.Price(),
		ShowKind:      sp.ShowKind(),
		PublisherEarn: sp.PublisherEarn(),
		CreatedAt:     sp.CreatedAt(),
	}
}

func NewSlotView(s *slot.Slot) *SlotView {
	return &SlotView{
		ID:           uint64(s.ID()),
		SpaceID:      uint64(s.SpaceID()),
		UnitID:       uint64(s.UnitID()),
		StartTime:    s.Window().Start().Unix(),
		EndTime:      s.Window().End().Unix(),
		Publisher:    s.Publisher().String(),
		Advertiser:   s.Advertiser().String(),
		Price:        s.Price(),
		Presentation: newPresentationView(s.Presentation()),
		Status:       s.Status().String(),
		BookedAt:     s.BookedAt(),
		SettledAt:    s.SettledAt(),
	}
}

func newPresentationView(p *slot.Presentation) *PresentationView {
	if p == nil {
		return nil
	}
	return &PresentationView{SpaceName: p.SpaceName, ShowKind: p.ShowKind, PublisherEarn: p.PublisherEarn}
}

func NewPayoutView(p *settlement.Payout) *PayoutView {
	return &PayoutView{
		ID:          string(p.ID()),
		SlotID:      uint64(p.SlotID()),
		Publisher:   p.Publisher().String(),
		Gross:       p.Gross(),
		Net:         p.Net(),
		Fee:         p.Fee(),
		FeeAccount:  p.FeeAccount().String(),
		TriggeredBy: p.TriggeredBy().String(),
		SettledAt:   p.SettledAt(),
	}
}
