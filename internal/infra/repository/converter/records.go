package converter

import (
	"fmt"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/settlement"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/domain/unit"
)

// RecordVersion is bumped whenever a stored record shape changes. Readers
// reject versions they do not know instead of guessing.
const RecordVersion = 1

type UnitRecord struct {
	Version   int       `json:"v"`
	ID        uint64    `json:"id"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	NFTCID    *string   `json:"nft_cid,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SpaceRecord struct {
	Version       int           `json:"v"`
	ID            uint64        `json:"id"`
	Owner         string        `json:"owner"`
	Name          string        `json:"name"`
	Price         money.Amount  `json:"price"`
	ShowKind      *string       `json:"show_kind,omitempty"`
	PublisherEarn *money.Amount `json:"publisher_earn,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type SlotRecord struct {
	Version      int                 `json:"v"`
	ID           uint64              `json:"id"`
	SpaceID      uint64              `json:"space_id"`
	UnitID       uint64              `json:"unit_id"`
	StartTime    int64               `json:"start_time"`
	EndTime      int64               `json:"end_time"`
	Publisher    string              `json:"publisher_account_id"`
	Advertiser   string              `json:"advertiser_account_id"`
	Price        money.Amount        `json:"price"`
	Presentation *PresentationRecord `json:"presentation,omitempty"`
	Status       string              `json:"status"`
	BookedAt     time.Time           `json:"booked_at"`
	SettledAt    *time.Time          `json:"settled_at,omitempty"`
}

type PresentationRecord struct {
	SpaceName     string        `json:"space_name"`
	ShowKind      *string       `json:"show_kind,omitempty"`
	PublisherEarn *money.Amount `json:"publisher_earn,omitempty"`
}

// WindowRecord is the per-space index entry used for overlap checks.
type WindowRecord struct {
	SlotID    uint64 `json:"slot_id"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
}

type PayoutRecord struct {
	Version     int          `json:"v"`
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

func checkVersion(kind string, v int) error {
	if v != RecordVersion {
		return fmt.Errorf("unsupported %s record version %d", kind, v)
	}
	return nil
}

func UnitToRecord(u *unit.Unit) UnitRecord {
	return UnitRecord{
		Version:   RecordVersion,
		ID:        uint64(u.ID()),
		Owner:     u.Owner().String(),
		Name:      u.Name(),
		Content:   u.Content(),
		NFTCID:    u.NFTCID(),
		CreatedAt: u.CreatedAt(),
	}
}

func UnitFromRecord(r UnitRecord) (*unit.Unit, error) {
	if err := checkVersion("unit", r.Version); err != nil {
		return nil, err
	}
	return unit.ReconstructUnit(unit.ID(r.ID), account.ID(r.Owner), r.Name, r.Content, r.NFTCID, r.CreatedAt), nil
}

func SpaceToRecord(sp *space.Space) SpaceRecord {
	return SpaceRecord{
		Version:       RecordVersion,
		ID:            uint64(sp.ID()),
		Owner:         sp.Owner().String(),
		Name:          sp.Name(),
		Price:         sp.Price(),
		ShowKind:      sp.ShowKind(),
		PublisherEarn: sp.PublisherEarn(),
		CreatedAt:     sp.CreatedAt(),
	}
}

func SpaceFromRecord(r SpaceRecord) (*space.Space, error) {
	if err := checkVersion("space", r.Version); err != nil {
		return nil, err
	}
	return space.ReconstructSpace(space.ID(r.ID), account.ID(r.Owner), r.Name, r.Price, r.ShowKind, r.PublisherEarn, r.CreatedAt), nil
}

func SlotToRecord(s *slot.Slot) SlotRecord {
	return SlotRecord{
		Version:      RecordVersion,
		ID:           uint64(s.ID()),
		SpaceID:      uint64(s.SpaceID()),
		UnitID:       uint64(s.UnitID()),
		StartTime:    s.Window().Start().Unix(),
		EndTime:      s.Window().End().Unix(),
		Publisher:    s.Publisher().String(),
		Advertiser:   s.Advertiser().String(),
		Price:        s.Price(),
		Presentation: presentationToRecord(s.Presentation()),
		Status:       s.Status().String(),
		BookedAt:     s.BookedAt(),
		SettledAt:    s.SettledAt(),
	}
}

func SlotFromRecord(r SlotRecord) (*slot.Slot, error) {
	if err := checkVersion("slot", r.Version); err != nil {
		return nil, err
	}
	window, err := slot.NewTimeWindowFromUnix(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	return slot.ReconstructSlot(
		slot.ID(r.ID),
		slot.BookingParams{
			SpaceID:      space.ID(r.SpaceID),
			UnitID:       unit.ID(r.UnitID),
			Window:       window,
			Publisher:    account.ID(r.Publisher),
			Advertiser:   account.ID(r.Advertiser),
			Price:        r.Price,
			Presentation: presentationFromRecord(r.Presentation),
		},
		slot.Status(r.Status),
		r.BookedAt,
		r.SettledAt,
	)
}

func presentationToRecord(p *slot.Presentation) *PresentationRecord {
	if p == nil {
		return nil
	}
	return &PresentationRecord{SpaceName: p.SpaceName, ShowKind: p.ShowKind, PublisherEarn: p.PublisherEarn}
}

func presentationFromRecord(r *PresentationRecord) *slot.Presentation {
	if r == nil {
		return nil
	}
	return &slot.Presentation{SpaceName: r.SpaceName, ShowKind: r.ShowKind, PublisherEarn: r.PublisherEarn}
}

func SlotToWindowRecord(s *slot.Slot) WindowRecord {
	return WindowRecord{
		SlotID:    uint64(s.ID()),
		StartTime: s.Window().Start().Unix(),
		EndTime:   s.Window().End().Unix(),
	}
}

func WindowFromRecord(r WindowRecord) (slot.TimeWindow, error) {
	return slot.NewTimeWindowFromUnix(r.StartTime, r.EndTime)
}

func PayoutToRecord(p *settlement.Payout) PayoutRecord {
	return PayoutRecord{
		Version:     RecordVersion,
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

func PayoutFromRecord(r PayoutRecord) (*settlement.Payout, error) {
	if err := checkVersion("payout", r.Version); err != nil {
		return nil, err
	}
	return settlement.ReconstructPayout(
		settlement.PayoutID(r.ID),
		slot.ID(r.SlotID),
		account.ID(r.Publisher),
		r.Gross, r.Net, r.Fee,
		account.ID(r.FeeAccount),
		account.ID(r.TriggeredBy),
		r.SettledAt,
	), nil
}
