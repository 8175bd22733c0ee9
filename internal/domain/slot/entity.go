package slot

import (
	"errors"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/domain/unit"
)

var (
	ErrInvalidID         = errors.New("slot id undefined")
	ErrInvertedWindow    = errors.New("start time must be before end time")
	ErrStartNotInFuture  = errors.New("start time must be after the current time")
	ErrInvalidSpace      = errors.New("space id undefined")
	ErrPublisherMismatch = errors.New("publisher does not own the space")
	ErrOverlap           = errors.New("slot already booked")
	ErrNotFound          = errors.New("slot not found")
	ErrAlreadySettled    = errors.New("slot funds already transferred")
	ErrWindowNotElapsed  = errors.New("slot is active, show time is not over yet")
	ErrInvalidStatus     = errors.New("invalid slot status")
)

type Slot struct {
	id         ID
	spaceID    space.ID
	unitID     unit.ID
	window     TimeWindow
	publisher  account.ID
	advertiser account.ID
	price      money.Amount
	// presentation is nil for bookings on unregistered spaces.
	presentation *Presentation
	status       Status
	bookedAt     time.Time
	settledAt    *time.Time
}

type BookingParams struct {
	SpaceID      space.ID
	UnitID       unit.ID
	Window       TimeWindow
	Publisher    account.ID
	Advertiser   account.ID
	Price        money.Amount
	Presentation *Presentation
}

func NewSlot(id ID, p BookingParams, now time.Time) (*Slot, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	if p.SpaceID == 0 {
		return nil, ErrInvalidSpace
	}
	if !p.Window.StartsAfter(now) {
		return nil, ErrStartNotInFuture
	}
	if p.Publisher.IsZero() || p.Advertiser.IsZero() {
		return nil, account.ErrInvalidID
	}

	return &Slot{
		id:           id,
		spaceID:      p.SpaceID,
		unitID:       p.UnitID,
		window:       p.Window,
		publisher:    p.Publisher,
		advertiser:   p.Advertiser,
		price:        p.Price,
		presentation: p.Presentation,
		status:       StatusBooked,
		bookedAt:     now,
	}, nil
}

func ReconstructSlot(
	id ID,
	p BookingParams,
	status Status,
	bookedAt time.Time,
	settledAt *time.Time,
) (*Slot, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Slot{
		id:           id,
		spaceID:      p.SpaceID,
		unitID:       p.UnitID,
		window:       p.Window,
		publisher:    p.Publisher,
		advertiser:   p.Advertiser,
		price:        p.Price,
		presentation: p.Presentation,
		status:       status,
		bookedAt:     bookedAt,
		settledAt:    settledAt,
	}, nil
}

// Settle moves the slot from Booked to Settled. It is the only mutation a
// slot ever goes through.
func (s *Slot) Settle(now time.Time) error {
	if s.status == StatusSettled {
		return ErrAlreadySettled
	}
	if !s.window.HasElapsed(now) {
		return ErrWindowNotElapsed
	}
	s.status = StatusSettled
	settledAt := now
	s.settledAt = &settledAt
	return nil
}

func (s *Slot) IsBooked() bool {
	return s.status == StatusBooked
}

func (s *Slot) IsDue(now time.Time) bool {
	return s.IsBooked() && s.window.HasElapsed(now)
}

func (s *Slot) ID() ID                      { return s.id }
func (s *Slot) SpaceID() space.ID           { return s.spaceID }
func (s *Slot) UnitID() unit.ID             { return s.unitID }
func (s *Slot) Window() TimeWindow          { return s.window }
func (s *Slot) Publisher() account.ID       { return s.publisher }
func (s *Slot) Advertiser() account.ID      { return s.advertiser }
func (s *Slot) Price() money.Amount         { return s.price }
func (s *Slot) Presentation() *Presentation { return s.presentation }
func (s *Slot) Status() Status              { return s.status }
func (s *Slot) BookedAt() time.Time         { return s.bookedAt }
func (s *Slot) SettledAt() *time.Time       { return s.settledAt }
