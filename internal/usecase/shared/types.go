package shared

import (
	"context"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/settlement"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/domain/space"
	"adslot-ledger/internal/domain/unit"

	"github.com/google/uuid"
)

type UnitRepository interface {
	NextID(ctx context.Context) (unit.ID, error)
	Create(ctx context.Context, u *unit.Unit) error
	FindByID(ctx context.Context, id unit.ID) (*unit.Unit, error)
	List(ctx context.Context) ([]*unit.Unit, error)
}

type SpaceRepository interface {
	Create(ctx context.Context, sp *space.Space) error
	FindByID(ctx context.Context, id space.ID) (*space.Space, error)
	List(ctx context.Context) ([]*space.Space, error)
}

type SlotRepository interface {
	NextID(ctx context.Context) (slot.ID, error)
	Create(ctx context.Context, s *slot.Slot) error
	MarkSettled(ctx context.Context, s *slot.Slot) error
	FindByID(ctx context.Context, id slot.ID) (*slot.Slot, error)
	List(ctx context.Context) ([]*slot.Slot, error)
	ListBySpace(ctx context.Context, spaceID space.ID) ([]*slot.Slot, error)
	// WindowsBySpace returns the windows of every slot ever booked on the
	// space, settled ones included.
	WindowsBySpace(ctx context.Context, spaceID space.ID) ([]slot.TimeWindow, error)
	// ListDue returns booked slots whose window ended at or before now,
	// earliest end first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]slot.ID, error)
	CountBooked(ctx context.Context) (int, error)
}

type PayoutRepository interface {
	Create(ctx context.Context, p *settlement.Payout) error
	FindBySlotID(ctx context.Context, id slot.ID) (*settlement.Payout, error)
}

type IdempotencyRepository interface {
	Get(ctx context.Context, caller account.ID, key uuid.UUID) (*IdempotencyRecord, error)
	Create(ctx context.Context, rec IdempotencyRecord) error
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	Caller      account.ID
	Endpoint    string
	RequestHash string
	SlotID      slot.ID
	CreatedAt   time.Time
}
