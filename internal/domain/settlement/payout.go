package settlement

import (
	"errors"
	"fmt"
	"time"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/slot"

	"go.jetify.com/typeid/v2"
)

const payoutPrefix = "payout"

var (
	ErrSlotNotSettled = errors.New("payout requires a settled slot")
	ErrPayoutNotFound = errors.New("payout not found")
)

// PayoutID is a K-sortable "payout_..." TypeID.
type PayoutID string

func NewPayoutID() PayoutID {
	tid, err := typeid.Generate(payoutPrefix)
	if err != nil {
		panic(fmt.Sprintf("settlement: invalid payout prefix: %v", err))
	}
	return PayoutID(tid.String())
}

func ParsePayoutID(s string) (PayoutID, error) {
	tid, err := typeid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse payout id %q: %w", s, err)
	}
	if tid.Prefix() != payoutPrefix {
		return "", fmt.Errorf("parse payout id %q: unexpected prefix %q", s, tid.Prefix())
	}
	return PayoutID(tid.String()), nil
}

// Payout is the receipt of a single settlement. There is at most one per
// slot.
type Payout struct {
	id          PayoutID
	slotID      slot.ID
	publisher   account.ID
	gross       money.Amount
	net         money.Amount
	fee         money.Amount
	feeAccount  account.ID
	triggeredBy account.ID
	settledAt   time.Time
}

func NewPayout(s *slot.Slot, fees FeePolicy, triggeredBy account.ID) (*Payout, error) {
	if s.Status() != slot.StatusSettled || s.SettledAt() == nil {
		return nil, ErrSlotNotSettled
	}
	net, fee := fees.Split(s.Price())

	p := &Payout{
		id:          NewPayoutID(),
		slotID:      s.ID(),
		publisher:   s.Publisher(),
		gross:       s.Price(),
		net:         net,
		fee:         fee,
		triggeredBy: triggeredBy,
		settledAt:   *s.SettledAt(),
	}
	if fee.IsPositive() {
		p.feeAccount = fees.Account()
	}
	return p, nil
}

func ReconstructPayout(
	id PayoutID,
	slotID slot.ID,
	publisher account.ID,
	gross, net, fee money.Amount,
	feeAccount, triggeredBy account.ID,
	settledAt time.Time,
) *Payout {
	return &Payout{
		id:          id,
		slotID:      slotID,
		publisher:   publisher,
		gross:       gross,
		net:         net,
		fee:         fee,
		feeAccount:  feeAccount,
		triggeredBy: triggeredBy,
		settledAt:   settledAt,
	}
}

func (p *Payout) ID() PayoutID            { return p.id }
func (p *Payout) SlotID() slot.ID         { return p.slotID }
func (p *Payout) Publisher() account.ID   { return p.publisher }
func (p *Payout) Gross() money.Amount     { return p.gross }
func (p *Payout) Net() money.Amount       { return p.net }
func (p *Payout) Fee() money.Amount       { return p.fee }
func (p *Payout) FeeAccount() account.ID  { return p.feeAccount }
func (p *Payout) TriggeredBy() account.ID { return p.triggeredBy }
func (p *Payout) SettledAt() time.Time    { return p.settledAt }
