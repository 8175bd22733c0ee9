package slot

import (
	"errors"
	"fmt"

	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/space"
)

var (
	ErrNoDeposit          = errors.New("attached deposit is missing")
	ErrDepositTooSmall    = errors.New("deposit is too small")
	ErrDepositMismatch    = errors.New("deposit does not match the space price")
	ErrUnknownPricePolicy = errors.New("unknown price policy")
)

const (
	PolicyMinimum = "minimum"
	PolicyExact   = "exact"
)

// PricePolicy decides whether an attached amount pays for a booking. sp is
// nil when the booked space was never registered.
type PricePolicy interface {
	Check(attached money.Amount, sp *space.Space) error
}

func NewPricePolicy(kind string, floor money.Amount) (PricePolicy, error) {
	switch kind {
	case PolicyMinimum, "":
		return &MinimumPricePolicy{Floor: floor}, nil
	case PolicyExact:
		return &ExactPricePolicy{Floor: floor}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPricePolicy, kind)
	}
}

// MinimumPricePolicy accepts any amount at or above the registered space
// price.
type MinimumPricePolicy struct {
	Floor money.Amount
}

func (p *MinimumPricePolicy) Check(attached money.Amount, sp *space.Space) error {
	if err := checkFloor(attached, p.Floor); err != nil {
		return err
	}
	if sp != nil && attached.LessThan(sp.Price()) {
		return fmt.Errorf("%w: attached %s, required %s", ErrDepositTooSmall, attached, sp.Price())
	}
	return nil
}

// ExactPricePolicy requires the attached amount to equal the registered
// space price.
type ExactPricePolicy struct {
	Floor money.Amount
}

func (p *ExactPricePolicy) Check(attached money.Amount, sp *space.Space) error {
	if err := checkFloor(attached, p.Floor); err != nil {
		return err
	}
	if sp != nil && !attached.Equal(sp.Price()) {
		return fmt.Errorf("%w: attached %s, required %s", ErrDepositMismatch, attached, sp.Price())
	}
	return nil
}

func checkFloor(attached, floor money.Amount) error {
	if !attached.IsPositive() {
		return ErrNoDeposit
	}
	if attached.LessThan(floor) {
		return fmt.Errorf("%w: attached %s, required %s", ErrDepositTooSmall, attached, floor)
	}
	return nil
}
