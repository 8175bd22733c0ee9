package money

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformed    = errors.New("malformed amount")
	ErrFractional   = errors.New("amount must be a whole number of base units")
	ErrNegative     = errors.New("amount cannot be negative")
	ErrInsufficient = errors.New("insufficient amount")
)

const bpsDenominator = 10_000

// Amount is a non-negative, arbitrary-precision integer quantity of the
// smallest currency unit. Balances on the ledger can exceed int64 range
// (one whole coin is 10^24 base units), so everything goes through decimal.
type Amount struct {
	value decimal.Decimal
}

var Zero = Amount{value: decimal.Zero}

func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrMalformed
	}
	return fromDecimal(d)
}

func FromInt(v int64) Amount {
	a, err := fromDecimal(decimal.NewFromInt(v))
	if err != nil {
		panic("money: negative literal amount")
	}
	return a
}

func fromDecimal(d decimal.Decimal) (Amount, error) {
	if !d.IsInteger() {
		return Amount{}, ErrFractional
	}
	if d.IsNegative() {
		return Amount{}, ErrNegative
	}
	return Amount{value: d}, nil
}

func (a Amount) IsZero() bool     { return a.value.IsZero() }
func (a Amount) IsPositive() bool { return a.value.IsPositive() }
func (a Amount) String() string   { return a.value.String() }

func (a Amount) Cmp(other Amount) int       { return a.value.Cmp(other.value) }
func (a Amount) Equal(other Amount) bool    { return a.value.Equal(other.value) }
func (a Amount) LessThan(other Amount) bool { return a.value.LessThan(other.value) }
func (a Amount) Add(other Amount) Amount    { return Amount{value: a.value.Add(other.value)} }

// Sub fails instead of going negative; a ledger balance can never be
// overdrawn.
func (a Amount) Sub(other Amount) (Amount, error) {
	if a.value.LessThan(other.value) {
		return Amount{}, ErrInsufficient
	}
	return Amount{value: a.value.Sub(other.value)}, nil
}

// BasisPoints returns floor(a * bps / 10000).
func (a Amount) BasisPoints(bps int64) Amount {
	if bps <= 0 {
		return Zero
	}
	share := a.value.Mul(decimal.NewFromInt(bps)).Div(decimal.NewFromInt(bpsDenominator)).Floor()
	return Amount{value: share}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrMalformed
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
