package settlement

import (
	"errors"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
)

const MaxBasisPoints = 10_000

var ErrInvalidFee = errors.New("settlement fee must be between 0 and 10000 basis points")

// FeePolicy is the platform's cut of every settled slot. With zero basis
// points the publisher receives the full escrowed price.
type FeePolicy struct {
	basisPoints int64
	account     account.ID
}

func NewFeePolicy(basisPoints int64, acc account.ID) (FeePolicy, error) {
	if basisPoints < 0 || basisPoints > MaxBasisPoints {
		return FeePolicy{}, ErrInvalidFee
	}
	if basisPoints > 0 && acc.IsZero() {
		return FeePolicy{}, account.ErrInvalidID
	}
	return FeePolicy{basisPoints: basisPoints, account: acc}, nil
}

// Split divides gross into the publisher's net share and the platform fee.
// net + fee always equals gross.
func (f FeePolicy) Split(gross money.Amount) (net, fee money.Amount) {
	fee = gross.BasisPoints(f.basisPoints)
	net, err := gross.Sub(fee)
	if err != nil {
		return gross, money.Zero
	}
	return net, fee
}

func (f FeePolicy) BasisPoints() int64  { return f.basisPoints }
func (f FeePolicy) Account() account.ID { return f.account }
