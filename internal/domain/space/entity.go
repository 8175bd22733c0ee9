package space

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
)

const MaxNameLength = 100

var (
	ErrInvalidID      = errors.New("space id undefined")
	ErrEmptyName      = errors.New("space name is empty")
	ErrNameTooLong    = errors.New("space name is longer than 100 characters")
	ErrPriceNotSet    = errors.New("space price must be positive")
	ErrEarnAbovePrice = errors.New("publisher earn exceeds the space price")
	ErrAlreadyExists  = errors.New("space already exists")
	ErrNotFound       = errors.New("space not found")
)

type ID uint64

// Space is an advertising placement registered by its publisher. Registering
// a space is optional; when present it fixes who gets paid for bookings on it
// and the price they cost.
type Space struct {
	id       ID
	owner    account.ID
	name     string
	price    money.Amount
	showKind *string
	// publisherEarn is the advertised payout per booking. It is informational;
	// settlement always pays from the slot's escrowed price.
	publisherEarn *money.Amount
	createdAt     time.Time
}

func NewSpace(id ID, owner account.ID, name string, price money.Amount, showKind *string, publisherEarn *money.Amount, now time.Time) (*Space, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	if owner.IsZero() {
		return nil, account.ErrInvalidID
	}

	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if !price.IsPositive() {
		return nil, ErrPriceNotSet
	}
	if publisherEarn != nil && price.LessThan(*publisherEarn) {
		return nil, ErrEarnAbovePrice
	}

	return &Space{
		id:            id,
		owner:         owner,
		name:          name,
		price:         price,
		showKind:      showKind,
		publisherEarn: publisherEarn,
		createdAt:     now,
	}, nil
}

func ReconstructSpace(id ID, owner account.ID, name string, price money.Amount, showKind *string, publisherEarn *money.Amount, createdAt time.Time) *Space {
	return &Space{
		id:            id,
		owner:         owner,
		name:          name,
		price:         price,
		showKind:      showKind,
		publisherEarn: publisherEarn,
		createdAt:     createdAt,
	}
}

func (s *Space) ID() ID                       { return s.id }
func (s *Space) Owner() account.ID            { return s.owner }
func (s *Space) Name() string                 { return s.name }
func (s *Space) Price() money.Amount          { return s.price }
func (s *Space) ShowKind() *string            { return s.showKind }
func (s *Space) PublisherEarn() *money.Amount { return s.publisherEarn }
func (s *Space) CreatedAt() time.Time         { return s.createdAt }
