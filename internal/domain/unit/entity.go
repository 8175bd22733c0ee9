package unit

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"adslot-ledger/internal/domain/account"
)

const MaxNameLength = 100

var (
	ErrEmptyName    = errors.New("unit name is empty")
	ErrNameTooLong  = errors.New("unit name is longer than 100 characters")
	ErrEmptyContent = errors.New("unit content is empty")
	ErrInvalidID    = errors.New("unit id undefined")
	ErrNotFound     = errors.New("unit not found")
	ErrNotOwner     = errors.New("unit not available to this account")
)

// ID is assigned sequentially by the registry, starting at 1.
type ID uint64

// Unit is an advertising creative. Units are never mutated once registered.
type Unit struct {
	id        ID
	owner     account.ID
	name      string
	content   string
	nftCID    *string
	createdAt time.Time
}

func NewUnit(id ID, owner account.ID, name, content string, nftCID *string, now time.Time) (*Unit, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	if owner.IsZero() {
		return nil, account.ErrInvalidID
	}

	// The name is stored as sent; only the checks look past surrounding blanks.
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if content == "" {
		return nil, ErrEmptyContent
	}

	return &Unit{
		id:        id,
		owner:     owner,
		name:      name,
		content:   content,
		nftCID:    nftCID,
		createdAt: now,
	}, nil
}

func ReconstructUnit(id ID, owner account.ID, name, content string, nftCID *string, createdAt time.Time) *Unit {
	return &Unit{
		id:        id,
		owner:     owner,
		name:      name,
		content:   content,
		nftCID:    nftCID,
		createdAt: createdAt,
	}
}

func (u *Unit) IsOwnedBy(acc account.ID) bool {
	return u.owner == acc
}

func (u *Unit) ID() ID               { return u.id }
func (u *Unit) Owner() account.ID    { return u.owner }
func (u *Unit) Name() string         { return u.name }
func (u *Unit) Content() string      { return u.content }
func (u *Unit) NFTCID() *string      { return u.nftCID }
func (u *Unit) CreatedAt() time.Time { return u.createdAt }
