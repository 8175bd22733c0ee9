package account

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	MinIDLength = 2
	MaxIDLength = 64
)

var ErrInvalidID = errors.New("invalid account id")

// Lowercase alphanumeric parts joined by '-', '_' or '.', never leading or
// trailing with a separator (e.g. "alice.testnet", "ad_publisher-1").
var idPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// ID identifies an account external to the ledger: unit owners, publishers,
// advertisers and the platform fee account.
type ID string

func NewID(s string) (ID, error) {
	if len(s) < MinIDLength || len(s) > MaxIDLength || !idPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(s), nil
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}
