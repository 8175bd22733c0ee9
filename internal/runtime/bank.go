package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/pkg/errs"
)

const (
	heldKey       = "escrow/held"
	balancePrefix = "balance/"
)

var ErrEscrowShortfall = errors.New("escrow holds less than the requested release")

// Bank moves value in and out of the contract-held escrow. All movements go
// through the same Store as the records they pay for, so they commit or roll
// back together with them.
type Bank interface {
	// Hold takes attached funds into escrow.
	Hold(ctx context.Context, amount money.Amount) error
	// Release pays amount out of escrow to an external account.
	Release(ctx context.Context, to account.ID, amount money.Amount) error
	Held(ctx context.Context) (money.Amount, error)
	BalanceOf(ctx context.Context, acc account.ID) (money.Amount, error)
}

type kvBank struct {
	store Store
}

func NewBank(store Store) Bank {
	return &kvBank{store: store}
}

func (b *kvBank) Hold(ctx context.Context, amount money.Amount) error {
	held, err := b.Held(ctx)
	if err != nil {
		return err
	}
	return b.write(ctx, heldKey, held.Add(amount))
}

func (b *kvBank) Release(ctx context.Context, to account.ID, amount money.Amount) error {
	held, err := b.Held(ctx)
	if err != nil {
		return err
	}
	remaining, err := held.Sub(amount)
	if err != nil {
		return errs.Wrapf(ErrEscrowShortfall, "held %s, release %s", held, amount)
	}
	balance, err := b.BalanceOf(ctx, to)
	if err != nil {
		return err
	}
	if err := b.write(ctx, heldKey, remaining); err != nil {
		return err
	}
	return b.write(ctx, balancePrefix+to.String(), balance.Add(amount))
}

func (b *kvBank) Held(ctx context.Context) (money.Amount, error) {
	return b.read(ctx, heldKey)
}

func (b *kvBank) BalanceOf(ctx context.Context, acc account.ID) (money.Amount, error) {
	return b.read(ctx, balancePrefix+acc.String())
}

func (b *kvBank) read(ctx context.Context, key string) (money.Amount, error) {
	raw, err := b.store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return money.Zero, nil
	}
	if err != nil {
		return money.Zero, errs.Wrapf(err, "read %s", key)
	}
	var amount money.Amount
	if err := json.Unmarshal(raw, &amount); err != nil {
		return money.Zero, fmt.Errorf("decode %s: %w", key, err)
	}
	return amount, nil
}

func (b *kvBank) write(ctx context.Context, key string, amount money.Amount) error {
	raw, err := json.Marshal(amount)
	if err != nil {
		return err
	}
	return errs.Wrapf(b.store.Put(ctx, key, raw), "write %s", key)
}
