package commands

import (
	"fmt"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/domain/money"
	"adslot-ledger/internal/domain/settlement"
	"adslot-ledger/internal/domain/slot"
	"adslot-ledger/internal/pkg/config"
)

// Rules are the configurable parts of booking and settlement.
type Rules struct {
	Pricing          slot.PricePolicy
	Fees             settlement.FeePolicy
	RequireUnitOwner bool
}

func NewRules(cfg config.LedgerConfig) (Rules, error) {
	floor, err := money.Parse(cfg.MinPrice)
	if err != nil {
		return Rules{}, fmt.Errorf("LEDGER_MIN_PRICE: %w", err)
	}
	pricing, err := slot.NewPricePolicy(cfg.PricePolicy, floor)
	if err != nil {
		return Rules{}, fmt.Errorf("LEDGER_PRICE_POLICY: %w", err)
	}

	var platform account.ID
	if cfg.PlatformAccount != "" {
		platform, err = account.NewID(cfg.PlatformAccount)
		if err != nil {
			return Rules{}, fmt.Errorf("LEDGER_PLATFORM_ACCOUNT: %w", err)
		}
	}
	fees, err := settlement.NewFeePolicy(cfg.SettlementFeeBPS, platform)
	if err != nil {
		return Rules{}, fmt.Errorf("LEDGER_SETTLEMENT_FEE_BPS: %w", err)
	}

	return Rules{
		Pricing:          pricing,
		Fees:             fees,
		RequireUnitOwner: cfg.RequireUnitOwner,
	}, nil
}
