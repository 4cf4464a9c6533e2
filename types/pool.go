package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PoolLedger is the per-pool accounting record the fee router reads and mutates.
type PoolLedger struct {
	// UnderlyingAsset is the denom held by the pool.
	UnderlyingAsset string `json:"underlying_asset"`
	// TrackedBalance is the module's internal accounting of units it holds for the pool.
	TrackedBalance sdkmath.Int `json:"tracked_balance"`
	// TotalDeposits is the principal owed back to depositors.
	TotalDeposits sdkmath.Int `json:"total_deposits"`
	// YieldReserve is active credit yield earmarked but not yet distributed.
	YieldReserve sdkmath.Int `json:"yield_reserve"`
	// ActiveCreditPrincipalTotal is the principal currently earning active credit yield.
	ActiveCreditPrincipalTotal sdkmath.Int `json:"active_credit_principal_total"`
	// IsManagedPool diverts a share of routed fees into the base pool of the same asset.
	IsManagedPool bool `json:"is_managed_pool"`
	// Initialized is set once the pool has been set up and may receive fees.
	Initialized bool `json:"initialized"`
}

// NewPoolLedger creates an initialized, empty pool ledger for the given asset.
func NewPoolLedger(underlyingAsset string, managed bool) PoolLedger {
	return PoolLedger{
		UnderlyingAsset:            underlyingAsset,
		TrackedBalance:             sdkmath.ZeroInt(),
		TotalDeposits:              sdkmath.ZeroInt(),
		YieldReserve:               sdkmath.ZeroInt(),
		ActiveCreditPrincipalTotal: sdkmath.ZeroInt(),
		IsManagedPool:              managed,
		Initialized:                true,
	}
}

// Validate performs basic validation on the pool ledger fields.
func (p PoolLedger) Validate() error {
	if err := sdk.ValidateDenom(p.UnderlyingAsset); err != nil {
		return fmt.Errorf("invalid underlying asset denom: %w", err)
	}

	amounts := []struct {
		name  string
		value sdkmath.Int
	}{
		{"tracked balance", p.TrackedBalance},
		{"total deposits", p.TotalDeposits},
		{"yield reserve", p.YieldReserve},
		{"active credit principal total", p.ActiveCreditPrincipalTotal},
	}
	for _, a := range amounts {
		if a.value.IsNil() {
			return fmt.Errorf("%s must be set", a.name)
		}
		if a.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative: %s", a.name, a.value)
		}
	}
	return nil
}

// Reserved returns the obligations already promised by the pool.
func (p PoolLedger) Reserved() sdkmath.Int {
	return p.TotalDeposits.Add(p.YieldReserve)
}

// Backing returns the assets available to honor the pool's obligations,
// including any extra backing supplied for the current operation.
func (p PoolLedger) Backing(extraBacking sdkmath.Int) sdkmath.Int {
	return p.TrackedBalance.Add(p.ActiveCreditPrincipalTotal).Add(extraBacking)
}

// AvailableBacking returns the spare backing a new yield reservation may draw on.
// When the pool is already over-reserved only the explicitly supplied extra
// backing may be used, so an existing shortfall is never masked.
func (p PoolLedger) AvailableBacking(extraBacking sdkmath.Int) sdkmath.Int {
	backing := p.Backing(extraBacking)
	reserved := p.Reserved()
	if backing.GT(reserved) {
		return backing.Sub(reserved)
	}
	return extraBacking
}
