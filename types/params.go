package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params is the governance controlled fee configuration. The router reads it
// once per call and passes the snapshot down, so a route never observes two
// different configurations.
type Params struct {
	// NativeDenom is the denom treated as the chain native asset.
	NativeDenom string `json:"native_denom"`
	// TreasuryAddress receives the treasury share. Empty means unset and forces the share to zero.
	TreasuryAddress string `json:"treasury_address"`
	// TreasurySplitBps is the treasury share of a routed amount.
	TreasurySplitBps uint32 `json:"treasury_split_bps"`
	// ActiveCreditSplitBps is the active credit share of a routed amount.
	ActiveCreditSplitBps uint32 `json:"active_credit_split_bps"`
	// ManagedPoolSystemShareBps is the share of a managed pool's fees redirected to its base pool.
	ManagedPoolSystemShareBps uint32 `json:"managed_pool_system_share_bps"`
}

// DefaultParams returns a configuration that routes every fee to the fee index.
func DefaultParams() Params {
	return Params{
		NativeDenom: sdk.DefaultBondDenom,
	}
}

// Validate checks the basis point bounds and the treasury address.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return fmt.Errorf("invalid native denom: %w", err)
	}
	if p.TreasuryAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.TreasuryAddress); err != nil {
			return fmt.Errorf("invalid treasury address: %w", err)
		}
	}
	if p.TreasurySplitBps > BpsDenominator {
		return fmt.Errorf("treasury split %d bps exceeds %d", p.TreasurySplitBps, BpsDenominator)
	}
	if p.ActiveCreditSplitBps > BpsDenominator {
		return fmt.Errorf("active credit split %d bps exceeds %d", p.ActiveCreditSplitBps, BpsDenominator)
	}
	if p.ManagedPoolSystemShareBps > BpsDenominator {
		return fmt.Errorf("managed pool system share %d bps exceeds %d", p.ManagedPoolSystemShareBps, BpsDenominator)
	}
	if err := p.validateSplitSum(); err != nil {
		return err
	}
	return nil
}

func (p Params) validateSplitSum() error {
	if uint64(p.TreasurySplitBps)+uint64(p.ActiveCreditSplitBps) > BpsDenominator {
		return ErrConfigInvariantViolation.Wrapf("treasury %d bps + active credit %d bps exceeds %d",
			p.TreasurySplitBps, p.ActiveCreditSplitBps, BpsDenominator)
	}
	return nil
}

// HasTreasury reports whether a treasury address is configured.
func (p Params) HasTreasury() bool {
	return p.TreasuryAddress != ""
}

// IsNative reports whether the denom is the chain native asset.
func (p Params) IsNative(denom string) bool {
	return denom == p.NativeDenom
}
