package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// GenesisPool pairs a pool id with its ledger.
type GenesisPool struct {
	ID     uint64     `json:"id"`
	Ledger PoolLedger `json:"ledger"`
}

// AssetPool maps an asset denom to the pool id that treats it as its depositable asset.
type AssetPool struct {
	Asset  string `json:"asset"`
	PoolID uint64 `json:"pool_id"`
}

// GenesisState is the exported state of the fee router.
type GenesisState struct {
	Params             Params         `json:"params"`
	Pools              []GenesisPool  `json:"pools"`
	AssetPools         []AssetPool    `json:"asset_pools"`
	NativeTrackedTotal sdkmath.Int    `json:"native_tracked_total"`
	ActiveCreditIndex  []GenesisIndex `json:"active_credit_index"`
	FeeIndex           []GenesisIndex `json:"fee_index"`
}

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:             DefaultParams(),
		NativeTrackedTotal: sdkmath.ZeroInt(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	nativeTotal := sdkmath.ZeroInt()
	seen := make(map[uint64]struct{}, len(gs.Pools))
	for i, p := range gs.Pools {
		if p.ID == NoPoolID {
			return fmt.Errorf("pool at index %d uses reserved id %d", i, NoPoolID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate pool id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if err := p.Ledger.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", p.ID, err)
		}
		if gs.Params.IsNative(p.Ledger.UnderlyingAsset) {
			nativeTotal = nativeTotal.Add(p.Ledger.TrackedBalance)
		}
	}

	assets := make(map[string]struct{}, len(gs.AssetPools))
	for _, ap := range gs.AssetPools {
		if _, dup := assets[ap.Asset]; dup {
			return fmt.Errorf("duplicate asset pool entry for %q", ap.Asset)
		}
		assets[ap.Asset] = struct{}{}
		if ap.PoolID == NoPoolID {
			return fmt.Errorf("asset %q maps to reserved pool id %d", ap.Asset, NoPoolID)
		}
	}

	if err := validateIndexes("active credit", gs.ActiveCreditIndex, seen); err != nil {
		return err
	}
	if err := validateIndexes("fee", gs.FeeIndex, seen); err != nil {
		return err
	}

	declared := gs.NativeTrackedTotal
	if declared.IsNil() {
		declared = sdkmath.ZeroInt()
	}
	if !declared.Equal(nativeTotal) {
		return fmt.Errorf("native tracked total %s does not match native pool tracked balances %s", declared, nativeTotal)
	}
	return nil
}

func validateIndexes(kind string, entries []GenesisIndex, pools map[uint64]struct{}) error {
	seen := make(map[uint64]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := pools[e.PoolID]; !ok {
			return fmt.Errorf("%s index references unknown pool %d", kind, e.PoolID)
		}
		if _, dup := seen[e.PoolID]; dup {
			return fmt.Errorf("duplicate %s index for pool %d", kind, e.PoolID)
		}
		seen[e.PoolID] = struct{}{}
		if err := e.State.Validate(); err != nil {
			return fmt.Errorf("invalid %s index for pool %d: %w", kind, e.PoolID, err)
		}
	}
	return nil
}
