package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/types"
)

// InitGenesis initializes the feerouter module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}

	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid feerouter genesis state: %w", err))
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, p := range genState.Pools {
		if err := k.SetPool(ctx, p.ID, p.Ledger); err != nil {
			panic(fmt.Errorf("failed to store pool %d: %w", p.ID, err))
		}
	}

	for _, ap := range genState.AssetPools {
		if err := k.RegisterAssetPool(ctx, ap.Asset, ap.PoolID); err != nil {
			panic(fmt.Errorf("failed to register asset pool %q: %w", ap.Asset, err))
		}
	}

	nativeTotal := genState.NativeTrackedTotal
	if nativeTotal.IsNil() {
		nativeTotal = sdkmath.ZeroInt()
	}
	if err := k.NativeTrackedTotal.Set(ctx, nativeTotal); err != nil {
		panic(fmt.Errorf("failed to set native tracked total: %w", err))
	}

	if err := k.ActiveCreditIndex.Import(ctx, genState.ActiveCreditIndex); err != nil {
		panic(err)
	}
	if err := k.FeeIndex.Import(ctx, genState.FeeIndex); err != nil {
		panic(err)
	}
}

// ExportGenesis exports the current state of the feerouter module.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get feerouter module params: %w", err))
	}

	pools := []types.GenesisPool{}
	err = k.Pools.Walk(ctx, nil, func(id uint64, ledger types.PoolLedger) (bool, error) {
		pools = append(pools, types.GenesisPool{ID: id, Ledger: ledger})
		return false, nil
	})
	if err != nil {
		panic(fmt.Errorf("failed to export pools: %w", err))
	}

	assetPools := []types.AssetPool{}
	err = k.AssetPools.Walk(ctx, nil, func(asset string, poolID uint64) (bool, error) {
		assetPools = append(assetPools, types.AssetPool{Asset: asset, PoolID: poolID})
		return false, nil
	})
	if err != nil {
		panic(fmt.Errorf("failed to export asset pools: %w", err))
	}

	nativeTotal, err := k.GetNativeTrackedTotal(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get native tracked total: %w", err))
	}

	activeCredit, err := k.ActiveCreditIndex.Export(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to export active credit index: %w", err))
	}
	fees, err := k.FeeIndex.Export(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to export fee index: %w", err))
	}

	return &types.GenesisState{
		Params:             params,
		Pools:              pools,
		AssetPools:         assetPools,
		NativeTrackedTotal: nativeTotal,
		ActiveCreditIndex:  activeCredit,
		FeeIndex:           fees,
	}
}
