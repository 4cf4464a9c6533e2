package keeper

import (
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/types"
)

// RouteManagedShare routes amount for a pool that may redirect part of its
// revenue to the base pool of its underlying asset.
//
// Pools that are not managed, or a zero system share, route exactly like
// RouteSamePool. Otherwise the system share moves into the base pool and is
// split there, while the managed share is split in the pool itself. When the
// base pool is unavailable the system share is paid to the treasury whole.
//
// The route is atomic and returns the sum of both sub-splits.
func (k Keeper) RouteManagedShare(ctx sdk.Context, poolID uint64, amount sdkmath.Int, source types.FeeSource, pullFromTracked bool, extraBacking sdkmath.Int) (types.SplitResult, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), "route_managed_share")

	extraBacking, err := validateRouteArgs(amount, source, extraBacking)
	if err != nil {
		return types.SplitResult{}, err
	}
	if amount.IsZero() {
		return types.ZeroSplit(), nil
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.SplitResult{}, err
	}

	var result types.SplitResult
	err = k.atomically(ctx, func(cacheCtx sdk.Context) error {
		result, err = k.routeManagedShare(cacheCtx, params, poolID, amount, source, pullFromTracked, extraBacking)
		return err
	})
	if err != nil {
		return types.SplitResult{}, err
	}
	return result, nil
}

func (k Keeper) routeManagedShare(ctx sdk.Context, params types.Params, poolID uint64, amount sdkmath.Int, source types.FeeSource, pullFromTracked bool, extraBacking sdkmath.Int) (types.SplitResult, error) {
	if amount.IsZero() {
		return types.ZeroSplit(), nil
	}

	pool, err := k.getInitializedPool(ctx, poolID)
	if err != nil {
		return types.SplitResult{}, err
	}
	if !pool.IsManagedPool || params.ManagedPoolSystemShareBps == 0 {
		return k.routeSamePool(ctx, params, poolID, amount, source, pullFromTracked, extraBacking)
	}

	shares := types.SplitManagedShare(amount, extraBacking, params.ManagedPoolSystemShareBps)

	result := types.ZeroSplit()
	if shares.SystemShare.IsPositive() {
		systemSplit, err := k.routeSystemShare(ctx, params, poolID, pool, shares.SystemShare, source, pullFromTracked, shares.SystemBacking)
		if err != nil {
			return types.SplitResult{}, err
		}
		result = result.Add(systemSplit)
	}

	managedSplit, err := k.routeSamePool(ctx, params, poolID, shares.ManagedShare, source, pullFromTracked, shares.ManagedBacking)
	if err != nil {
		return types.SplitResult{}, err
	}
	return result.Add(managedSplit), nil
}

// routeSystemShare sends a managed pool's system share to its base pool, or to
// the treasury when no usable base pool exists.
func (k Keeper) routeSystemShare(ctx sdk.Context, params types.Params, poolID uint64, pool types.PoolLedger, systemShare sdkmath.Int, source types.FeeSource, pullFromTracked bool, systemBacking sdkmath.Int) (types.SplitResult, error) {
	basePoolID, ok, err := k.resolveBasePool(ctx, poolID, pool)
	if err != nil {
		return types.SplitResult{}, err
	}

	if ok {
		if err := k.moveTracked(ctx, params, poolID, basePoolID, systemShare); err != nil {
			return types.SplitResult{}, err
		}
		if err := k.emitEvent(ctx, types.NewEventManagedShareRouted(poolID, basePoolID, systemShare, source)); err != nil {
			return types.SplitResult{}, err
		}
		return k.routeSamePool(ctx, params, basePoolID, systemShare, source, true, systemBacking)
	}

	if !params.HasTreasury() {
		// Without a treasury the share stays in the managed pool and is split normally.
		return k.routeSamePool(ctx, params, poolID, systemShare, source, pullFromTracked, systemBacking)
	}

	if err := k.payTreasury(ctx, params, poolID, systemShare, pullFromTracked); err != nil {
		return types.SplitResult{}, err
	}
	if err := k.emitEvent(ctx, types.NewEventManagedShareRouted(poolID, types.NoPoolID, systemShare, source)); err != nil {
		return types.SplitResult{}, err
	}
	telemetry.IncrCounter(1, types.ModuleName, "managed_share_fallback")
	k.getLogger(ctx).Info("no base pool for managed pool, system share paid to treasury",
		"pool_id", poolID,
		"asset", pool.UnderlyingAsset,
		"amount", systemShare.String(),
		"source", source.String(),
	)

	return types.SplitResult{
		ToTreasury:     systemShare,
		ToActiveCredit: sdkmath.ZeroInt(),
		ToFeeIndex:     sdkmath.ZeroInt(),
	}, nil
}
