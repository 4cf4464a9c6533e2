package keeper

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/types"
)

// TestAccessor_reserveYield exposes this keeper's reserveYield function for unit tests.
func (k Keeper) TestAccessor_reserveYield(t *testing.T, ctx context.Context, poolID uint64, amount, extraBacking sdkmath.Int) (types.PoolLedger, error) {
	t.Helper()
	return k.reserveYield(sdk.UnwrapSDKContext(ctx), poolID, amount, extraBacking)
}

// TestAccessor_resolveBasePool exposes this keeper's resolveBasePool function for unit tests.
func (k Keeper) TestAccessor_resolveBasePool(t *testing.T, ctx context.Context, managedPoolID uint64) (uint64, bool, error) {
	t.Helper()
	pool, err := k.GetPool(ctx, managedPoolID)
	if err != nil {
		return types.NoPoolID, false, err
	}
	return k.resolveBasePool(ctx, managedPoolID, pool)
}

// TestAccessor_moveTracked exposes this keeper's moveTracked function for unit tests.
func (k Keeper) TestAccessor_moveTracked(t *testing.T, ctx context.Context, fromPoolID, toPoolID uint64, amount sdkmath.Int) error {
	t.Helper()
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params, err := k.GetParams(sdkCtx)
	if err != nil {
		return err
	}
	return k.moveTracked(sdkCtx, params, fromPoolID, toPoolID, amount)
}

// TestAccessor_payTreasury exposes this keeper's payTreasury function for unit tests.
func (k Keeper) TestAccessor_payTreasury(t *testing.T, ctx context.Context, poolID uint64, amount sdkmath.Int, pullFromTracked bool) error {
	t.Helper()
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params, err := k.GetParams(sdkCtx)
	if err != nil {
		return err
	}
	return k.payTreasury(sdkCtx, params, poolID, amount, pullFromTracked)
}
