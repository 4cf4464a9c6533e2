package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/types"
)

// AccrueActiveCredit reserves amount of active credit yield in a pool and
// records it on the pool's active credit index. It is used by callers that have
// already computed the active credit portion themselves.
//
// The call is atomic: either the reservation and the accrual both happen, or
// neither does.
func (k Keeper) AccrueActiveCredit(ctx sdk.Context, poolID uint64, amount sdkmath.Int, source types.FeeSource, extraBacking sdkmath.Int) error {
	extraBacking, err := validateRouteArgs(amount, source, extraBacking)
	if err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}
	return k.atomically(ctx, func(cacheCtx sdk.Context) error {
		return k.accrueActiveCredit(cacheCtx, poolID, amount, source, extraBacking)
	})
}

// accrueActiveCredit reserves yield through the liquidity guard, then records
// the accrual against the active credit principal of the pool.
func (k Keeper) accrueActiveCredit(ctx sdk.Context, poolID uint64, amount sdkmath.Int, source types.FeeSource, extraBacking sdkmath.Int) error {
	pool, err := k.reserveYield(ctx, poolID, amount, extraBacking)
	if err != nil {
		return err
	}
	if _, err := k.ActiveCreditIndex.Accrue(ctx, poolID, amount, source, pool.ActiveCreditPrincipalTotal); err != nil {
		return fmt.Errorf("failed to accrue active credit index for pool %d: %w", poolID, err)
	}
	return nil
}

// reserveYield is the single chokepoint for promising active credit yield.
//
// Maintenance is enforced first because maintenance debt draws on the same
// backing. The pool is then reloaded and the reservation is allowed only if
//
//	amount <= available
//	available = backing > reserved ? backing - reserved : extraBacking
//	backing   = trackedBalance + activeCreditPrincipalTotal + extraBacking
//	reserved  = totalDeposits + yieldReserve
//
// On success the yield reserve grows by amount and the updated pool is returned.
func (k Keeper) reserveYield(ctx sdk.Context, poolID uint64, amount, extraBacking sdkmath.Int) (types.PoolLedger, error) {
	if err := k.MaintenanceKeeper.EnforceMaintenance(ctx, poolID); err != nil {
		return types.PoolLedger{}, fmt.Errorf("failed to enforce maintenance for pool %d: %w", poolID, err)
	}

	pool, err := k.getInitializedPool(ctx, poolID)
	if err != nil {
		return types.PoolLedger{}, err
	}

	available := pool.AvailableBacking(extraBacking)
	if amount.GT(available) {
		return types.PoolLedger{}, types.NewInsufficientPoolLiquidityError(amount, available)
	}

	pool.YieldReserve = pool.YieldReserve.Add(amount)
	if err := k.SetPool(ctx, poolID, pool); err != nil {
		return types.PoolLedger{}, err
	}
	return pool, nil
}

// accrueFeeIndex records amount as passive depositor yield on the pool's fee index.
func (k Keeper) accrueFeeIndex(ctx sdk.Context, poolID uint64, amount sdkmath.Int, source types.FeeSource) error {
	pool, err := k.getInitializedPool(ctx, poolID)
	if err != nil {
		return err
	}
	if _, err := k.FeeIndex.Accrue(ctx, poolID, amount, source, pool.TotalDeposits); err != nil {
		return fmt.Errorf("failed to accrue fee index for pool %d: %w", poolID, err)
	}
	return nil
}

// accrueFeeIndexUsingBacking records fee index yield that is backed partly by
// funds held outside the pool's tracked balance. The amount may not exceed
// the pool's spare backing including extraBacking.
//
// Only this path is bounded. accrueFeeIndex records yield the pool already
// holds and has no backing check, so a route that passes with zero extra
// backing can fail once any extra backing is supplied on an over-reserved pool.
func (k Keeper) accrueFeeIndexUsingBacking(ctx sdk.Context, poolID uint64, amount sdkmath.Int, source types.FeeSource, extraBacking sdkmath.Int) error {
	pool, err := k.getInitializedPool(ctx, poolID)
	if err != nil {
		return err
	}
	available := pool.AvailableBacking(extraBacking)
	if amount.GT(available) {
		return types.NewInsufficientPoolLiquidityError(amount, available)
	}
	if _, err := k.FeeIndex.Accrue(ctx, poolID, amount, source, pool.TotalDeposits); err != nil {
		return fmt.Errorf("failed to accrue backed fee index for pool %d: %w", poolID, err)
	}
	return nil
}
