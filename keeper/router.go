package keeper

import (
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/types"
)

// PreviewSplit returns how amount would be divided between the treasury, the
// active credit index and the fee index under the current configuration.
// It does not modify state.
func (k Keeper) PreviewSplit(ctx sdk.Context, amount sdkmath.Int) (types.SplitResult, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.SplitResult{}, err
	}
	return types.ComputeSplit(amount, params)
}

// RouteSamePool splits amount within a single pool and disburses each share:
// the treasury share is sent out of the module, the active credit share is
// reserved through the liquidity guard and accrued on the active credit index,
// and the remainder is accrued on the fee index.
//
// pullFromTracked is set when amount must still be removed from the pool's
// tracked balance. extraBacking is backing held outside the pool for this
// operation, such as an auction reserve. A positive extraBacking also bounds the
// fee index share by the pool's spare backing; with none the fee index share is
// recorded unchecked.
//
// The route is atomic. The realized split is returned for the caller's events.
func (k Keeper) RouteSamePool(ctx sdk.Context, poolID uint64, amount sdkmath.Int, source types.FeeSource, pullFromTracked bool, extraBacking sdkmath.Int) (types.SplitResult, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), "route_same_pool")

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
		result, err = k.routeSamePool(cacheCtx, params, poolID, amount, source, pullFromTracked, extraBacking)
		return err
	})
	if err != nil {
		return types.SplitResult{}, err
	}
	return result, nil
}

// routeSamePool performs a same pool route against an already read params snapshot.
func (k Keeper) routeSamePool(ctx sdk.Context, params types.Params, poolID uint64, amount sdkmath.Int, source types.FeeSource, pullFromTracked bool, extraBacking sdkmath.Int) (types.SplitResult, error) {
	if amount.IsZero() {
		return types.ZeroSplit(), nil
	}
	if _, err := k.getInitializedPool(ctx, poolID); err != nil {
		return types.SplitResult{}, err
	}

	split, err := types.ComputeSplit(amount, params)
	if err != nil {
		return types.SplitResult{}, err
	}

	if split.ToTreasury.IsPositive() {
		if err := k.payTreasury(ctx, params, poolID, split.ToTreasury, pullFromTracked); err != nil {
			return types.SplitResult{}, err
		}
	}

	if split.ToActiveCredit.IsPositive() {
		if err := k.accrueActiveCredit(ctx, poolID, split.ToActiveCredit, source, extraBacking); err != nil {
			return types.SplitResult{}, err
		}
	}

	if split.ToFeeIndex.IsPositive() {
		if extraBacking.IsPositive() {
			err = k.accrueFeeIndexUsingBacking(ctx, poolID, split.ToFeeIndex, source, extraBacking)
		} else {
			err = k.accrueFeeIndex(ctx, poolID, split.ToFeeIndex, source)
		}
		if err != nil {
			return types.SplitResult{}, err
		}
	}

	k.getLogger(ctx).Debug("routed fee",
		"pool_id", poolID,
		"source", source.String(),
		"amount", amount.String(),
		"to_treasury", split.ToTreasury.String(),
		"to_active_credit", split.ToActiveCredit.String(),
		"to_fee_index", split.ToFeeIndex.String(),
	)
	return split, nil
}

// validateRouteArgs checks the inputs shared by every router entry point and
// returns extraBacking with a nil value replaced by zero.
func validateRouteArgs(amount sdkmath.Int, source types.FeeSource, extraBacking sdkmath.Int) (sdkmath.Int, error) {
	if amount.IsNil() || amount.IsNegative() {
		return sdkmath.Int{}, types.ErrInvalidRequest.Wrapf("amount must be non-negative, got %s", amount)
	}
	if err := source.Validate(); err != nil {
		return sdkmath.Int{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if extraBacking.IsNil() {
		return sdkmath.ZeroInt(), nil
	}
	if extraBacking.IsNegative() {
		return sdkmath.Int{}, types.ErrInvalidRequest.Wrapf("extra backing must be non-negative, got %s", extraBacking)
	}
	return extraBacking, nil
}
