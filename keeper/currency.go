package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/types"
)

// balanceOfSelf returns the amount of denom actually custodied by the module account.
func (k Keeper) balanceOfSelf(ctx sdk.Context, denom string) sdkmath.Int {
	return k.BankKeeper.GetBalance(ctx, types.GetModuleAddress(), denom).Amount
}

// debitTracked removes amount from a pool's tracked balance and, for native
// asset pools, from the native tracked total. The pool is persisted before returning.
func (k Keeper) debitTracked(ctx sdk.Context, params types.Params, poolID uint64, amount sdkmath.Int) error {
	pool, err := k.getInitializedPool(ctx, poolID)
	if err != nil {
		return err
	}
	if pool.TrackedBalance.LT(amount) {
		return types.NewInsufficientPrincipalError(amount, pool.TrackedBalance)
	}

	pool.TrackedBalance = pool.TrackedBalance.Sub(amount)
	if err := k.SetPool(ctx, poolID, pool); err != nil {
		return err
	}
	if params.IsNative(pool.UnderlyingAsset) {
		return k.adjustNativeTrackedTotal(ctx, amount.Neg())
	}
	return nil
}

// creditTracked adds amount to a pool's tracked balance and, for native asset
// pools, to the native tracked total. The pool is persisted before returning.
func (k Keeper) creditTracked(ctx sdk.Context, params types.Params, poolID uint64, amount sdkmath.Int) error {
	pool, err := k.getInitializedPool(ctx, poolID)
	if err != nil {
		return err
	}

	pool.TrackedBalance = pool.TrackedBalance.Add(amount)
	if err := k.SetPool(ctx, poolID, pool); err != nil {
		return err
	}
	if params.IsNative(pool.UnderlyingAsset) {
		return k.adjustNativeTrackedTotal(ctx, amount)
	}
	return nil
}

// moveTracked moves amount of backing from one pool's tracked balance to
// another's: the source is debited first, then the destination credited.
func (k Keeper) moveTracked(ctx sdk.Context, params types.Params, fromPoolID, toPoolID uint64, amount sdkmath.Int) error {
	if err := k.debitTracked(ctx, params, fromPoolID, amount); err != nil {
		return err
	}
	return k.creditTracked(ctx, params, toPoolID, amount)
}

// payTreasury sends amount of a pool's asset to the configured treasury.
//
// The module must custody at least amount of the asset. When pullFromTracked is
// set the pool's tracked balance is debited first; all ledger changes are
// persisted before the bank transfer.
func (k Keeper) payTreasury(ctx sdk.Context, params types.Params, poolID uint64, amount sdkmath.Int, pullFromTracked bool) error {
	if !params.HasTreasury() {
		return types.ErrConfigInvariantViolation.Wrap("treasury payout requested without a treasury address")
	}
	treasury, err := k.addressCodec.StringToBytes(params.TreasuryAddress)
	if err != nil {
		return types.ErrConfigInvariantViolation.Wrapf("invalid treasury address: %s", err)
	}

	pool, err := k.getInitializedPool(ctx, poolID)
	if err != nil {
		return err
	}
	held := k.balanceOfSelf(ctx, pool.UnderlyingAsset)
	if held.LT(amount) {
		return types.NewInsufficientPrincipalError(amount, held)
	}

	if pullFromTracked {
		if err := k.debitTracked(ctx, params, poolID, amount); err != nil {
			return err
		}
	}

	coins := sdk.NewCoins(sdk.NewCoin(pool.UnderlyingAsset, amount))
	if err := k.BankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, treasury, coins); err != nil {
		return fmt.Errorf("failed to pay treasury %s: %w", params.TreasuryAddress, err)
	}
	return nil
}
