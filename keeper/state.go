package keeper

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/feerouter/types"
)

// GetParams returns the stored fee configuration. When no params have been
// stored yet the default configuration is returned without error.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}

// SetParams validates and persists the fee configuration. When the native
// denom changes the native tracked total is rebuilt from the pools holding the
// new native asset.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidRequest.Wrap(err.Error())
	}
	current, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if err := k.Params.Set(ctx, params); err != nil {
		return err
	}
	if current.NativeDenom != params.NativeDenom {
		return k.resyncNativeTrackedTotal(ctx, params.NativeDenom)
	}
	return nil
}

// UpdateParams replaces the fee configuration on behalf of the module authority.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	signer, err := k.addressCodec.StringToBytes(authority)
	if err != nil {
		return types.ErrInvalidRequest.Wrapf("invalid authority address: %s", err)
	}
	if !bytes.Equal(signer, k.authority) {
		expected, _ := k.addressCodec.BytesToString(k.authority)
		return types.ErrInvalidRequest.Wrapf("expected authority %s, got %s", expected, authority)
	}
	return k.SetParams(ctx, params)
}

// GetNativeTrackedTotal returns the mirror of tracked balances across all native asset pools.
func (k Keeper) GetNativeTrackedTotal(ctx context.Context) (sdkmath.Int, error) {
	total, err := k.NativeTrackedTotal.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return total, nil
}

// adjustNativeTrackedTotal applies delta to the native tracked balance mirror.
// The mirror can never go negative; a debit larger than the mirror means the
// ledger and the mirror have diverged and the call must abort.
func (k Keeper) adjustNativeTrackedTotal(ctx context.Context, delta sdkmath.Int) error {
	total, err := k.GetNativeTrackedTotal(ctx)
	if err != nil {
		return err
	}
	updated := total.Add(delta)
	if updated.IsNegative() {
		return types.NewInsufficientPrincipalError(delta.Neg(), total)
	}
	return k.NativeTrackedTotal.Set(ctx, updated)
}

// resyncNativeTrackedTotal sets the native tracked total to the sum of tracked
// balances of every pool holding nativeDenom.
func (k Keeper) resyncNativeTrackedTotal(ctx context.Context, nativeDenom string) error {
	total := sdkmath.ZeroInt()
	err := k.Pools.Walk(ctx, nil, func(_ uint64, pool types.PoolLedger) (bool, error) {
		if pool.UnderlyingAsset == nativeDenom {
			total = total.Add(pool.TrackedBalance)
		}
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk pools: %w", err)
	}
	return k.NativeTrackedTotal.Set(ctx, total)
}
