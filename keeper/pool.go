package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"

	"github.com/provlabs/feerouter/types"
)

// GetPool returns the ledger of a pool.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.PoolLedger, error) {
	pool, err := k.Pools.Get(ctx, poolID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.PoolLedger{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
		}
		return types.PoolLedger{}, fmt.Errorf("failed to get pool %d: %w", poolID, err)
	}
	return pool, nil
}

// getInitializedPool returns the ledger of a pool that may receive fees.
func (k Keeper) getInitializedPool(ctx context.Context, poolID uint64) (types.PoolLedger, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return types.PoolLedger{}, err
	}
	if !pool.Initialized {
		return types.PoolLedger{}, types.ErrPoolNotInitialized.Wrapf("pool %d", poolID)
	}
	return pool, nil
}

// SetPool validates and persists a pool ledger.
// NOTE: this does not touch the native tracked total; callers that change a
// native pool's tracked balance must keep the mirror in sync.
func (k Keeper) SetPool(ctx context.Context, poolID uint64, pool types.PoolLedger) error {
	if poolID == types.NoPoolID {
		return types.ErrInvalidRequest.Wrapf("pool id %d is reserved", types.NoPoolID)
	}
	if err := pool.Validate(); err != nil {
		return types.ErrInvalidRequest.Wrapf("invalid pool %d: %s", poolID, err)
	}
	return k.Pools.Set(ctx, poolID, pool)
}

// InitializePool stores a new pool ledger and adds its tracked balance to the
// native tracked total when the pool holds the native asset.
// NOTE: pool setup is owned by the lending actions; this exists for genesis and tests.
func (k Keeper) InitializePool(ctx context.Context, poolID uint64, pool types.PoolLedger) error {
	if has, err := k.Pools.Has(ctx, poolID); err != nil {
		return err
	} else if has {
		return types.ErrInvalidRequest.Wrapf("pool %d already exists", poolID)
	}
	if err := k.SetPool(ctx, poolID, pool); err != nil {
		return err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if params.IsNative(pool.UnderlyingAsset) && pool.TrackedBalance.IsPositive() {
		return k.adjustNativeTrackedTotal(ctx, pool.TrackedBalance)
	}
	return nil
}

// RegisterAssetPool records poolID as the pool treating asset as its depositable asset.
func (k Keeper) RegisterAssetPool(ctx context.Context, asset string, poolID uint64) error {
	if poolID == types.NoPoolID {
		return types.ErrInvalidRequest.Wrapf("pool id %d is reserved", types.NoPoolID)
	}
	return k.AssetPools.Set(ctx, asset, poolID)
}

// GetAssetPoolID returns the pool registered for asset, or NoPoolID if none is registered.
func (k Keeper) GetAssetPoolID(ctx context.Context, asset string) (uint64, error) {
	poolID, err := k.AssetPools.Get(ctx, asset)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.NoPoolID, nil
		}
		return types.NoPoolID, err
	}
	return poolID, nil
}

// resolveBasePool returns the pool that should receive a managed pool's system
// share. ok is false when no base pool is registered, when the registered pool
// is the managed pool itself, or when the base pool is missing, uninitialized
// or has no deposits.
func (k Keeper) resolveBasePool(ctx context.Context, managedPoolID uint64, managed types.PoolLedger) (basePoolID uint64, ok bool, err error) {
	basePoolID, err = k.GetAssetPoolID(ctx, managed.UnderlyingAsset)
	if err != nil {
		return types.NoPoolID, false, err
	}
	if basePoolID == types.NoPoolID || basePoolID == managedPoolID {
		return types.NoPoolID, false, nil
	}

	base, err := k.Pools.Get(ctx, basePoolID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.NoPoolID, false, nil
		}
		return types.NoPoolID, false, err
	}
	if !base.Initialized || !base.TotalDeposits.IsPositive() {
		return types.NoPoolID, false, nil
	}
	return basePoolID, true, nil
}
