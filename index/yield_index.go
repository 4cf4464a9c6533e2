package index

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/types"
	"github.com/provlabs/feerouter/utils"
)

// YieldIndex is a pro-rata yield index kept per pool. Accruals raise the
// cumulative per-unit index so holders can later settle without per-user loops.
type YieldIndex struct {
	// States is the index state keyed by pool id.
	States collections.Map[uint64, types.IndexState]
	// BySource is the cumulative amount accrued keyed by (pool id, source).
	BySource collections.Map[collections.Pair[uint64, string], sdkmath.Int]
}

// NewYieldIndex creates a new YieldIndex registered on the given schema builder.
func NewYieldIndex(
	builder *collections.SchemaBuilder,
	statePrefix collections.Prefix, stateName string,
	sourcePrefix collections.Prefix, sourceName string,
) *YieldIndex {
	return &YieldIndex{
		States: collections.NewMap(builder, statePrefix, stateName, collections.Uint64Key,
			types.NewJSONValueCodec[types.IndexState]("feerouter/IndexState")),
		BySource: collections.NewMap(builder, sourcePrefix, sourceName,
			collections.PairKeyCodec(collections.Uint64Key, collections.StringKey), sdk.IntValue),
	}
}

// Get returns the index state of a pool, or an empty state if nothing has accrued yet.
func (y *YieldIndex) Get(ctx context.Context, poolID uint64) (types.IndexState, error) {
	state, err := y.States.Get(ctx, poolID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.NewIndexState(), nil
		}
		return types.IndexState{}, err
	}
	return state, nil
}

// SourceTotal returns the cumulative amount accrued for a pool from a single source.
func (y *YieldIndex) SourceTotal(ctx context.Context, poolID uint64, source types.FeeSource) (sdkmath.Int, error) {
	total, err := y.BySource.Get(ctx, collections.Join(poolID, source.String()))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return total, nil
}

// SourceTotals returns every per-source cumulative total recorded for a pool.
func (y *YieldIndex) SourceTotals(ctx context.Context, poolID uint64) ([]types.SourceTotal, error) {
	totals := make([]types.SourceTotal, 0)
	rng := collections.NewPrefixedPairRange[uint64, string](poolID)
	err := y.BySource.Walk(ctx, rng, func(key collections.Pair[uint64, string], amount sdkmath.Int) (bool, error) {
		totals = append(totals, types.SourceTotal{Source: types.FeeSource(key.K2()), Amount: amount})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// Accrue records amount as new yield for pool holders, spreading it over
// denominator units of principal. When the denominator is zero the amount is
// held as pending and folded into the next accrual that has principal to spread over.
func (y *YieldIndex) Accrue(ctx context.Context, poolID uint64, amount sdkmath.Int, source types.FeeSource, denominator sdkmath.Int) (types.IndexState, error) {
	if amount.IsNil() || amount.IsNegative() {
		return types.IndexState{}, fmt.Errorf("accrual amount must be non-negative")
	}
	if amount.IsZero() {
		return y.Get(ctx, poolID)
	}

	state, err := y.Get(ctx, poolID)
	if err != nil {
		return types.IndexState{}, err
	}

	state.Accrued = state.Accrued.Add(amount)
	distributable := state.Pending.Add(amount)
	if denominator.IsNil() || !denominator.IsPositive() {
		state.Pending = distributable
	} else {
		delta, err := utils.IndexDelta(distributable, denominator)
		if err != nil {
			return types.IndexState{}, fmt.Errorf("failed to compute index delta: %w", err)
		}
		state.Index = state.Index.Add(delta)
		state.Pending = sdkmath.ZeroInt()
	}

	if err := y.States.Set(ctx, poolID, state); err != nil {
		return types.IndexState{}, err
	}

	sourceTotal, err := y.SourceTotal(ctx, poolID, source)
	if err != nil {
		return types.IndexState{}, err
	}
	if err := y.BySource.Set(ctx, collections.Join(poolID, source.String()), sourceTotal.Add(amount)); err != nil {
		return types.IndexState{}, err
	}
	return state, nil
}

// Walk iterates over all pool index states.
// Iteration stops when the callback returns stop=true or an error.
func (y *YieldIndex) Walk(ctx context.Context, fn func(poolID uint64, state types.IndexState) (stop bool, err error)) error {
	return y.States.Walk(ctx, nil, fn)
}

// Import imports index states from genesis.
func (y *YieldIndex) Import(ctx context.Context, entries []types.GenesisIndex) error {
	for _, entry := range entries {
		if err := y.States.Set(ctx, entry.PoolID, entry.State); err != nil {
			return fmt.Errorf("failed to import index for pool %d: %w", entry.PoolID, err)
		}
	}
	return nil
}

// Export exports index states to genesis.
func (y *YieldIndex) Export(ctx context.Context) ([]types.GenesisIndex, error) {
	entries := make([]types.GenesisIndex, 0)
	err := y.Walk(ctx, func(poolID uint64, state types.IndexState) (bool, error) {
		entries = append(entries, types.GenesisIndex{PoolID: poolID, State: state})
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk index states: %w", err)
	}
	return entries, nil
}
