package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// IndexState is the pro-rata yield index of one pool.
type IndexState struct {
	// Index is the cumulative yield per unit of principal.
	Index sdkmath.LegacyDec `json:"index"`
	// Accrued is the total amount ever recorded against the index.
	Accrued sdkmath.Int `json:"accrued"`
	// Pending holds amounts recorded while the pool had no principal to spread them over.
	Pending sdkmath.Int `json:"pending"`
}

// NewIndexState returns an empty index state.
func NewIndexState() IndexState {
	return IndexState{
		Index:   sdkmath.LegacyZeroDec(),
		Accrued: sdkmath.ZeroInt(),
		Pending: sdkmath.ZeroInt(),
	}
}

// Validate checks that every field is set and non-negative.
func (s IndexState) Validate() error {
	if s.Index.IsNil() || s.Index.IsNegative() {
		return fmt.Errorf("index must be a non-negative decimal")
	}
	if s.Accrued.IsNil() || s.Accrued.IsNegative() {
		return fmt.Errorf("accrued must be non-negative")
	}
	if s.Pending.IsNil() || s.Pending.IsNegative() {
		return fmt.Errorf("pending must be non-negative")
	}
	if s.Pending.GT(s.Accrued) {
		return fmt.Errorf("pending %s exceeds accrued %s", s.Pending, s.Accrued)
	}
	return nil
}

// GenesisIndex pairs a pool id with one of its index states.
type GenesisIndex struct {
	PoolID uint64     `json:"pool_id"`
	State  IndexState `json:"state"`
}
