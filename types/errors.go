package types

import (
	"fmt"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

var (
	ErrInvalidRequest            = errors.Register(ModuleName, 2, "invalid request")
	ErrConfigInvariantViolation  = errors.Register(ModuleName, 3, "fee configuration invariant violated")
	ErrInsufficientPrincipal     = errors.Register(ModuleName, 4, "insufficient principal")
	ErrInsufficientPoolLiquidity = errors.Register(ModuleName, 5, "insufficient pool liquidity")
	ErrPoolNotFound              = errors.Register(ModuleName, 6, "pool not found")
	ErrPoolNotInitialized        = errors.Register(ModuleName, 7, "pool not initialized")
)

// ShortfallError reports an amount that could not be covered together with the
// limiting value that was available at the time.
type ShortfallError struct {
	// Err is the registered error describing which limit was hit.
	Err error
	// Requested is the amount the operation attempted to use.
	Requested sdkmath.Int
	// Available is the most the pool or module could cover.
	Available sdkmath.Int
}

// Error implements the error interface.
func (e *ShortfallError) Error() string {
	return fmt.Sprintf("%s: requested %s, available %s", e.Err.Error(), e.Requested, e.Available)
}

// Unwrap allows errors.Is/As to inspect the registered error.
func (e *ShortfallError) Unwrap() error { return e.Err }

// NewInsufficientPrincipalError builds a ShortfallError for a tracked balance or custody shortfall.
func NewInsufficientPrincipalError(requested, available sdkmath.Int) error {
	return &ShortfallError{Err: ErrInsufficientPrincipal, Requested: requested, Available: available}
}

// NewInsufficientPoolLiquidityError builds a ShortfallError for a yield reservation that exceeds spare backing.
func NewInsufficientPoolLiquidityError(requested, available sdkmath.Int) error {
	return &ShortfallError{Err: ErrInsufficientPoolLiquidity, Requested: requested, Available: available}
}
