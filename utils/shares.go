package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// IndexDelta returns the per-unit increase of a pro-rata index when amount is
// distributed over denominator units of principal.
//
// Formula (18 decimal LegacyDec, truncated):
//
//	delta = amount / denominator
//
// Returns an error if any input is negative or the denominator is zero.
func IndexDelta(amount, denominator math.Int) (math.LegacyDec, error) {
	if amount.IsNegative() || denominator.IsNegative() {
		return math.LegacyDec{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if denominator.IsZero() {
		return math.LegacyDec{}, fmt.Errorf("invalid input: zero denominator")
	}
	if amount.IsZero() {
		return math.LegacyZeroDec(), nil
	}
	return math.LegacyNewDecFromInt(amount).QuoInt(denominator), nil
}
