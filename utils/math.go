package utils

import (
	"cosmossdk.io/math"
)

// BpsDenominator is the number of basis points in one whole.
const BpsDenominator = 10_000

var bpsDenominator = math.NewInt(BpsDenominator)

// MulBps returns floor(amount * bps / 10000).
//
// A nil or non-positive amount yields zero.
func MulBps(amount math.Int, bps uint32) math.Int {
	if amount.IsNil() || !amount.IsPositive() || bps == 0 {
		return math.ZeroInt()
	}
	return amount.Mul(math.NewIntFromUint64(uint64(bps))).Quo(bpsDenominator)
}

// SplitBps divides amount into (part, rest) where part = floor(amount * bps / 10000)
// and rest = amount - part, so the two always sum back to amount.
func SplitBps(amount math.Int, bps uint32) (part, rest math.Int) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.ZeroInt(), math.ZeroInt()
	}
	part = MulBps(amount, bps)
	return part, amount.Sub(part)
}
