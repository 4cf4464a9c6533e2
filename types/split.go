package types

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/feerouter/utils"
)

// SplitResult is the three-way division of a routed amount.
type SplitResult struct {
	ToTreasury     sdkmath.Int `json:"to_treasury"`
	ToActiveCredit sdkmath.Int `json:"to_active_credit"`
	ToFeeIndex     sdkmath.Int `json:"to_fee_index"`
}

// ZeroSplit returns a split with every destination set to zero.
func ZeroSplit() SplitResult {
	return SplitResult{
		ToTreasury:     sdkmath.ZeroInt(),
		ToActiveCredit: sdkmath.ZeroInt(),
		ToFeeIndex:     sdkmath.ZeroInt(),
	}
}

// Total returns the sum of all three destinations.
func (s SplitResult) Total() sdkmath.Int {
	return s.ToTreasury.Add(s.ToActiveCredit).Add(s.ToFeeIndex)
}

// Add returns the component-wise sum of two splits.
func (s SplitResult) Add(other SplitResult) SplitResult {
	return SplitResult{
		ToTreasury:     s.ToTreasury.Add(other.ToTreasury),
		ToActiveCredit: s.ToActiveCredit.Add(other.ToActiveCredit),
		ToFeeIndex:     s.ToFeeIndex.Add(other.ToFeeIndex),
	}
}

// IsZero reports whether nothing was routed.
func (s SplitResult) IsZero() bool {
	return s.ToTreasury.IsZero() && s.ToActiveCredit.IsZero() && s.ToFeeIndex.IsZero()
}

// ComputeSplit divides amount into treasury, active credit and fee index shares.
//
//	toTreasury     = treasury set ? floor(amount * treasuryBps / 10000) : 0
//	toActiveCredit = floor(amount * activeCreditBps / 10000)
//	toFeeIndex     = amount - toTreasury - toActiveCredit
//
// The fee index absorbs all rounding dust so the three shares always sum to amount.
func ComputeSplit(amount sdkmath.Int, params Params) (SplitResult, error) {
	if amount.IsNil() || amount.IsNegative() {
		return SplitResult{}, ErrInvalidRequest.Wrapf("amount must be non-negative, got %s", amount)
	}
	if amount.IsZero() {
		return ZeroSplit(), nil
	}
	if err := params.validateSplitSum(); err != nil {
		return SplitResult{}, err
	}

	toTreasury := sdkmath.ZeroInt()
	if params.HasTreasury() {
		toTreasury = utils.MulBps(amount, params.TreasurySplitBps)
	}
	toActiveCredit := utils.MulBps(amount, params.ActiveCreditSplitBps)

	return SplitResult{
		ToTreasury:     toTreasury,
		ToActiveCredit: toActiveCredit,
		ToFeeIndex:     amount.Sub(toTreasury).Sub(toActiveCredit),
	}, nil
}

// ManagedShares is the division of a managed pool's routed amount and extra
// backing between its base pool (system) and itself (managed).
type ManagedShares struct {
	SystemShare    sdkmath.Int `json:"system_share"`
	ManagedShare   sdkmath.Int `json:"managed_share"`
	SystemBacking  sdkmath.Int `json:"system_backing"`
	ManagedBacking sdkmath.Int `json:"managed_backing"`
}

// SplitManagedShare divides amount and extraBacking by the managed pool system
// share. The system portion is floored and the managed portion takes the remainder.
func SplitManagedShare(amount, extraBacking sdkmath.Int, systemShareBps uint32) ManagedShares {
	systemShare, managedShare := utils.SplitBps(amount, systemShareBps)
	systemBacking, managedBacking := utils.SplitBps(extraBacking, systemShareBps)
	return ManagedShares{
		SystemShare:    systemShare,
		ManagedShare:   managedShare,
		SystemBacking:  systemBacking,
		ManagedBacking: managedBacking,
	}
}

// ManagedPreview is the decomposition of a managed pool route before any pool
// state is consulted.
type ManagedPreview struct {
	Shares ManagedShares `json:"shares"`
	// System is the split applied to the system share, in the base pool or at the treasury.
	System SplitResult `json:"system"`
	// Managed is the split applied to the managed share in the managed pool.
	Managed SplitResult `json:"managed"`
}

// Total returns the combined split of both shares.
func (p ManagedPreview) Total() SplitResult {
	return p.System.Add(p.Managed)
}

// PreviewManagedShare computes the split a managed pool route would apply when
// every pool involved has the liquidity to accept it. hasBasePool selects
// between the base pool redirect and the treasury fallback.
func PreviewManagedShare(amount, extraBacking sdkmath.Int, params Params, hasBasePool bool) (ManagedPreview, error) {
	if amount.IsNil() || amount.IsNegative() {
		return ManagedPreview{}, ErrInvalidRequest.Wrapf("amount must be non-negative, got %s", amount)
	}
	if extraBacking.IsNil() {
		extraBacking = sdkmath.ZeroInt()
	}

	shares := SplitManagedShare(amount, extraBacking, params.ManagedPoolSystemShareBps)
	system := ZeroSplit()
	switch {
	case shares.SystemShare.IsZero():
	case hasBasePool || !params.HasTreasury():
		var err error
		if system, err = ComputeSplit(shares.SystemShare, params); err != nil {
			return ManagedPreview{}, err
		}
	default:
		system.ToTreasury = shares.SystemShare
	}

	managed, err := ComputeSplit(shares.ManagedShare, params)
	if err != nil {
		return ManagedPreview{}, err
	}
	return ManagedPreview{Shares: shares, System: system, Managed: managed}, nil
}
