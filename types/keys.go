package types

import (
	"cosmossdk.io/collections"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "feerouter"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	// It should be synced with the gov module's name if it is ever changed.
	GovModuleName = "gov"

	// BpsDenominator is the basis point scale used by every split.
	BpsDenominator = 10_000

	// NoPoolID is the reserved pool id meaning "no pool".
	NoPoolID uint64 = 0
)

var (
	// ParamsKeyPrefix is the prefix to retrieve all Params
	ParamsKeyPrefix = collections.NewPrefix(0)
	// ParamsName is a human-readable name for the params collection.
	ParamsName = "params"

	// PoolsKeyPrefix is the prefix for pool ledgers keyed by pool id.
	PoolsKeyPrefix = collections.NewPrefix(1)
	// PoolsName is a human-readable name for the pool ledger collection.
	PoolsName = "pools"

	// AssetPoolsKeyPrefix is the prefix for the asset to pool id lookup.
	AssetPoolsKeyPrefix = collections.NewPrefix(2)
	// AssetPoolsName is a human-readable name for the asset to pool id lookup.
	AssetPoolsName = "asset_pools"

	// NativeTrackedTotalKeyPrefix is the prefix for the native tracked balance mirror.
	NativeTrackedTotalKeyPrefix = collections.NewPrefix(3)
	// NativeTrackedTotalName is a human-readable name for the native tracked balance mirror.
	NativeTrackedTotalName = "native_tracked_total"

	// ActiveCreditIndexPrefix is the prefix for the active credit index states.
	ActiveCreditIndexPrefix = collections.NewPrefix(4)
	// ActiveCreditIndexName is a human-readable name for the active credit index states.
	ActiveCreditIndexName = "active_credit_index"
	// ActiveCreditSourcePrefix is the prefix for active credit accruals by source.
	ActiveCreditSourcePrefix = collections.NewPrefix(5)
	// ActiveCreditSourceName is a human-readable name for active credit accruals by source.
	ActiveCreditSourceName = "active_credit_by_source"

	// FeeIndexPrefix is the prefix for the fee index states.
	FeeIndexPrefix = collections.NewPrefix(6)
	// FeeIndexName is a human-readable name for the fee index states.
	FeeIndexName = "fee_index"
	// FeeIndexSourcePrefix is the prefix for fee index accruals by source.
	FeeIndexSourcePrefix = collections.NewPrefix(7)
	// FeeIndexSourceName is a human-readable name for fee index accruals by source.
	FeeIndexSourceName = "fee_index_by_source"
)

// GetModuleAddress returns the module account address that custodies every pool's assets.
func GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}
