package types

import (
	context "context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the custody functionality the fee router needs. Pool
// assets are held by the feerouter module account.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// MaintenanceKeeper settles pool-level maintenance debt. It must run before any
// new yield reservation and may change pool ledger fields.
type MaintenanceKeeper interface {
	EnforceMaintenance(ctx context.Context, poolID uint64) error
}
