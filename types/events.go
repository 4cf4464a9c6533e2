package types

import (
	"strconv"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeManagedShareRouted = "managed_share_routed"

	AttributeKeyManagedPoolID = "managed_pool_id"
	AttributeKeyBasePoolID    = "base_pool_id"
	AttributeKeyAmount        = "amount"
	AttributeKeySource        = "source"
)

// NewEventManagedShareRouted creates the event emitted when a managed pool's
// system share is redirected. basePoolID is NoPoolID when the share fell back
// to the treasury.
func NewEventManagedShareRouted(managedPoolID, basePoolID uint64, amount sdkmath.Int, source FeeSource) sdk.Event {
	return sdk.NewEvent(
		EventTypeManagedShareRouted,
		sdk.NewAttribute(AttributeKeyManagedPoolID, strconv.FormatUint(managedPoolID, 10)),
		sdk.NewAttribute(AttributeKeyBasePoolID, strconv.FormatUint(basePoolID, 10)),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(AttributeKeySource, source.String()),
	)
}
