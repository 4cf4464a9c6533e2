package mocks

import (
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/core/header"
	storetypes "cosmossdk.io/store/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/keeper"
	"github.com/provlabs/feerouter/types"
)

// Keepers bundles a fee router keeper with its mocked collaborators.
type Keepers struct {
	FeeRouter   *keeper.Keeper
	Bank        *BankKeeper
	Maintenance *MaintenanceKeeper
}

// NewFeeRouterKeeper returns an instance of the Keeper with all dependencies
// mocked. The mock bank shares the module store so cached contexts roll both back.
func NewFeeRouterKeeper(
	t testing.TB,
) (sdk.Context, Keepers) {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	storeService := runtime.NewKVStoreService(key)
	bank := NewBankKeeper(storeService)
	maintenance := &MaintenanceKeeper{}

	k := keeper.NewKeeper(
		storeService,
		runtime.ProvideEventService(),
		addresscodec.NewBech32Codec(sdk.Bech32MainPrefix),
		authtypes.NewModuleAddress(types.GovModuleName),
		bank,
		maintenance,
	)

	ctx := wrapper.Ctx.WithHeaderInfo(header.Info{Time: time.Now().UTC()})
	return ctx, Keepers{FeeRouter: k, Bank: bank, Maintenance: maintenance}
}
