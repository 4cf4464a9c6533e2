package feerouter

import (
	"fmt"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/keeper"
	"github.com/provlabs/feerouter/types"
)

// InitGenesis validates genState and initializes the module's state from it,
// returning an error instead of panicking.
func InitGenesis(ctx sdk.Context, k *keeper.Keeper, genState types.GenesisState) (err error) {
	if err := genState.Validate(); err != nil {
		return errors.Wrap(err, "invalid genesis state")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to init genesis: %v", r)
		}
	}()
	k.InitGenesis(ctx, &genState)
	return nil
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k *keeper.Keeper) *types.GenesisState {
	return k.ExportGenesis(ctx)
}
