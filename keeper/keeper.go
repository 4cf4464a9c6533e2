package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/index"
	"github.com/provlabs/feerouter/types"
)

type Keeper struct {
	schema       collections.Schema
	eventService event.Service
	addressCodec address.Codec
	authority    []byte

	BankKeeper        types.BankKeeper
	MaintenanceKeeper types.MaintenanceKeeper

	Params             collections.Item[types.Params]
	Pools              collections.Map[uint64, types.PoolLedger]
	AssetPools         collections.Map[string, uint64]
	NativeTrackedTotal collections.Item[sdkmath.Int]

	ActiveCreditIndex *index.YieldIndex
	FeeIndex          *index.YieldIndex
}

func NewKeeper(
	storeService store.KVStoreService,
	eventService event.Service,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
	maintenanceKeeper types.MaintenanceKeeper,
) *Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}
	if bankKeeper == nil {
		panic("bank keeper is required")
	}
	if maintenanceKeeper == nil {
		panic("maintenance keeper is required")
	}

	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		eventService:       eventService,
		addressCodec:       addressCodec,
		authority:          authority,
		BankKeeper:         bankKeeper,
		MaintenanceKeeper:  maintenanceKeeper,
		Params:             collections.NewItem(builder, types.ParamsKeyPrefix, types.ParamsName, types.ParamsValue),
		Pools:              collections.NewMap(builder, types.PoolsKeyPrefix, types.PoolsName, collections.Uint64Key, types.PoolLedgerValue),
		AssetPools:         collections.NewMap(builder, types.AssetPoolsKeyPrefix, types.AssetPoolsName, collections.StringKey, collections.Uint64Value),
		NativeTrackedTotal: collections.NewItem(builder, types.NativeTrackedTotalKeyPrefix, types.NativeTrackedTotalName, sdk.IntValue),
		ActiveCreditIndex: index.NewYieldIndex(builder,
			types.ActiveCreditIndexPrefix, types.ActiveCreditIndexName,
			types.ActiveCreditSourcePrefix, types.ActiveCreditSourceName),
		FeeIndex: index.NewYieldIndex(builder,
			types.FeeIndexPrefix, types.FeeIndexName,
			types.FeeIndexSourcePrefix, types.FeeIndexSourceName),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// getLogger returns a logger with feerouter module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// emitEvent emits a kv event through the event service.
func (k Keeper) emitEvent(ctx context.Context, ev sdk.Event) error {
	attrs := make([]event.Attribute, 0, len(ev.Attributes))
	for _, attr := range ev.Attributes {
		attrs = append(attrs, event.Attribute{Key: attr.Key, Value: attr.Value})
	}
	return k.eventService.EventManager(ctx).EmitKV(ctx, ev.Type, attrs...)
}

// atomically runs fn against a cached branch of ctx and commits the branch only
// if fn succeeds, so a failed route leaves no partial ledger, bank or event changes.
func (k Keeper) atomically(ctx sdk.Context, fn func(cacheCtx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}
