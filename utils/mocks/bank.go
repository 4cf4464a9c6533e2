package mocks

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// BankBalancesPrefix keeps mock balances clear of the feerouter prefixes when
// both share one store, so a discarded cache context also discards transfers.
var BankBalancesPrefix = collections.NewPrefix(100)

// BankKeeper is a minimal store-backed bank used by keeper tests.
type BankKeeper struct {
	Balances collections.Map[collections.Pair[sdk.AccAddress, string], sdkmath.Int]

	// SendErr, when set, is returned by every send after balances are checked.
	SendErr error
}

// NewBankKeeper creates a BankKeeper persisting balances in storeService.
func NewBankKeeper(storeService store.KVStoreService) *BankKeeper {
	builder := collections.NewSchemaBuilder(storeService)
	bk := &BankKeeper{
		Balances: collections.NewMap(builder, BankBalancesPrefix, "mock_balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
	}
	if _, err := builder.Build(); err != nil {
		panic(err)
	}
	return bk
}

// GetBalance returns the balance of denom held by addr.
func (b *BankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amount, err := b.Balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdk.NewCoin(denom, sdkmath.ZeroInt())
		}
		panic(err)
	}
	return sdk.NewCoin(denom, amount)
}

// Fund credits coins to addr out of thin air.
func (b *BankKeeper) Fund(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error {
	for _, coin := range coins {
		current := b.GetBalance(ctx, addr, coin.Denom)
		if err := b.Balances.Set(ctx, collections.Join(addr, coin.Denom), current.Amount.Add(coin.Amount)); err != nil {
			return err
		}
	}
	return nil
}

// FundModule credits coins to a module account.
func (b *BankKeeper) FundModule(ctx context.Context, moduleName string, coins sdk.Coins) error {
	return b.Fund(ctx, authtypes.NewModuleAddress(moduleName), coins)
}

// SendCoinsFromModuleToAccount moves coins from a module account to recipientAddr.
func (b *BankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	sender := authtypes.NewModuleAddress(senderModule)
	for _, coin := range amt {
		held := b.GetBalance(ctx, sender, coin.Denom)
		if held.Amount.LT(coin.Amount) {
			return fmt.Errorf("spendable balance %s is smaller than %s", held, coin)
		}
	}
	if b.SendErr != nil {
		return b.SendErr
	}
	for _, coin := range amt {
		held := b.GetBalance(ctx, sender, coin.Denom)
		if err := b.Balances.Set(ctx, collections.Join(sender, coin.Denom), held.Amount.Sub(coin.Amount)); err != nil {
			return err
		}
		if err := b.Fund(ctx, recipientAddr, sdk.NewCoins(coin)); err != nil {
			return err
		}
	}
	return nil
}
