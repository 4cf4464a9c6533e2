package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/feerouter/types"
)

func (s *TestSuite) TestKeeper_RouteManagedShare_BasePool() {
	s.setParams(2000, 1000, 2000, true)
	s.requireCreatePool(1, poolSpec{asset: usdcDenom, tracked: 100_000, deposits: 50_000, activeCredit: 10_000})
	s.requireCreatePool(2, poolSpec{asset: usdcDenom, tracked: 100_000, deposits: 50_000, activeCredit: 10_000, managed: true})
	s.Require().NoError(s.k.RegisterAssetPool(s.ctx, usdcDenom, 1))
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	result, err := s.k.RouteManagedShare(s.ctx, 2, sdkmath.NewInt(10_000), types.SourceBorrow, true, sdkmath.ZeroInt())
	s.Require().NoError(err)
	// previewSplit(2000) in the base pool plus previewSplit(8000) in the managed pool.
	s.assertSplit(split(400+1600, 200+800, 1400+5600), result)

	base := s.requirePool(1)
	s.Assert().Equal("101600", base.TrackedBalance.String(), "base pool gains the system share less its treasury share")
	s.Assert().Equal("200", base.YieldReserve.String(), "base pool reserves its active credit share")

	managed := s.requirePool(2)
	s.Assert().Equal("96400", managed.TrackedBalance.String(), "managed pool loses the system share and its own treasury share")
	s.Assert().Equal("800", managed.YieldReserve.String(), "managed pool reserves its active credit share")

	s.assertTreasuryBalance(usdcDenom, 2000)
	s.assertBalance(types.GetModuleAddress(), usdcDenom, sdkmath.NewInt(198_000))

	baseFees, err := s.k.FeeIndex.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Assert().Equal("1400", baseFees.Accrued.String())
	managedFees, err := s.k.FeeIndex.Get(s.ctx, 2)
	s.Require().NoError(err)
	s.Assert().Equal("5600", managedFees.Accrued.String())

	expectedEvents := sdk.Events{types.NewEventManagedShareRouted(2, 1, sdkmath.NewInt(2000), types.SourceBorrow)}
	s.Assert().Equal(normalizeEvents(expectedEvents), normalizeEvents(s.ctx.EventManager().Events()))
	s.Assert().Equal([]uint64{1, 2}, s.maintenance.Calls, "maintenance runs for each pool reserving yield")
}

func (s *TestSuite) TestKeeper_RouteManagedShare_CrossPoolConservation() {
	s.setParams(0, 0, 5000, false)
	s.requireCreatePool(1, poolSpec{asset: nativeDenom, tracked: 10_000, deposits: 10_000})
	s.requireCreatePool(2, poolSpec{asset: nativeDenom, tracked: 10_000, deposits: 10_000, managed: true})
	s.Require().NoError(s.k.RegisterAssetPool(s.ctx, nativeDenom, 1))

	_, err := s.k.RouteManagedShare(s.ctx, 2, sdkmath.NewInt(3_001), types.SourceRepay, false, sdkmath.ZeroInt())
	s.Require().NoError(err)

	// floor(3001 * 5000 / 10000) = 1500 moves; nothing else touches tracked balances.
	s.Assert().Equal("11500", s.requirePool(1).TrackedBalance.String())
	s.Assert().Equal("8500", s.requirePool(2).TrackedBalance.String())

	total, err := s.k.GetNativeTrackedTotal(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("20000", total.String(), "moving between native pools keeps the mirror")

	baseFees, err := s.k.FeeIndex.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Assert().Equal("1500", baseFees.Accrued.String())
	managedFees, err := s.k.FeeIndex.Get(s.ctx, 2)
	s.Require().NoError(err)
	s.Assert().Equal("1501", managedFees.Accrued.String(), "managed share takes the remainder")
}

func (s *TestSuite) TestKeeper_RouteManagedShare_TreasuryFallback() {
	s.setParams(2000, 1000, 4000, true)
	s.requireCreatePool(1, poolSpec{asset: usdcDenom, tracked: 50_000, deposits: 20_000, activeCredit: 1_000, managed: true})
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	result, err := s.k.RouteManagedShare(s.ctx, 1, sdkmath.NewInt(5_000), types.SourceCloseRollingCredit, true, sdkmath.ZeroInt())
	s.Require().NoError(err)
	// systemShare 2000 goes to treasury whole, managedShare 3000 splits 600/300/2100.
	s.assertSplit(split(2000+600, 300, 2100), result)

	pool := s.requirePool(1)
	s.Assert().Equal("47400", pool.TrackedBalance.String())
	s.Assert().Equal("300", pool.YieldReserve.String())
	s.assertTreasuryBalance(usdcDenom, 2600)

	expectedEvents := sdk.Events{types.NewEventManagedShareRouted(1, types.NoPoolID, sdkmath.NewInt(2000), types.SourceCloseRollingCredit)}
	s.Assert().Equal(normalizeEvents(expectedEvents), normalizeEvents(s.ctx.EventManager().Events()))
}

func (s *TestSuite) TestKeeper_RouteManagedShare_FallbackWithoutTreasury() {
	s.setParams(2000, 1000, 4000, false)
	s.requireCreatePool(1, poolSpec{asset: usdcDenom, tracked: 50_000, deposits: 20_000, activeCredit: 1_000, managed: true})
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	result, err := s.k.RouteManagedShare(s.ctx, 1, sdkmath.NewInt(5_000), types.SourceBorrow, true, sdkmath.ZeroInt())
	s.Require().NoError(err)
	// Both shares split in the managed pool: 2000 -> 0/200/1800, 3000 -> 0/300/2700.
	s.assertSplit(split(0, 500, 4500), result)
	s.Assert().Equal("50000", s.requirePool(1).TrackedBalance.String())
	s.Assert().Empty(s.ctx.EventManager().Events(), "no redirect happened")
}

func (s *TestSuite) TestKeeper_RouteManagedShare_Equivalence() {
	tests := []struct {
		name           string
		systemShareBps uint32
		managed        bool
	}{
		{name: "unmanaged pool", systemShareBps: 3000, managed: false},
		{name: "managed pool with zero system share", systemShareBps: 0, managed: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.setParams(1500, 2500, tc.systemShareBps, true)
			spec := poolSpec{asset: usdcDenom, tracked: 40_000, deposits: 30_000, activeCredit: 7_000, managed: tc.managed}
			s.requireCreatePool(1, spec)
			s.requireCreatePool(2, spec)
			s.requireCreatePool(3, poolSpec{asset: usdcDenom, tracked: 40_000, deposits: 30_000})
			s.Require().NoError(s.k.RegisterAssetPool(s.ctx, usdcDenom, 3))
			s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

			amount := sdkmath.NewInt(9_999)
			extra := sdkmath.NewInt(123)
			viaManaged, err := s.k.RouteManagedShare(s.ctx, 1, amount, types.SourceIndexMint, true, extra)
			s.Require().NoError(err)
			viaSame, err := s.k.RouteSamePool(s.ctx, 2, amount, types.SourceIndexMint, true, extra)
			s.Require().NoError(err)

			s.assertSplit(viaSame, viaManaged)
			s.assertPoolEqual(s.requirePool(2), s.requirePool(1), "ledger after RouteManagedShare")
			s.assertPoolEqual(types.PoolLedger{
				UnderlyingAsset:            usdcDenom,
				TrackedBalance:             sdkmath.NewInt(40_000),
				TotalDeposits:              sdkmath.NewInt(30_000),
				YieldReserve:               sdkmath.ZeroInt(),
				ActiveCreditPrincipalTotal: sdkmath.ZeroInt(),
				Initialized:                true,
			}, s.requirePool(3), "base pool untouched")

			for _, idx := range []struct {
				name string
				get  func(uint64) (types.IndexState, error)
			}{
				{"active credit", func(id uint64) (types.IndexState, error) { return s.k.ActiveCreditIndex.Get(s.ctx, id) }},
				{"fee", func(id uint64) (types.IndexState, error) { return s.k.FeeIndex.Get(s.ctx, id) }},
			} {
				first, err := idx.get(1)
				s.Require().NoError(err)
				second, err := idx.get(2)
				s.Require().NoError(err)
				s.Assert().Equal(second.Accrued.String(), first.Accrued.String(), "%s index accrued", idx.name)
				s.Assert().True(second.Index.Equal(first.Index), "%s index value", idx.name)
			}
			s.Assert().Empty(s.ctx.EventManager().Events(), "no redirect event expected")
		})
	}
}

func (s *TestSuite) TestKeeper_RouteManagedShare_ZeroAmountIsNoop() {
	s.setParams(2000, 1000, 5000, true)
	before := s.requireCreatePool(1, poolSpec{asset: usdcDenom, tracked: 1_000, deposits: 1_000, managed: true})
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	result, err := s.k.RouteManagedShare(s.ctx, 1, sdkmath.ZeroInt(), types.SourceBorrow, true, sdkmath.ZeroInt())
	s.Require().NoError(err)
	s.Assert().True(result.IsZero())
	s.assertPoolEqual(before, s.requirePool(1), "zero route must not touch the pool")
	s.Assert().Empty(s.ctx.EventManager().Events())
	s.assertTreasuryBalance(usdcDenom, 0)
}

func (s *TestSuite) TestKeeper_RouteManagedShare_InsufficientTrackedForMove() {
	s.setParams(0, 0, 5000, false)
	before := s.requireCreatePool(1, poolSpec{asset: usdcDenom, tracked: 10_000, deposits: 10_000})
	s.requireCreatePool(2, poolSpec{asset: usdcDenom, tracked: 1_000, deposits: 1_000, managed: true})
	s.Require().NoError(s.k.RegisterAssetPool(s.ctx, usdcDenom, 1))
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	_, err := s.k.RouteManagedShare(s.ctx, 2, sdkmath.NewInt(10_000), types.SourceBorrow, false, sdkmath.ZeroInt())
	s.Require().Error(err)
	s.Assert().ErrorIs(err, types.ErrInsufficientPrincipal)

	s.assertPoolEqual(before, s.requirePool(1), "base pool must be unchanged")
	s.Assert().Equal("1000", s.requirePool(2).TrackedBalance.String(), "managed pool must be unchanged")
	s.Assert().Empty(s.ctx.EventManager().Events(), "failed route must not emit events")
}

func (s *TestSuite) TestKeeper_RouteManagedShare_BasePoolGuardRollsBack() {
	s.setParams(2000, 1000, 2000, true)
	// Base pool is fully reserved so its active credit share cannot be backed.
	s.requireCreatePool(1, poolSpec{asset: usdcDenom, deposits: 10_000})
	s.requireCreatePool(2, poolSpec{asset: usdcDenom, tracked: 100_000, deposits: 50_000, managed: true})
	s.Require().NoError(s.k.RegisterAssetPool(s.ctx, usdcDenom, 1))
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	_, err := s.k.RouteManagedShare(s.ctx, 2, sdkmath.NewInt(10_000), types.SourceBorrow, true, sdkmath.ZeroInt())
	s.Require().Error(err)
	s.Assert().ErrorIs(err, types.ErrInsufficientPoolLiquidity)

	s.Assert().Equal("0", s.requirePool(1).TrackedBalance.String(), "cross pool move must roll back")
	s.Assert().Equal("100000", s.requirePool(2).TrackedBalance.String(), "cross pool move must roll back")
	s.assertTreasuryBalance(usdcDenom, 0)
	s.Assert().Empty(s.ctx.EventManager().Events(), "failed route must not emit events")
}

func (s *TestSuite) TestKeeper_ResolveBasePool() {
	tests := []struct {
		name       string
		setup      func()
		expectedID uint64
		expectedOK bool
	}{
		{
			name: "healthy base pool",
			setup: func() {
				s.requireCreatePool(1, poolSpec{asset: usdcDenom, tracked: 100, deposits: 100})
				s.Require().NoError(s.k.RegisterAssetPool(s.ctx, usdcDenom, 1))
			},
			expectedID: 1,
			expectedOK: true,
		},
		{
			name: "no registered pool",
		},
		{
			name: "registered pool is the managed pool",
			setup: func() {
				s.Require().NoError(s.k.RegisterAssetPool(s.ctx, usdcDenom, 2))
			},
		},
		{
			name: "registered pool missing",
			setup: func() {
				s.Require().NoError(s.k.RegisterAssetPool(s.ctx, usdcDenom, 7))
			},
		},
		{
			name: "registered pool uninitialized",
			setup: func() {
				pool := types.NewPoolLedger(usdcDenom, false)
				pool.TotalDeposits = sdkmath.NewInt(100)
				pool.Initialized = false
				s.Require().NoError(s.k.SetPool(s.ctx, 1, pool))
				s.Require().NoError(s.k.RegisterAssetPool(s.ctx, usdcDenom, 1))
			},
		},
		{
			name: "registered pool without deposits",
			setup: func() {
				s.requireCreatePool(1, poolSpec{asset: usdcDenom, tracked: 100})
				s.Require().NoError(s.k.RegisterAssetPool(s.ctx, usdcDenom, 1))
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.setParams(0, 0, 5000, false)
			s.requireCreatePool(2, poolSpec{asset: usdcDenom, tracked: 100, deposits: 100, managed: true})
			if tc.setup != nil {
				tc.setup()
			}

			id, ok, err := s.k.TestAccessor_resolveBasePool(s.T(), s.ctx, 2)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expectedOK, ok, "ok")
			s.Assert().Equal(tc.expectedID, id, "base pool id")
		})
	}
}
