package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/provlabs/feerouter/keeper"
	"github.com/provlabs/feerouter/types"
	querytest "github.com/provlabs/feerouter/utils/query"
)

func (s *TestSuite) TestQueryServer_Pool() {
	testDef := querytest.TestDef[types.QueryPoolRequest, types.QueryPoolResponse]{
		QueryName: "Pool",
		Query:     keeper.NewQueryServer(&s.k).Pool,
	}

	tests := []querytest.TestCase[types.QueryPoolRequest, types.QueryPoolResponse]{
		{
			Name: "pool found",
			Setup: func() {
				s.setParams(0, 0, 0, false)
				s.requireCreatePool(3, poolSpec{asset: usdcDenom, tracked: 10, deposits: 10, reserve: 1, activeCredit: 2})
			},
			Req: &types.QueryPoolRequest{PoolID: 3},
			ExpectedResp: &types.QueryPoolResponse{Pool: types.GenesisPool{ID: 3, Ledger: types.PoolLedger{
				UnderlyingAsset:            usdcDenom,
				TrackedBalance:             sdkmath.NewInt(10),
				TotalDeposits:              sdkmath.NewInt(10),
				YieldReserve:               sdkmath.NewInt(1),
				ActiveCreditPrincipalTotal: sdkmath.NewInt(2),
				Initialized:                true,
			}}},
		},
		{
			Name:               "pool not found",
			Req:                &types.QueryPoolRequest{PoolID: 9},
			ExpectedErrSubstrs: []string{"NotFound", "pool 9 not found"},
		},
		{
			Name:               "missing pool id",
			Req:                &types.QueryPoolRequest{},
			ExpectedErrSubstrs: []string{"InvalidArgument", "pool_id must be provided"},
		},
		{
			Name:               "nil request",
			ExpectedErrSubstrs: []string{"pool_id must be provided"},
		},
	}

	testDef.PostCheck = func(expected, actual *types.QueryPoolResponse) {
		s.assertPoolEqual(expected.Pool.Ledger, actual.Pool.Ledger, "queried pool")
	}
	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_Pools() {
	s.setParams(0, 0, 0, false)
	for id := uint64(1); id <= 3; id++ {
		s.requireCreatePool(id, poolSpec{asset: usdcDenom, tracked: int64(id * 100), deposits: 1})
	}
	qs := keeper.NewQueryServer(&s.k)

	resp, err := qs.Pools(s.ctx, &types.QueryPoolsRequest{Pagination: &query.PageRequest{Limit: 2, CountTotal: true}})
	s.Require().NoError(err)
	s.Require().Len(resp.Pools, 2)
	s.Assert().Equal(uint64(1), resp.Pools[0].ID)
	s.Assert().Equal(uint64(2), resp.Pools[1].ID)
	s.Assert().Equal(uint64(3), resp.Pagination.Total)
	s.Require().NotEmpty(resp.Pagination.NextKey)

	resp, err = qs.Pools(s.ctx, &types.QueryPoolsRequest{Pagination: &query.PageRequest{Key: resp.Pagination.NextKey}})
	s.Require().NoError(err)
	s.Require().Len(resp.Pools, 1)
	s.Assert().Equal("300", resp.Pools[0].Ledger.TrackedBalance.String())

	_, err = qs.Pools(s.ctx, nil)
	s.Require().ErrorContains(err, "invalid request")
}

func (s *TestSuite) TestQueryServer_PreviewSplit() {
	testDef := querytest.TestDef[types.QueryPreviewSplitRequest, types.QueryPreviewSplitResponse]{
		QueryName: "PreviewSplit",
		Query:     keeper.NewQueryServer(&s.k).PreviewSplit,
	}

	tests := []querytest.TestCase[types.QueryPreviewSplitRequest, types.QueryPreviewSplitResponse]{
		{
			Name:         "configured split",
			Setup:        func() { s.setParams(2000, 1000, 0, true) },
			Req:          &types.QueryPreviewSplitRequest{Amount: "10000"},
			ExpectedResp: &types.QueryPreviewSplitResponse{Split: split(2000, 1000, 7000)},
		},
		{
			Name:               "not a number",
			Req:                &types.QueryPreviewSplitRequest{Amount: "ten"},
			ExpectedErrSubstrs: []string{"invalid amount"},
		},
		{
			Name:               "negative amount",
			Req:                &types.QueryPreviewSplitRequest{Amount: "-1"},
			ExpectedErrSubstrs: []string{"InvalidArgument", "amount must be non-negative"},
		},
		{
			Name:               "missing amount",
			Req:                &types.QueryPreviewSplitRequest{},
			ExpectedErrSubstrs: []string{"amount must be provided"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.Name, func() {
			querytest.RunTestCase(s, testDef, tc)
		})
	}
}

func (s *TestSuite) TestQueryServer_StateQueries() {
	s.setParams(0, 1000, 0, false)
	s.requireCreatePool(1, poolSpec{asset: nativeDenom, tracked: 5_000, deposits: 1_000, activeCredit: 1_000})
	s.Require().NoError(s.k.RegisterAssetPool(s.ctx, nativeDenom, 1))
	_, err := s.k.RouteSamePool(s.ctx, 1, sdkmath.NewInt(1_000), types.SourceBorrow, false, sdkmath.ZeroInt())
	s.Require().NoError(err)
	_, err = s.k.RouteSamePool(s.ctx, 1, sdkmath.NewInt(500), types.SourcePenalty, false, sdkmath.ZeroInt())
	s.Require().NoError(err)

	qs := keeper.NewQueryServer(&s.k)

	params, err := qs.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Assert().Equal(uint32(1000), params.Params.ActiveCreditSplitBps)

	asset, err := qs.AssetPool(s.ctx, &types.QueryAssetPoolRequest{Asset: nativeDenom})
	s.Require().NoError(err)
	s.Assert().Equal(uint64(1), asset.PoolID)

	unknown, err := qs.AssetPool(s.ctx, &types.QueryAssetPoolRequest{Asset: usdcDenom})
	s.Require().NoError(err)
	s.Assert().Equal(types.NoPoolID, unknown.PoolID)

	total, err := qs.NativeTrackedTotal(s.ctx, &types.QueryNativeTrackedTotalRequest{})
	s.Require().NoError(err)
	s.Assert().Equal("5000", total.Total.String())

	indexes, err := qs.Indexes(s.ctx, &types.QueryIndexesRequest{PoolID: 1})
	s.Require().NoError(err)
	s.Assert().Equal("150", indexes.ActiveCredit.Accrued.String())
	s.Assert().Equal("1350", indexes.Fee.Accrued.String())
	s.Require().Len(indexes.FeeSources, 2)
	s.Assert().Equal(types.SourceBorrow, indexes.FeeSources[0].Source)
	s.Assert().Equal("900", indexes.FeeSources[0].Amount.String())
	s.Assert().Equal(types.SourcePenalty, indexes.FeeSources[1].Source)
	s.Assert().Equal("450", indexes.FeeSources[1].Amount.String())

	_, err = qs.Indexes(s.ctx, &types.QueryIndexesRequest{PoolID: 2})
	s.Require().ErrorContains(err, "pool 2 not found")
}
