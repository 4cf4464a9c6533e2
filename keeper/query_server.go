package keeper

import (
	"context"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/provlabs/feerouter/types"
)

// QueryServer is the read-only surface of the fee router.
type QueryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) *QueryServer {
	return &QueryServer{Keeper: keeper}
}

// Params returns the current fee configuration.
func (k QueryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	params, err := k.GetParams(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Pool returns the ledger of a single pool.
func (k QueryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil || req.PoolID == types.NoPoolID {
		return nil, status.Error(codes.InvalidArgument, "pool_id must be provided")
	}

	pool, err := k.GetPool(goCtx, req.PoolID)
	if err != nil {
		if errors.IsOf(err, types.ErrPoolNotFound) {
			return nil, status.Errorf(codes.NotFound, "pool %d not found", req.PoolID)
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryPoolResponse{Pool: types.GenesisPool{ID: req.PoolID, Ledger: pool}}, nil
}

// Pools returns a paginated list of all pool ledgers.
func (k QueryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	pools, pageRes, err := query.CollectionPaginate(
		goCtx,
		k.Keeper.Pools,
		req.Pagination,
		func(id uint64, ledger types.PoolLedger) (types.GenesisPool, error) {
			return types.GenesisPool{ID: id, Ledger: ledger}, nil
		},
	)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryPoolsResponse{
		Pools:      pools,
		Pagination: pageRes,
	}, nil
}

// AssetPool returns the base pool registered for an asset.
func (k QueryServer) AssetPool(goCtx context.Context, req *types.QueryAssetPoolRequest) (*types.QueryAssetPoolResponse, error) {
	if req == nil || req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "asset must be provided")
	}

	poolID, err := k.GetAssetPoolID(goCtx, req.Asset)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryAssetPoolResponse{PoolID: poolID}, nil
}

// NativeTrackedTotal returns the mirror of native pools' tracked balances.
func (k QueryServer) NativeTrackedTotal(goCtx context.Context, req *types.QueryNativeTrackedTotalRequest) (*types.QueryNativeTrackedTotalResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	total, err := k.GetNativeTrackedTotal(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryNativeTrackedTotalResponse{Total: total}, nil
}

// PreviewSplit returns the split the current configuration would apply to an amount.
func (k QueryServer) PreviewSplit(goCtx context.Context, req *types.QueryPreviewSplitRequest) (*types.QueryPreviewSplitResponse, error) {
	if req == nil || req.Amount == "" {
		return nil, status.Error(codes.InvalidArgument, "amount must be provided")
	}

	amount, ok := sdkmath.NewIntFromString(req.Amount)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount %q", req.Amount)
	}

	split, err := k.Keeper.PreviewSplit(sdk.UnwrapSDKContext(goCtx), amount)
	if err != nil {
		if errors.IsOf(err, types.ErrInvalidRequest) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	return &types.QueryPreviewSplitResponse{Split: split}, nil
}

// Indexes returns both yield index states of a pool and their per-source totals.
func (k QueryServer) Indexes(goCtx context.Context, req *types.QueryIndexesRequest) (*types.QueryIndexesResponse, error) {
	if req == nil || req.PoolID == types.NoPoolID {
		return nil, status.Error(codes.InvalidArgument, "pool_id must be provided")
	}
	if _, err := k.GetPool(goCtx, req.PoolID); err != nil {
		return nil, status.Errorf(codes.NotFound, "pool %d not found", req.PoolID)
	}

	resp := &types.QueryIndexesResponse{}
	var err error
	if resp.ActiveCredit, err = k.ActiveCreditIndex.Get(goCtx, req.PoolID); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if resp.ActiveCreditSources, err = k.ActiveCreditIndex.SourceTotals(goCtx, req.PoolID); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if resp.Fee, err = k.FeeIndex.Get(goCtx, req.PoolID); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if resp.FeeSources, err = k.FeeIndex.SourceTotals(goCtx, req.PoolID); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}
