package types

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryParamsRequest is the request type for the Params query.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Params query.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest is the request type for the Pool query.
type QueryPoolRequest struct {
	PoolID uint64 `json:"pool_id"`
}

// QueryPoolResponse is the response type for the Pool query.
type QueryPoolResponse struct {
	Pool GenesisPool `json:"pool"`
}

// QueryPoolsRequest is the request type for the Pools query.
type QueryPoolsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryPoolsResponse is the response type for the Pools query.
type QueryPoolsResponse struct {
	Pools      []GenesisPool       `json:"pools"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryAssetPoolRequest is the request type for the AssetPool query.
type QueryAssetPoolRequest struct {
	Asset string `json:"asset"`
}

// QueryAssetPoolResponse is the response type for the AssetPool query.
// PoolID is NoPoolID when no pool is registered for the asset.
type QueryAssetPoolResponse struct {
	PoolID uint64 `json:"pool_id"`
}

// QueryNativeTrackedTotalRequest is the request type for the NativeTrackedTotal query.
type QueryNativeTrackedTotalRequest struct{}

// QueryNativeTrackedTotalResponse is the response type for the NativeTrackedTotal query.
type QueryNativeTrackedTotalResponse struct {
	Total sdkmath.Int `json:"total"`
}

// QueryPreviewSplitRequest is the request type for the PreviewSplit query.
type QueryPreviewSplitRequest struct {
	Amount string `json:"amount"`
}

// QueryPreviewSplitResponse is the response type for the PreviewSplit query.
type QueryPreviewSplitResponse struct {
	Split SplitResult `json:"split"`
}

// QueryIndexesRequest is the request type for the Indexes query.
type QueryIndexesRequest struct {
	PoolID uint64 `json:"pool_id"`
}

// SourceTotal is the cumulative accrual from one fee source.
type SourceTotal struct {
	Source FeeSource   `json:"source"`
	Amount sdkmath.Int `json:"amount"`
}

// QueryIndexesResponse is the response type for the Indexes query.
type QueryIndexesResponse struct {
	ActiveCredit        IndexState    `json:"active_credit"`
	ActiveCreditSources []SourceTotal `json:"active_credit_sources"`
	Fee                 IndexState    `json:"fee"`
	FeeSources          []SourceTotal `json:"fee_sources"`
}
