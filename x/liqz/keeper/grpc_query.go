package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

var _ types.QueryServer = Querier{}

// Querier serves the liqz.v1.Query gRPC service on top of QueryServer
type Querier struct {
	records *QueryServer
}

// NewQuerier returns a gRPC query server for k
func NewQuerier(k *Keeper) Querier {
	return Querier{records: NewQueryServerImpl(k)}
}

// Pool implements types.QueryServer
func (q Querier) Pool(ctx context.Context, _ *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	addr, pool, err := q.records.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Address: addr.String(), Record: types.MarshalPool(pool)}, nil
}

// Bid implements types.QueryServer
func (q Querier) Bid(ctx context.Context, req *types.QueryBidRequest) (*types.QueryBidResponse, error) {
	lender, err := parseAddress("lender", req.Lender)
	if err != nil {
		return nil, err
	}
	addr, bid, err := q.records.Bid(ctx, req.Mint, lender)
	if err != nil {
		return nil, err
	}
	return &types.QueryBidResponse{Address: addr.String(), Record: types.MarshalBid(bid)}, nil
}

// Deposit implements types.QueryServer
func (q Querier) Deposit(ctx context.Context, req *types.QueryDepositRequest) (*types.QueryDepositResponse, error) {
	borrower, err := parseAddress("borrower", req.Borrower)
	if err != nil {
		return nil, err
	}
	depositID, err := types.DecodeDepositID(req.DepositID)
	if err != nil {
		return nil, err
	}
	addr, deposit, err := q.records.Deposit(ctx, req.Mint, borrower, depositID)
	if err != nil {
		return nil, err
	}
	record, err := types.MarshalDeposit(deposit)
	if err != nil {
		return nil, err
	}
	return &types.QueryDepositResponse{
		Address: addr.String(),
		Status:  deposit.Status.String(),
		Record:  record,
	}, nil
}

// ExpiredLoans implements types.QueryServer. An empty lender lists every lender's loans.
func (q Querier) ExpiredLoans(ctx context.Context, req *types.QueryExpiredLoansRequest) (*types.QueryExpiredLoansResponse, error) {
	var lender sdk.AccAddress
	if req.Lender != "" {
		var err error
		if lender, err = parseAddress("lender", req.Lender); err != nil {
			return nil, err
		}
	}
	loans := q.records.ExpiredLoans(ctx, lender)
	resp := &types.QueryExpiredLoansResponse{Loans: make([]*types.ExpiredLoan, len(loans))}
	for i := range loans {
		resp.Loans[i] = &loans[i]
	}
	return resp, nil
}

// NextExpiry implements types.QueryServer
func (q Querier) NextExpiry(ctx context.Context, _ *types.QueryNextExpiryRequest) (*types.QueryNextExpiryResponse, error) {
	expiredAt, found := q.records.NextExpiry(ctx)
	return &types.QueryNextExpiryResponse{ExpiredAt: expiredAt, Found: found}, nil
}
