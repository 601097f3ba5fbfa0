package keeper

import (
	"context"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

// QueryServer defines the liqz QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Pool returns the pool record and its address
func (q *QueryServer) Pool(ctx context.Context) (sdk.AccAddress, *types.Pool, error) {
	return q.keeper.CanonicalPool(sdk.UnwrapSDKContext(ctx))
}

// Bid returns the bid of lender for mint
func (q *QueryServer) Bid(ctx context.Context, mint string, lender sdk.AccAddress) (sdk.AccAddress, *types.Bid, error) {
	addr, _ := types.BidAddress(mint, lender)
	bid, err := q.keeper.GetBid(sdk.UnwrapSDKContext(ctx), addr)
	if err != nil {
		return nil, nil, err
	}
	return addr, bid, nil
}

// Deposit returns the deposit identified by (mint, borrower, depositID)
func (q *QueryServer) Deposit(ctx context.Context, mint string, borrower sdk.AccAddress, depositID []byte) (sdk.AccAddress, *types.NFTDeposit, error) {
	if len(depositID) > types.MaxDepositIDLen {
		return nil, nil, types.ErrDepositIDTooLong
	}
	addr, _ := types.DepositAddress(mint, borrower, depositID)
	deposit, err := q.keeper.GetDeposit(sdk.UnwrapSDKContext(ctx), addr)
	if err != nil {
		return nil, nil, err
	}
	return addr, deposit, nil
}

// DepositsByStatus returns the addresses of all deposits in status, sorted
func (q *QueryServer) DepositsByStatus(ctx context.Context, status types.LoanStatus) []string {
	var out []string
	for addr, d := range q.keeper.GetAllDeposits(sdk.UnwrapSDKContext(ctx)) {
		if d.Status == status {
			out = append(out, addr)
		}
	}
	sort.Strings(out)
	return out
}

// ExpiredLoans lists the active loans past expiry at the current block time,
// earliest first. With lender set only that lender's loans are returned.
func (q *QueryServer) ExpiredLoans(ctx context.Context, lender sdk.AccAddress) []types.ExpiredLoan {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	var out []types.ExpiredLoan
	q.keeper.buildLoanIndex(sdkCtx).ExpiredBefore(sdkCtx.BlockTime().Unix(), func(item *loanItem) bool {
		if len(lender) > 0 && !item.loan.Lender.Equals(lender) {
			return true
		}
		out = append(out, types.ExpiredLoan{
			DepositAccount: item.deposit.String(),
			Lender:         item.loan.Lender.String(),
			TotalAmount:    item.loan.TotalAmount,
			BorrowedAmount: item.loan.BorrowedAmount,
			ExpiredAt:      item.expiredAt,
		})
		return true
	})
	return out
}

// NextExpiry returns the earliest expiry among active loans
func (q *QueryServer) NextExpiry(ctx context.Context) (int64, bool) {
	next := q.keeper.buildLoanIndex(sdk.UnwrapSDKContext(ctx)).Next()
	if next == nil {
		return 0, false
	}
	return next.expiredAt, true
}
