package keeper

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openalpha/liqz/x/liqz/types"
)

func TestQuerierRecords(t *testing.T) {
	env := setupPool(t)
	q := NewQuerier(env.keeper)

	poolRes, err := q.Pool(env.ctx, &types.QueryPoolRequest{})
	require.NoError(t, err)
	require.Equal(t, env.pool.String(), poolRes.Address)
	pool, err := types.UnmarshalPool(poolRes.Record)
	require.NoError(t, err)
	require.True(t, pool.Owner.Equals(ownerAddr))

	id := []byte("grpc-active")
	env.openLoan(t, id, loanPrice)

	depRes, err := q.Deposit(env.ctx, &types.QueryDepositRequest{
		Mint:      nftMint,
		Borrower:  borrowerAddr.String(),
		DepositID: hex.EncodeToString(id),
	})
	require.NoError(t, err)
	require.Equal(t, depositAddr(id).String(), depRes.Address)
	require.Equal(t, types.LoanStatusActive.String(), depRes.Status)
	deposit, err := types.UnmarshalDeposit(depRes.Record)
	require.NoError(t, err)
	require.Equal(t, id, deposit.DepositID)

	bidRes, err := q.Bid(env.ctx, &types.QueryBidRequest{Mint: nftMint, Lender: lenderAddr.String()})
	require.NoError(t, err)
	require.Equal(t, bidAddr().String(), bidRes.Address)

	_, err = q.Bid(env.ctx, &types.QueryBidRequest{Mint: nftMint, Lender: "bogus"})
	require.ErrorIs(t, err, types.ErrInvalidAddress)
	_, err = q.Deposit(env.ctx, &types.QueryDepositRequest{Mint: nftMint, Borrower: borrowerAddr.String(), DepositID: "zz"})
	require.ErrorIs(t, err, types.ErrInvalidRecord)
}

func TestQuerierExpiry(t *testing.T) {
	env := setupPool(t)
	q := NewQuerier(env.keeper)

	next, err := q.NextExpiry(env.ctx, &types.QueryNextExpiryRequest{})
	require.NoError(t, err)
	require.False(t, next.Found)

	env.openLoan(t, []byte("grpc-expiring"), loanPrice)
	next, err = q.NextExpiry(env.ctx, &types.QueryNextExpiryRequest{})
	require.NoError(t, err)
	require.True(t, next.Found)
	require.Equal(t, env.ctx.BlockTime().Unix()+types.DefaultMaxLoanDuration, next.ExpiredAt)

	env.advance(time.Duration(types.DefaultMaxLoanDuration+1) * time.Second)
	all, err := q.ExpiredLoans(env.ctx, &types.QueryExpiredLoansRequest{})
	require.NoError(t, err)
	require.Len(t, all.Loans, 1)
	require.Equal(t, depositAddr([]byte("grpc-expiring")).String(), all.Loans[0].DepositAccount)

	mine, err := q.ExpiredLoans(env.ctx, &types.QueryExpiredLoansRequest{Lender: lenderAddr.String()})
	require.NoError(t, err)
	require.Len(t, mine.Loans, 1)

	other, err := q.ExpiredLoans(env.ctx, &types.QueryExpiredLoansRequest{Lender: strangerAddr.String()})
	require.NoError(t, err)
	require.Empty(t, other.Loans)

	_, err = q.ExpiredLoans(env.ctx, &types.QueryExpiredLoansRequest{Lender: "bogus"})
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}
