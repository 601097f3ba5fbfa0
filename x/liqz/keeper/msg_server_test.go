package keeper

import (
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/openalpha/liqz/metrics"
	"github.com/openalpha/liqz/x/liqz/types"
)

func TestMsgServerLoanLifecycle(t *testing.T) {
	env := setupKeeper(t)
	srv := NewMsgServerImpl(env.keeper)
	collector := metrics.GetCollector()

	depositsBefore := testutil.ToFloat64(collector.DepositsTotal.WithLabelValues(nftMint))
	activeBefore := testutil.ToFloat64(collector.LoansActive.WithLabelValues(nftMint))
	repaysBefore := testutil.ToFloat64(collector.RepaymentsTotal.WithLabelValues(nftMint))

	initRes, err := srv.Initialize(env.ctx, &types.MsgInitialize{
		Owner:        ownerAddr.String(),
		PoolAccount:  env.pool.String(),
		RewardMint:   rewardMint,
		CreditMint:   creditMint,
		CurrencyMint: currencyMint,
	})
	require.NoError(t, err)
	require.Equal(t, env.pool.String(), initRes.PoolAccount)

	env.ledger.fund(env.ctx, env.pool, rewardMint, 1_000_000_000)
	env.ledger.fund(env.ctx, env.pool, creditMint, 1_000_000)
	env.ledger.fund(env.ctx, ownerAddr, currencyMint, 0)
	env.ledger.fund(env.ctx, borrowerAddr, nftMint, 1)
	env.ledger.fund(env.ctx, borrowerAddr, currencyMint, 200_000)
	env.ledger.fund(env.ctx, lenderAddr, currencyMint, 2_000_000)
	env.ledger.fund(env.ctx, lenderAddr, creditMint, 0)

	id := []byte("msg-lifecycle")
	depRes, err := srv.DepositNFT(env.ctx, &types.MsgDepositNFT{
		Borrower:       borrowerAddr.String(),
		Mint:           nftMint,
		DepositAccount: depositAddr(id).String(),
		DepositID:      hex.EncodeToString(id),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000), depRes.Incentive)

	_, err = srv.PlaceBid(env.ctx, &types.MsgPlaceBid{
		Lender:     lenderAddr.String(),
		Mint:       nftMint,
		BidAccount: bidAddr().String(),
		Price:      loanPrice,
		Qty:        1,
	})
	require.NoError(t, err)

	borrowRes, err := srv.Borrow(env.ctx, &types.MsgBorrow{
		Borrower:       borrowerAddr.String(),
		Lender:         lenderAddr.String(),
		Mint:           nftMint,
		DepositAccount: depositAddr(id).String(),
		BidAccount:     bidAddr().String(),
		Amount:         loanPrice,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(900_000), borrowRes.BorrowedAmount)
	require.Equal(t, activeBefore+1, testutil.ToFloat64(collector.LoansActive.WithLabelValues(nftMint)))

	env.advance(24 * time.Hour)
	repayRes, err := srv.Repay(env.ctx, &types.MsgRepay{
		Borrower:       borrowerAddr.String(),
		Mint:           nftMint,
		DepositAccount: depositAddr(id).String(),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_008_550), repayRes.RepayedAmount)
	require.Equal(t, uint64(450), repayRes.Fee)

	settleRes, err := srv.WithdrawLockedAsset(env.ctx, &types.MsgWithdrawLockedAsset{
		Lender:         lenderAddr.String(),
		Borrower:       borrowerAddr.String(),
		Mint:           nftMint,
		DepositAccount: depositAddr(id).String(),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_008_550), settleRes.Amount)

	require.Equal(t, depositsBefore+1, testutil.ToFloat64(collector.DepositsTotal.WithLabelValues(nftMint)))
	require.Equal(t, activeBefore, testutil.ToFloat64(collector.LoansActive.WithLabelValues(nftMint)))
	require.Equal(t, repaysBefore+1, testutil.ToFloat64(collector.RepaymentsTotal.WithLabelValues(nftMint)))
}

func TestMsgServerRecordsFailures(t *testing.T) {
	env := setupPool(t)
	srv := NewMsgServerImpl(env.keeper)
	collector := metrics.GetCollector()

	id := []byte("msg-twice")
	msg := &types.MsgDepositNFT{
		Borrower:       borrowerAddr.String(),
		Mint:           nftMint,
		DepositAccount: depositAddr(id).String(),
		DepositID:      hex.EncodeToString(id),
	}
	_, err := srv.DepositNFT(env.ctx, msg)
	require.NoError(t, err)

	code := types.ModuleName + ":" + strconv.FormatUint(uint64(types.ErrLoanAlreadyExist.ABCICode()), 10)
	failures := collector.OperationErrors.WithLabelValues(types.TypeMsgDepositNFT, code)
	before := testutil.ToFloat64(failures)

	_, err = srv.DepositNFT(env.ctx, msg)
	require.ErrorIs(t, err, types.ErrLoanAlreadyExist)
	require.Equal(t, before+1, testutil.ToFloat64(failures))
}

func TestMsgServerRejectsMalformedInput(t *testing.T) {
	env := setupPool(t)
	srv := NewMsgServerImpl(env.keeper)

	_, err := srv.WithdrawNFT(env.ctx, &types.MsgWithdrawNFT{
		Borrower:       "not-an-address",
		Mint:           nftMint,
		DepositAccount: depositAddr([]byte("x")).String(),
	})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = srv.DepositNFT(env.ctx, &types.MsgDepositNFT{
		Borrower:       borrowerAddr.String(),
		Mint:           nftMint,
		DepositAccount: depositAddr([]byte("x")).String(),
		DepositID:      "zz",
	})
	require.ErrorIs(t, err, types.ErrInvalidRecord)
}

func TestMsgServerChangeLoanSettings(t *testing.T) {
	env := setupPool(t)
	srv := NewMsgServerImpl(env.keeper)

	rate := uint64(250)
	res, err := srv.ChangeLoanSettings(env.ctx, &types.MsgChangeLoanSettings{
		Owner:        ownerAddr.String(),
		PoolAccount:  env.pool.String(),
		InterestRate: &rate,
	})
	require.NoError(t, err)
	require.Equal(t, rate, res.InterestRate)
	require.Equal(t, uint64(types.DefaultServiceFeeRate), res.ServiceFeeRate)
	require.Equal(t, uint64(types.DefaultMortgageRate), res.MortgageRate)
	require.Equal(t, int64(types.DefaultMaxLoanDuration), res.MaxLoanDuration)

	pool, err := env.keeper.GetPool(env.ctx, env.pool)
	require.NoError(t, err)
	require.Equal(t, rate, pool.InterestRate)
	require.Equal(t, pool.Incentive, res.Incentive)

	_, err = srv.ChangeLoanSettings(env.ctx, &types.MsgChangeLoanSettings{
		Owner:        strangerAddr.String(),
		PoolAccount:  env.pool.String(),
		InterestRate: &rate,
	})
	require.ErrorIs(t, err, types.ErrNotAuthorized)
}
