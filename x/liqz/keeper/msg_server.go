package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/metrics"
	"github.com/openalpha/liqz/x/liqz/types"
)

var _ types.MsgServer = (*MsgServer)(nil)

// MsgServer defines the liqz MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

func observe(operation string, timer *metrics.Timer, err error) {
	code := ""
	if err != nil {
		codespace, c, _ := errors.ABCIInfo(err, false)
		code = codespace + ":" + strconv.FormatUint(uint64(c), 10)
	}
	metrics.GetCollector().RecordOperation(operation, err, code, timer.ElapsedMs())
}

func parseAddress(field, addr string) (sdk.AccAddress, error) {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "%s: %v", field, err)
	}
	return acc, nil
}

func parseAddresses(fields ...string) ([]sdk.AccAddress, error) {
	out := make([]sdk.AccAddress, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		acc, err := parseAddress(fields[i], fields[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, acc)
	}
	return out, nil
}

// Initialize handles MsgInitialize
func (m *MsgServer) Initialize(ctx context.Context, msg *types.MsgInitialize) (_ *types.MsgInitializeResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgInitialize, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses("owner", msg.Owner, "pool_account", msg.PoolAccount)
	if err != nil {
		return nil, err
	}
	if _, err = m.keeper.Initialize(ctx, addrs[0], addrs[1], msg.RewardMint, msg.CreditMint, msg.CurrencyMint); err != nil {
		return nil, err
	}
	return &types.MsgInitializeResponse{PoolAccount: msg.PoolAccount}, nil
}

// ChangeLoanSettings handles MsgChangeLoanSettings
func (m *MsgServer) ChangeLoanSettings(ctx context.Context, msg *types.MsgChangeLoanSettings) (_ *types.MsgChangeLoanSettingsResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgChangeLoanSettings, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses("owner", msg.Owner, "pool_account", msg.PoolAccount)
	if err != nil {
		return nil, err
	}
	pool, err := m.keeper.ChangeLoanSettings(ctx, addrs[0], addrs[1], msg.LoanSettings())
	if err != nil {
		return nil, err
	}
	return &types.MsgChangeLoanSettingsResponse{
		Incentive:       pool.Incentive,
		InterestRate:    pool.InterestRate,
		ServiceFeeRate:  pool.ServiceFeeRate,
		MaxLoanDuration: pool.MaxLoanDuration,
		MortgageRate:    pool.MortgageRate,
	}, nil
}

// DepositNFT handles MsgDepositNFT
func (m *MsgServer) DepositNFT(ctx context.Context, msg *types.MsgDepositNFT) (_ *types.MsgDepositNFTResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgDepositNFT, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses("borrower", msg.Borrower, "deposit_account", msg.DepositAccount)
	if err != nil {
		return nil, err
	}
	depositID, err := types.DecodeDepositID(msg.DepositID)
	if err != nil {
		return nil, err
	}
	incentive, err := m.keeper.DepositNFT(ctx, addrs[0], msg.Mint, addrs[1], depositID)
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordDeposit(msg.Mint, incentive)
	return &types.MsgDepositNFTResponse{Incentive: incentive}, nil
}

// WithdrawNFT handles MsgWithdrawNFT
func (m *MsgServer) WithdrawNFT(ctx context.Context, msg *types.MsgWithdrawNFT) (_ *types.MsgWithdrawNFTResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgWithdrawNFT, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses("borrower", msg.Borrower, "deposit_account", msg.DepositAccount)
	if err != nil {
		return nil, err
	}
	if err = m.keeper.WithdrawNFT(ctx, addrs[0], msg.Mint, addrs[1]); err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordWithdrawal(msg.Mint)
	return &types.MsgWithdrawNFTResponse{}, nil
}

// PlaceBid handles MsgPlaceBid
func (m *MsgServer) PlaceBid(ctx context.Context, msg *types.MsgPlaceBid) (_ *types.MsgPlaceBidResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgPlaceBid, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses("lender", msg.Lender, "bid_account", msg.BidAccount)
	if err != nil {
		return nil, err
	}
	if err = m.keeper.PlaceBid(ctx, addrs[0], msg.Mint, addrs[1], msg.Price, msg.Qty); err != nil {
		return nil, err
	}
	if msg.Qty > 0 {
		metrics.GetCollector().RecordBid(msg.Mint, msg.Price, msg.Qty)
	}
	return &types.MsgPlaceBidResponse{}, nil
}

// CancelBid handles MsgCancelBid
func (m *MsgServer) CancelBid(ctx context.Context, msg *types.MsgCancelBid) (_ *types.MsgCancelBidResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgCancelBid, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses("lender", msg.Lender, "bid_account", msg.BidAccount)
	if err != nil {
		return nil, err
	}
	if err = m.keeper.CancelBid(ctx, addrs[0], msg.Mint, addrs[1], msg.Revoke); err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordBidCancelled(msg.Mint)
	return &types.MsgCancelBidResponse{}, nil
}

// Borrow handles MsgBorrow
func (m *MsgServer) Borrow(ctx context.Context, msg *types.MsgBorrow) (_ *types.MsgBorrowResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgBorrow, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses(
		"borrower", msg.Borrower,
		"lender", msg.Lender,
		"deposit_account", msg.DepositAccount,
		"bid_account", msg.BidAccount,
	)
	if err != nil {
		return nil, err
	}
	res, err := m.keeper.Borrow(ctx, addrs[0], addrs[1], msg.Mint, addrs[2], addrs[3], msg.Amount)
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordBorrow(msg.Mint, msg.Amount, res.BorrowedAmount)
	return &types.MsgBorrowResponse{BorrowedAmount: res.BorrowedAmount, ExpiredAt: res.ExpiredAt}, nil
}

// Repay handles MsgRepay
func (m *MsgServer) Repay(ctx context.Context, msg *types.MsgRepay) (_ *types.MsgRepayResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgRepay, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses("borrower", msg.Borrower, "deposit_account", msg.DepositAccount)
	if err != nil {
		return nil, err
	}
	res, err := m.keeper.Repay(ctx, addrs[0], msg.Mint, addrs[1])
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordRepay(msg.Mint, res.LenderIncome, res.Fee)
	return &types.MsgRepayResponse{RepayedAmount: res.RepayedAmount, Fee: res.Fee}, nil
}

// Liquidate handles MsgLiquidate
func (m *MsgServer) Liquidate(ctx context.Context, msg *types.MsgLiquidate) (_ *types.MsgLiquidateResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgLiquidate, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses(
		"lender", msg.Lender,
		"borrower", msg.Borrower,
		"deposit_account", msg.DepositAccount,
	)
	if err != nil {
		return nil, err
	}
	withdrawable, err := m.keeper.Liquidate(ctx, addrs[0], addrs[1], msg.Mint, addrs[2])
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordLiquidation(msg.Mint, withdrawable)
	return &types.MsgLiquidateResponse{Withdrawable: withdrawable}, nil
}

// WithdrawLockedAsset handles MsgWithdrawLockedAsset
func (m *MsgServer) WithdrawLockedAsset(ctx context.Context, msg *types.MsgWithdrawLockedAsset) (_ *types.MsgWithdrawLockedAssetResponse, err error) {
	defer func(t *metrics.Timer) { observe(types.TypeMsgWithdrawLockedAsset, t, err) }(metrics.NewTimer())

	addrs, err := parseAddresses(
		"lender", msg.Lender,
		"borrower", msg.Borrower,
		"deposit_account", msg.DepositAccount,
	)
	if err != nil {
		return nil, err
	}
	amount, err := m.keeper.WithdrawLockedAsset(ctx, addrs[0], addrs[1], msg.Mint, addrs[2])
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordSettlement()
	return &types.MsgWithdrawLockedAssetResponse{Amount: amount}, nil
}
