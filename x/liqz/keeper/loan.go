package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

// ============ Loan Operations ============

// BorrowResult describes an opened loan
type BorrowResult struct {
	BorrowedAmount uint64
	ExpiredAt      int64
}

// Borrow opens a loan of amount against the borrower's deposit, funded by the
// lender's bid. The pool pulls amount from the lender, pays the mortgage share to
// the borrower and mints the same share of credit tokens to the lender.
func (k *Keeper) Borrow(
	goCtx context.Context,
	borrower, lender sdk.AccAddress,
	mint string,
	depositAccount, bidAccount sdk.AccAddress,
	amount uint64,
) (*BorrowResult, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var res *BorrowResult
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		esc, err := k.collateralEscrow(ctx, mint)
		if err != nil {
			return err
		}
		pool := esc.pool

		if err := types.VerifyBidAddress(mint, lender, bidAccount); err != nil {
			return err
		}
		bid, err := k.GetBid(ctx, bidAccount)
		if err != nil {
			return err
		}
		if amount > bid.Price {
			return errors.Wrapf(types.ErrNFTBorrowExceedBidAmount, "amount %d, bid price %d", amount, bid.Price)
		}
		deposit, err := k.loadDeposit(ctx, mint, borrower, depositAccount)
		if err != nil {
			return err
		}

		borrowed, err := pool.BorrowedAmount(amount)
		if err != nil {
			return err
		}
		if borrowed == 0 {
			return errors.Wrapf(types.ErrBorrowedAmountTooSmall, "amount %d at mortgage rate %d", amount, pool.MortgageRate)
		}
		now := ctx.BlockTime().Unix()
		if err := deposit.StartBorrow(lender, amount, borrowed, now, pool.MaxLoanDuration); err != nil {
			return err
		}
		if err := bid.Trade(1); err != nil {
			return err
		}

		if err := esc.pullToPool(pool.CurrencyMint, lender, amount); err != nil {
			return err
		}
		if err := esc.payFromPool(pool.CurrencyMint, borrower, borrowed); err != nil {
			return err
		}
		if err := esc.payFromPool(pool.CreditMint, lender, borrowed); err != nil {
			return err
		}

		k.SetBid(ctx, bidAccount, bid)
		if err := k.SetDeposit(ctx, depositAccount, deposit); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBorrowed,
				sdk.NewAttribute(types.AttributeKeyBorrower, borrower.String()),
				sdk.NewAttribute(types.AttributeKeyLender, lender.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(borrowed, 10)),
				sdk.NewAttribute(types.AttributeKeyLength, strconv.FormatInt(pool.MaxLoanDuration, 10)),
			),
		)
		res = &BorrowResult{BorrowedAmount: borrowed, ExpiredAt: deposit.Active.ExpiredAt}
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("loan started",
		"borrower", borrower.String(),
		"lender", lender.String(),
		"mint", mint,
		"total", amount,
		"borrowed", res.BorrowedAmount,
		"expired_at", res.ExpiredAt,
	)
	return res, nil
}

// RepayResult describes a repayment
type RepayResult struct {
	RepayedAmount uint64
	Fee           uint64
	LenderIncome  uint64
}

// Repay closes an unexpired loan. The borrower pays the service fee to the pool
// owner and the principal plus lender income into pool escrow, where it stays
// until the lender settles with WithdrawLockedAsset. The NFT goes back to the borrower.
func (k *Keeper) Repay(
	goCtx context.Context,
	borrower sdk.AccAddress,
	mint string,
	depositAccount sdk.AccAddress,
) (*RepayResult, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var res *RepayResult
	var lender sdk.AccAddress
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		esc, err := k.collateralEscrow(ctx, mint)
		if err != nil {
			return err
		}
		pool := esc.pool

		deposit, err := k.loadDeposit(ctx, mint, borrower, depositAccount)
		if err != nil {
			return err
		}
		loan, err := deposit.ActiveState()
		if err != nil {
			return err
		}
		now := ctx.BlockTime().Unix()
		if now > loan.ExpiredAt {
			return errors.Wrapf(types.ErrLoanLiquidated, "expired at %d, now %d", loan.ExpiredAt, now)
		}
		duration := now - loan.StartedAt
		if duration < 0 {
			duration = 0
		}
		interest, fee, err := pool.CalculateInterestAndFee(loan.BorrowedAmount, duration)
		if err != nil {
			return err
		}
		income, err := types.SubChecked(interest, fee)
		if err != nil {
			return err
		}
		repayed, err := types.AddChecked(loan.TotalAmount, income)
		if err != nil {
			return err
		}
		lender = loan.Lender
		borrowed := loan.BorrowedAmount

		if err := esc.payFromWallet(pool.CurrencyMint, borrower, pool.Owner, fee); err != nil {
			return err
		}
		// held in pool escrow until the lender calls WithdrawLockedAsset
		if err := esc.payToPool(pool.CurrencyMint, borrower, repayed); err != nil {
			return err
		}
		if err := esc.releaseCollateral(borrower, mint); err != nil {
			return err
		}

		if err := deposit.Repay(borrowed, repayed); err != nil {
			return err
		}
		if err := k.SetDeposit(ctx, depositAccount, deposit); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRepayed,
				sdk.NewAttribute(types.AttributeKeyBorrower, borrower.String()),
				sdk.NewAttribute(types.AttributeKeyLender, lender.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(repayed, 10)),
				sdk.NewAttribute(types.AttributeKeyFee, strconv.FormatUint(fee, 10)),
				sdk.NewAttribute(types.AttributeKeyLenderIncome, strconv.FormatUint(income, 10)),
			),
		)
		res = &RepayResult{RepayedAmount: repayed, Fee: fee, LenderIncome: income}
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("loan repayed",
		"borrower", borrower.String(),
		"lender", lender.String(),
		"repayed", res.RepayedAmount,
		"fee", res.Fee,
	)
	return res, nil
}

// Liquidate hands the collateral of an expired loan to its lender. The lender
// returns the credit tokens and receives the margin left after the service fee,
// which is charged over the full maximum loan duration.
func (k *Keeper) Liquidate(
	goCtx context.Context,
	lender, borrower sdk.AccAddress,
	mint string,
	depositAccount sdk.AccAddress,
) (uint64, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var withdrawable uint64
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		esc, err := k.collateralEscrow(ctx, mint)
		if err != nil {
			return err
		}
		pool := esc.pool

		deposit, err := k.loadDeposit(ctx, mint, borrower, depositAccount)
		if err != nil {
			return err
		}
		loan, err := deposit.ActiveState()
		if err != nil {
			return err
		}
		if !loan.Lender.Equals(lender) {
			return errors.Wrapf(types.ErrNotAuthorized, "%s is not the lender", lender)
		}
		now := ctx.BlockTime().Unix()
		if now <= loan.ExpiredAt {
			return errors.Wrapf(types.ErrLoanNotExpired, "expires at %d, now %d", loan.ExpiredAt, now)
		}

		if err := esc.payToPool(pool.CreditMint, lender, loan.BorrowedAmount); err != nil {
			return err
		}
		_, fee, err := pool.CalculateInterestAndFee(loan.BorrowedAmount, pool.MaxLoanDuration)
		if err != nil {
			return err
		}
		margin, err := types.SubChecked(loan.TotalAmount, loan.BorrowedAmount)
		if err != nil {
			return err
		}
		if withdrawable, err = types.SubChecked(margin, fee); err != nil {
			return err
		}

		if err := esc.payFromPool(pool.CurrencyMint, pool.Owner, fee); err != nil {
			return err
		}
		if err := esc.payFromPool(pool.CurrencyMint, lender, withdrawable); err != nil {
			return err
		}
		if err := esc.ensureAccount(lender, mint); err != nil {
			return err
		}
		if err := esc.releaseCollateral(lender, mint); err != nil {
			return err
		}

		if err := deposit.Liquidate(); err != nil {
			return err
		}
		if err := k.SetDeposit(ctx, depositAccount, deposit); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidated,
				sdk.NewAttribute(types.AttributeKeyLender, lender.String()),
				sdk.NewAttribute(types.AttributeKeyLoanID, depositAccount.String()),
				sdk.NewAttribute(types.AttributeKeyWithdrawable, strconv.FormatUint(withdrawable, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return 0, err
	}

	k.logger.Info("loan liquidated",
		"lender", lender.String(),
		"deposit", depositAccount.String(),
		"withdrawable", withdrawable,
	)
	return withdrawable, nil
}

// WithdrawLockedAsset settles a repaid loan: the lender returns the credit tokens
// and collects the repayment held in pool escrow
func (k *Keeper) WithdrawLockedAsset(
	goCtx context.Context,
	lender, borrower sdk.AccAddress,
	mint string,
	depositAccount sdk.AccAddress,
) (uint64, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var amount uint64
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		esc, err := k.collateralEscrow(ctx, mint)
		if err != nil {
			return err
		}
		pool := esc.pool

		deposit, err := k.loadDeposit(ctx, mint, borrower, depositAccount)
		if err != nil {
			return err
		}
		repay, err := deposit.RepayedState()
		if err != nil {
			return err
		}
		if !repay.Lender.Equals(lender) {
			return errors.Wrapf(types.ErrNotAuthorized, "%s is not the lender", lender)
		}
		amount = repay.LenderWithdrawable

		if err := esc.payToPool(pool.CreditMint, lender, repay.TaiRequiredToUnlock); err != nil {
			return err
		}
		if err := esc.payFromPool(pool.CurrencyMint, lender, amount); err != nil {
			return err
		}

		if err := deposit.Clear(); err != nil {
			return err
		}
		if err := k.SetDeposit(ctx, depositAccount, deposit); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeWithdrawLockedAsset,
				sdk.NewAttribute(types.AttributeKeyLender, lender.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(amount, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return 0, err
	}

	k.logger.Info("locked asset withdrawn", "lender", lender.String(), "amount", amount)
	return amount, nil
}
