package keeper

import (
	"context"
	"encoding/hex"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

// ============ Deposit Operations ============

// loadDeposit reads the deposit at depositAccount and checks that it derives
// from (mint, borrower) and the deposit id stored in the record
func (k *Keeper) loadDeposit(ctx sdk.Context, mint string, borrower, depositAccount sdk.AccAddress) (*types.NFTDeposit, error) {
	deposit, err := k.GetDeposit(ctx, depositAccount)
	if err != nil {
		return nil, err
	}
	if err := types.VerifyDepositAddress(mint, borrower, deposit.DepositID, depositAccount); err != nil {
		return nil, err
	}
	return deposit, nil
}

// collateralEscrow loads the pool and checks mint can back a loan
func (k *Keeper) collateralEscrow(ctx sdk.Context, mint string) (*escrow, error) {
	poolAddr, pool, err := k.CanonicalPool(ctx)
	if err != nil {
		return nil, err
	}
	esc, err := k.newEscrow(ctx, poolAddr, pool)
	if err != nil {
		return nil, err
	}
	if err := esc.checkCollateralMint(mint); err != nil {
		return nil, err
	}
	return esc, nil
}

// DepositNFT escrows one NFT of mint from the borrower and pays the deposit
// incentive in reward tokens. A deposit record can only ever be created once.
func (k *Keeper) DepositNFT(
	goCtx context.Context,
	borrower sdk.AccAddress,
	mint string,
	depositAccount sdk.AccAddress,
	depositID []byte,
) (uint64, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var incentive uint64
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		esc, err := k.collateralEscrow(ctx, mint)
		if err != nil {
			return err
		}
		collateral, err := k.ledger.GetMint(ctx, mint)
		if err != nil {
			return err
		}
		if collateral.Decimals != 0 {
			return errors.Wrapf(types.ErrCollateralNotNFT, "%s has %d decimals", mint, collateral.Decimals)
		}
		if err := types.VerifyDepositAddress(mint, borrower, depositID, depositAccount); err != nil {
			return err
		}
		if k.HasDeposit(ctx, depositAccount) {
			return errors.Wrapf(types.ErrLoanAlreadyExist, "%s", depositAccount)
		}

		if err := esc.ensurePoolAccount(mint); err != nil {
			return err
		}
		if err := esc.ensureAccount(borrower, esc.pool.RewardMint); err != nil {
			return err
		}
		if err := esc.collectCollateral(borrower, mint); err != nil {
			return err
		}
		incentive = esc.pool.Incentive
		if err := esc.payFromPool(esc.pool.RewardMint, borrower, incentive); err != nil {
			return err
		}

		deposit, err := types.NewNFTDeposit(depositID)
		if err != nil {
			return err
		}
		if err := k.SetDeposit(ctx, depositAccount, deposit); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeNFTDeposited,
				sdk.NewAttribute(types.AttributeKeyMint, mint),
				sdk.NewAttribute(types.AttributeKeyFrom, borrower.String()),
				sdk.NewAttribute(types.AttributeKeyDepositID, hex.EncodeToString(depositID)),
			),
		)
		return nil
	})
	if err != nil {
		return 0, err
	}

	k.logger.Info("nft deposited",
		"borrower", borrower.String(),
		"mint", mint,
		"deposit", depositAccount.String(),
		"incentive", incentive,
	)
	return incentive, nil
}

// WithdrawNFT returns a deposited NFT that never backed a loan
func (k *Keeper) WithdrawNFT(
	goCtx context.Context,
	borrower sdk.AccAddress,
	mint string,
	depositAccount sdk.AccAddress,
) error {
	ctx := sdk.UnwrapSDKContext(goCtx)

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		esc, err := k.collateralEscrow(ctx, mint)
		if err != nil {
			return err
		}
		deposit, err := k.loadDeposit(ctx, mint, borrower, depositAccount)
		if err != nil {
			return err
		}
		if err := deposit.Withdraw(); err != nil {
			return err
		}
		if err := esc.releaseCollateral(borrower, mint); err != nil {
			return err
		}
		if err := k.SetDeposit(ctx, depositAccount, deposit); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeNFTWithdrawn,
				sdk.NewAttribute(types.AttributeKeyMint, mint),
				sdk.NewAttribute(types.AttributeKeyTo, borrower.String()),
			),
		)
		return nil
	})
	if err != nil {
		return err
	}

	k.logger.Info("nft withdrawn", "borrower", borrower.String(), "mint", mint)
	return nil
}
