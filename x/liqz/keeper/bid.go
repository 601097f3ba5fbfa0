package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

// ============ Bid Operations ============

// ensureBid verifies bidAccount and allocates an empty bid there if none exists
func (k *Keeper) ensureBid(ctx sdk.Context, mint string, lender, bidAccount sdk.AccAddress) (*types.Bid, error) {
	if err := types.VerifyBidAddress(mint, lender, bidAccount); err != nil {
		return nil, err
	}
	if !k.HasBid(ctx, bidAccount) {
		bid := &types.Bid{}
		k.SetBid(ctx, bidAccount, bid)
		return bid, nil
	}
	return k.GetBid(ctx, bidAccount)
}

// PlaceBid records a lender's offer to fund qty loans of up to price against
// mint, and approves the pool to draw price*qty from the lender's currency account.
// A zero quantity is a no-op.
func (k *Keeper) PlaceBid(
	goCtx context.Context,
	lender sdk.AccAddress,
	mint string,
	bidAccount sdk.AccAddress,
	price, qty uint64,
) error {
	if qty == 0 {
		return nil
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		poolAddr, pool, err := k.CanonicalPool(ctx)
		if err != nil {
			return err
		}
		esc, err := k.newEscrow(ctx, poolAddr, pool)
		if err != nil {
			return err
		}
		if err := esc.checkCollateralMint(mint); err != nil {
			return err
		}
		collateral, err := k.ledger.GetMint(ctx, mint)
		if err != nil {
			return err
		}
		if collateral.Decimals != 0 {
			return errors.Wrapf(types.ErrCollateralNotNFT, "%s has %d decimals", mint, collateral.Decimals)
		}
		if qty > collateral.Supply {
			return errors.Wrapf(types.ErrNFTBidQtyLargerThanSupply, "qty %d, supply %d", qty, collateral.Supply)
		}
		allowance, err := types.MulChecked(price, qty)
		if err != nil {
			return err
		}

		bid, err := k.ensureBid(ctx, mint, lender, bidAccount)
		if err != nil {
			return err
		}
		if err := esc.approvePool(lender, pool.CurrencyMint, allowance); err != nil {
			return err
		}
		bid.Set(price, qty)
		k.SetBid(ctx, bidAccount, bid)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBidPlaced,
				sdk.NewAttribute(types.AttributeKeyMint, mint),
				sdk.NewAttribute(types.AttributeKeyLender, lender.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(price, 10)),
				sdk.NewAttribute(types.AttributeKeyQty, strconv.FormatUint(qty, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return err
	}

	k.logger.Info("bid placed",
		"lender", lender.String(),
		"mint", mint,
		"price", price,
		"qty", qty,
	)
	return nil
}

// CancelBid clears the lender's offer. With revoke set the pool's allowance on
// the lender's currency account is dropped as well.
func (k *Keeper) CancelBid(
	goCtx context.Context,
	lender sdk.AccAddress,
	mint string,
	bidAccount sdk.AccAddress,
	revoke bool,
) error {
	ctx := sdk.UnwrapSDKContext(goCtx)

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		if err := types.VerifyBidAddress(mint, lender, bidAccount); err != nil {
			return err
		}
		bid, err := k.GetBid(ctx, bidAccount)
		if err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBidCancelled,
				sdk.NewAttribute(types.AttributeKeyMint, mint),
				sdk.NewAttribute(types.AttributeKeyLender, lender.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(bid.Price, 10)),
				sdk.NewAttribute(types.AttributeKeyQty, strconv.FormatUint(bid.Qty, 10)),
			),
		)

		bid.Cancel()
		k.SetBid(ctx, bidAccount, bid)

		if !revoke {
			return nil
		}
		poolAddr, pool, err := k.CanonicalPool(ctx)
		if err != nil {
			return err
		}
		esc, err := k.newEscrow(ctx, poolAddr, pool)
		if err != nil {
			return err
		}
		return esc.revokeAllowance(lender, pool.CurrencyMint)
	})
	if err != nil {
		return err
	}

	k.logger.Info("bid cancelled", "lender", lender.String(), "mint", mint, "revoke", revoke)
	return nil
}
