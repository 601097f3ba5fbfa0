package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

// ============ Pool Operations ============

// Initialize creates the pool record with default loan settings and provisions
// the pool's reward, credit and currency escrow accounts
func (k *Keeper) Initialize(
	goCtx context.Context,
	owner, poolAccount sdk.AccAddress,
	rewardMint, creditMint, currencyMint string,
) (*types.Pool, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var pool *types.Pool
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		bump, err := types.VerifyPoolAddress(poolAccount)
		if err != nil {
			return err
		}
		if k.HasPool(ctx, poolAccount) {
			return types.ErrPoolAlreadyExists
		}
		reward, err := k.ledger.GetMint(ctx, rewardMint)
		if err != nil {
			return err
		}
		pool, err = types.NewPool(bump, owner, rewardMint, creditMint, currencyMint, reward.Decimals)
		if err != nil {
			return err
		}
		k.SetPool(ctx, poolAccount, pool)

		esc, err := k.newEscrow(ctx, poolAccount, pool)
		if err != nil {
			return err
		}
		for _, mint := range []string{rewardMint, creditMint, currencyMint} {
			if err := esc.ensurePoolAccount(mint); err != nil {
				return err
			}
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeInitialized,
				sdk.NewAttribute(types.AttributeKeyAccount, poolAccount.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("pool initialized",
		"pool", poolAccount.String(),
		"owner", owner.String(),
		"incentive", pool.Incentive,
	)
	return pool, nil
}

// ChangeLoanSettings applies the present fields of settings to the pool. Only the
// pool owner may change settings.
func (k *Keeper) ChangeLoanSettings(
	goCtx context.Context,
	caller, poolAccount sdk.AccAddress,
	settings types.LoanSettings,
) (*types.Pool, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	var pool *types.Pool
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		var err error
		pool, err = k.loadPool(ctx, poolAccount)
		if err != nil {
			return err
		}
		if !pool.Owner.Equals(caller) {
			return errors.Wrapf(types.ErrNotAuthorized, "%s is not the pool owner", caller)
		}
		settings.Apply(pool)
		k.SetPool(ctx, poolAccount, pool)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLoanSettingChanged,
				sdk.NewAttribute(types.AttributeKeyIncentive, strconv.FormatUint(pool.Incentive, 10)),
				sdk.NewAttribute(types.AttributeKeyInterestRate, strconv.FormatUint(pool.InterestRate, 10)),
				sdk.NewAttribute(types.AttributeKeyServiceFeeRate, strconv.FormatUint(pool.ServiceFeeRate, 10)),
				sdk.NewAttribute(types.AttributeKeyMaxLoanDuration, strconv.FormatInt(pool.MaxLoanDuration, 10)),
				sdk.NewAttribute(types.AttributeKeyMortgageRate, strconv.FormatUint(pool.MortgageRate, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("loan settings changed",
		"interest_rate", pool.InterestRate,
		"service_fee_rate", pool.ServiceFeeRate,
		"mortgage_rate", pool.MortgageRate,
		"max_loan_duration", pool.MaxLoanDuration,
	)
	return pool, nil
}

// loadPool verifies poolAccount is the canonical pool address and loads its record
func (k *Keeper) loadPool(ctx sdk.Context, poolAccount sdk.AccAddress) (*types.Pool, error) {
	if _, err := types.VerifyPoolAddress(poolAccount); err != nil {
		return nil, err
	}
	return k.GetPool(ctx, poolAccount)
}

// CanonicalPool loads the pool at its derived address
func (k *Keeper) CanonicalPool(ctx sdk.Context) (sdk.AccAddress, *types.Pool, error) {
	addr, _ := types.PoolAddress()
	pool, err := k.GetPool(ctx, addr)
	if err != nil {
		return nil, nil, err
	}
	return addr, pool, nil
}
