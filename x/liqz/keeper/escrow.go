package keeper

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

// escrow coordinates token movements into and out of the accounts the pool owns
type escrow struct {
	k      *Keeper
	ctx    sdk.Context
	pool   *types.Pool
	signer types.Authority
}

func (k *Keeper) newEscrow(ctx sdk.Context, poolAddr sdk.AccAddress, pool *types.Pool) (*escrow, error) {
	signer, err := types.PoolSigner(pool.Bump)
	if err != nil {
		return nil, err
	}
	if !signer.Address.Equals(poolAddr) {
		return nil, errors.Wrapf(types.ErrPoolAddressMismatch, "bump %d derives %s", pool.Bump, signer.Address)
	}
	return &escrow{k: k, ctx: ctx, pool: pool, signer: signer}, nil
}

func (e *escrow) poolAccount(mint string) types.TokenAccount {
	return types.TokenAccount{Owner: e.signer.Address, Mint: mint}
}

// ensureAccount creates the token account if it does not exist yet
func (e *escrow) ensureAccount(owner sdk.AccAddress, mint string) error {
	acct := types.TokenAccount{Owner: owner, Mint: mint}
	if e.k.ledger.HasAccount(e.ctx, acct) {
		return nil
	}
	return e.k.ledger.CreateAccount(e.ctx, acct)
}

func (e *escrow) ensurePoolAccount(mint string) error {
	return e.ensureAccount(e.signer.Address, mint)
}

// checkCollateralMint rejects collateral that shares a mint with the pool's fungible tokens
func (e *escrow) checkCollateralMint(mint string) error {
	switch mint {
	case e.pool.RewardMint, e.pool.CreditMint, e.pool.CurrencyMint:
		return errors.Wrapf(types.ErrMintMismatch, "%s is a pool token", mint)
	}
	return nil
}

func (e *escrow) transfer(from, to types.TokenAccount, authority types.Authority, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if from.Mint != to.Mint {
		return errors.Wrapf(types.ErrMintMismatch, "%s to %s", from.Mint, to.Mint)
	}
	return e.k.ledger.Transfer(e.ctx, from, to, authority, amount)
}

// collectCollateral moves one NFT from its owner into pool escrow
func (e *escrow) collectCollateral(owner sdk.AccAddress, mint string) error {
	return e.transfer(types.TokenAccount{Owner: owner, Mint: mint}, e.poolAccount(mint), types.WalletAuthority(owner), 1)
}

// releaseCollateral moves one NFT out of pool escrow
func (e *escrow) releaseCollateral(to sdk.AccAddress, mint string) error {
	return e.transfer(e.poolAccount(mint), types.TokenAccount{Owner: to, Mint: mint}, e.signer, 1)
}

// payFromPool pays out of pool escrow, signed by the pool
func (e *escrow) payFromPool(mint string, to sdk.AccAddress, amount uint64) error {
	return e.transfer(e.poolAccount(mint), types.TokenAccount{Owner: to, Mint: mint}, e.signer, amount)
}

// payToPool moves funds from a signing wallet into pool escrow
func (e *escrow) payToPool(mint string, from sdk.AccAddress, amount uint64) error {
	return e.transfer(types.TokenAccount{Owner: from, Mint: mint}, e.poolAccount(mint), types.WalletAuthority(from), amount)
}

// pullToPool moves funds into pool escrow using the allowance the owner granted the pool
func (e *escrow) pullToPool(mint string, from sdk.AccAddress, amount uint64) error {
	return e.transfer(types.TokenAccount{Owner: from, Mint: mint}, e.poolAccount(mint), e.signer, amount)
}

// payFromWallet moves funds between two user accounts, signed by the sender
func (e *escrow) payFromWallet(mint string, from, to sdk.AccAddress, amount uint64) error {
	return e.transfer(types.TokenAccount{Owner: from, Mint: mint}, types.TokenAccount{Owner: to, Mint: mint}, types.WalletAuthority(from), amount)
}

// approvePool lets the pool pull up to amount from the owner's account
func (e *escrow) approvePool(owner sdk.AccAddress, mint string, amount uint64) error {
	return e.k.ledger.Approve(e.ctx, types.TokenAccount{Owner: owner, Mint: mint}, e.signer.Address, amount)
}

// revokeAllowance drops any delegate on the owner's account
func (e *escrow) revokeAllowance(owner sdk.AccAddress, mint string) error {
	return e.k.ledger.Revoke(e.ctx, types.TokenAccount{Owner: owner, Mint: mint})
}
