package app

import (
	"context"
	"encoding/json"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	liqztypes "github.com/openalpha/liqz/x/liqz/types"
)

var allowanceKeyPrefix = []byte{0x01}

// ledgerAccountKeeper is the subset of the auth keeper the token ledger uses
type ledgerAccountKeeper interface {
	HasAccount(ctx context.Context, addr sdk.AccAddress) bool
	NewAccountWithAddress(ctx context.Context, addr sdk.AccAddress) sdk.AccountI
	SetAccount(ctx context.Context, acc sdk.AccountI)
}

// ledgerBankKeeper is the subset of the bank keeper the token ledger uses
type ledgerBankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetSupply(ctx context.Context, denom string) sdk.Coin
	GetDenomMetaData(ctx context.Context, denom string) (banktypes.Metadata, bool)
}

// allowance is the single delegate approved on one (owner, mint) balance
type allowance struct {
	Delegate sdk.AccAddress `json:"delegate"`
	Amount   uint64         `json:"amount"`
}

// bankTokenLedger implements the liqz TokenLedger on the bank module. Allowances
// live in their own store so they roll back with the rest of a failed operation.
type bankTokenLedger struct {
	accountKeeper ledgerAccountKeeper
	bankKeeper    ledgerBankKeeper
	storeKey      storetypes.StoreKey
}

var _ liqztypes.TokenLedger = (*bankTokenLedger)(nil)

func newBankTokenLedger(ak ledgerAccountKeeper, bk ledgerBankKeeper, storeKey storetypes.StoreKey) *bankTokenLedger {
	return &bankTokenLedger{accountKeeper: ak, bankKeeper: bk, storeKey: storeKey}
}

func (l *bankTokenLedger) store(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(l.storeKey)
}

func allowanceKey(owner liqztypes.TokenAccount) []byte {
	key := append([]byte{}, allowanceKeyPrefix...)
	key = append(key, byte(len(owner.Owner)))
	key = append(key, owner.Owner...)
	return append(key, []byte(owner.Mint)...)
}

func (l *bankTokenLedger) getAllowance(ctx context.Context, owner liqztypes.TokenAccount) (allowance, bool) {
	bz := l.store(ctx).Get(allowanceKey(owner))
	if bz == nil {
		return allowance{}, false
	}
	var a allowance
	if err := json.Unmarshal(bz, &a); err != nil {
		return allowance{}, false
	}
	return a, true
}

func (l *bankTokenLedger) setAllowance(ctx context.Context, owner liqztypes.TokenAccount, a allowance) {
	bz, _ := json.Marshal(a)
	l.store(ctx).Set(allowanceKey(owner), bz)
}

// GetMint reads supply and display decimals of a denom
func (l *bankTokenLedger) GetMint(ctx context.Context, denom string) (liqztypes.Mint, error) {
	supply := l.bankKeeper.GetSupply(ctx, denom)
	if !supply.Amount.IsUint64() {
		return liqztypes.Mint{}, errors.Wrapf(liqztypes.ErrArithmeticOverflow, "supply of %s", denom)
	}
	mint := liqztypes.Mint{Denom: denom, Supply: supply.Amount.Uint64()}
	if md, ok := l.bankKeeper.GetDenomMetaData(ctx, denom); ok {
		for _, unit := range md.DenomUnits {
			if unit.Denom == md.Display {
				mint.Decimals = unit.Exponent
			}
		}
	}
	return mint, nil
}

// HasAccount reports whether the owner has an account on chain
func (l *bankTokenLedger) HasAccount(ctx context.Context, account liqztypes.TokenAccount) bool {
	return l.accountKeeper.HasAccount(ctx, account.Owner)
}

// CreateAccount creates the owner's account if missing
func (l *bankTokenLedger) CreateAccount(ctx context.Context, account liqztypes.TokenAccount) error {
	if l.accountKeeper.HasAccount(ctx, account.Owner) {
		return nil
	}
	l.accountKeeper.SetAccount(ctx, l.accountKeeper.NewAccountWithAddress(ctx, account.Owner))
	return nil
}

// Transfer moves amount of from.Mint when authority owns from or holds enough allowance on it
func (l *bankTokenLedger) Transfer(ctx context.Context, from, to liqztypes.TokenAccount, authority liqztypes.Authority, amount uint64) error {
	if from.Mint != to.Mint {
		return errors.Wrapf(liqztypes.ErrMintMismatch, "%s to %s", from.Mint, to.Mint)
	}
	if err := authority.Verify(); err != nil {
		return err
	}
	if !authority.Address.Equals(from.Owner) {
		a, ok := l.getAllowance(ctx, from)
		if !ok || !a.Delegate.Equals(authority.Address) {
			return errors.Wrapf(sdkerrors.ErrUnauthorized, "%s may not spend %s of %s", authority.Address, from.Mint, from.Owner)
		}
		if a.Amount < amount {
			return errors.Wrapf(sdkerrors.ErrInsufficientFunds, "allowance %d, need %d", a.Amount, amount)
		}
		a.Amount -= amount
		l.setAllowance(ctx, from, a)
	}
	coins := sdk.NewCoins(sdk.NewCoin(from.Mint, math.NewIntFromUint64(amount)))
	return l.bankKeeper.SendCoins(ctx, from.Owner, to.Owner, coins)
}

// Approve replaces the delegate on the owner's balance
func (l *bankTokenLedger) Approve(ctx context.Context, owner liqztypes.TokenAccount, delegate sdk.AccAddress, amount uint64) error {
	l.setAllowance(ctx, owner, allowance{Delegate: delegate, Amount: amount})
	return nil
}

// Revoke removes any delegate on the owner's balance
func (l *bankTokenLedger) Revoke(ctx context.Context, owner liqztypes.TokenAccount) error {
	l.store(ctx).Delete(allowanceKey(owner))
	return nil
}
