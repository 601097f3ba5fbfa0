package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TokenAccount identifies the balance of one mint held by one owner
type TokenAccount struct {
	Owner sdk.AccAddress
	Mint  string
}

// Mint describes a token type
type Mint struct {
	Denom    string
	Supply   uint64
	Decimals uint32
}

// TokenLedger defines the expected token ledger. Transfer succeeds when authority
// owns the source account or holds a sufficient allowance on it; derived
// authorities must carry a valid derivation proof.
type TokenLedger interface {
	GetMint(ctx context.Context, denom string) (Mint, error)
	HasAccount(ctx context.Context, account TokenAccount) bool
	CreateAccount(ctx context.Context, account TokenAccount) error
	Transfer(ctx context.Context, from, to TokenAccount, authority Authority, amount uint64) error
	Approve(ctx context.Context, owner TokenAccount, delegate sdk.AccAddress, amount uint64) error
	Revoke(ctx context.Context, owner TokenAccount) error
}
