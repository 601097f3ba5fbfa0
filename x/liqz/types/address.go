package types

import (
	"crypto/sha256"

	"cosmossdk.io/errors"
	"filippo.io/edwards25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// Domain tags for derived record addresses
const (
	PoolSeed    = "liqzNFTPool"
	BidSeed     = "liqzNFTBid"
	DepositSeed = "liqzNFTDeposit"
)

const (
	// MaxSeeds is the maximum number of seeds, bump included
	MaxSeeds = 16
	// MaxSeedLen fits the longest denom the bank module accepts
	MaxSeedLen = 128

	derivationMarker = "ProgramDerivedAddress"
)

// ProgramID is the identity every derived address is bound to
var ProgramID = authtypes.NewModuleAddress(ModuleName)

// Authority is the identity authorizing a token movement. Seeds are set only for
// derived identities and must re-derive Address.
type Authority struct {
	Address sdk.AccAddress
	Seeds   [][]byte
}

// WalletAuthority is an externally signed identity
func WalletAuthority(addr sdk.AccAddress) Authority {
	return Authority{Address: addr}
}

// IsDerived reports whether the authority carries a derivation proof
func (a Authority) IsDerived() bool {
	return len(a.Seeds) > 0
}

// Verify checks the derivation proof of a derived authority
func (a Authority) Verify() error {
	if !a.IsDerived() {
		return nil
	}
	addr, err := CreateProgramAddress(a.Seeds...)
	if err != nil {
		return err
	}
	if !addr.Equals(a.Address) {
		return errors.Wrapf(ErrInvalidSeeds, "seeds derive %s, not %s", addr, a.Address)
	}
	return nil
}

// CreateProgramAddress hashes the seeds into an address bound to ProgramID.
// Candidates that are valid ed25519 points are rejected.
func CreateProgramAddress(seeds ...[]byte) (sdk.AccAddress, error) {
	if len(seeds) > MaxSeeds {
		return nil, errors.Wrapf(ErrMaxSeedLengthExceeded, "%d seeds", len(seeds))
	}
	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return nil, errors.Wrapf(ErrMaxSeedLengthExceeded, "seed of %d bytes", len(seed))
		}
		h.Write([]byte{byte(len(seed))})
		h.Write(seed)
	}
	h.Write(ProgramID)
	h.Write([]byte(derivationMarker))
	sum := h.Sum(nil)

	if _, err := new(edwards25519.Point).SetBytes(sum); err == nil {
		return nil, ErrInvalidSeeds
	}
	return sdk.AccAddress(sum), nil
}

// FindProgramAddress searches bumps from 255 down and returns the first
// off-curve address together with its bump.
func FindProgramAddress(seeds ...[]byte) (sdk.AccAddress, uint8) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		addr, err := CreateProgramAddress(withBump...)
		if err == nil {
			return addr, uint8(bump)
		}
	}
	panic("liqz: no viable bump for seeds")
}

func poolSeeds() [][]byte {
	return [][]byte{[]byte(PoolSeed)}
}

func bidSeeds(mint string, lender sdk.AccAddress) [][]byte {
	return [][]byte{[]byte(BidSeed), []byte(mint), lender}
}

func depositSeeds(mint string, borrower sdk.AccAddress, depositID []byte) [][]byte {
	return [][]byte{[]byte(DepositSeed), []byte(mint), borrower, depositID}
}

// PoolAddress derives the singleton pool address
func PoolAddress() (sdk.AccAddress, uint8) {
	return FindProgramAddress(poolSeeds()...)
}

// BidAddress derives the bid address of a lender for a collateral mint
func BidAddress(mint string, lender sdk.AccAddress) (sdk.AccAddress, uint8) {
	return FindProgramAddress(bidSeeds(mint, lender)...)
}

// DepositAddress derives the deposit address of a borrower's deposit
func DepositAddress(mint string, borrower sdk.AccAddress, depositID []byte) (sdk.AccAddress, uint8) {
	return FindProgramAddress(depositSeeds(mint, borrower, depositID)...)
}

// PoolSigner returns the pool's signing proof, given the bump stored in the pool record
func PoolSigner(bump uint8) (Authority, error) {
	seeds := append(poolSeeds(), []byte{bump})
	addr, err := CreateProgramAddress(seeds...)
	if err != nil {
		return Authority{}, err
	}
	return Authority{Address: addr, Seeds: seeds}, nil
}

// VerifyPoolAddress checks candidate against the canonical pool address
func VerifyPoolAddress(candidate sdk.AccAddress) (uint8, error) {
	expected, bump := PoolAddress()
	if !expected.Equals(candidate) {
		return 0, errors.Wrapf(ErrPoolAddressMismatch, "expected %s, got %s", expected, candidate)
	}
	return bump, nil
}

// VerifyBidAddress checks candidate against the bid address of (mint, lender)
func VerifyBidAddress(mint string, lender, candidate sdk.AccAddress) error {
	expected, _ := BidAddress(mint, lender)
	if !expected.Equals(candidate) {
		return errors.Wrapf(ErrBidAddressMismatch, "expected %s, got %s", expected, candidate)
	}
	return nil
}

// VerifyDepositAddress checks candidate against the deposit address of (mint, borrower, depositID)
func VerifyDepositAddress(mint string, borrower sdk.AccAddress, depositID []byte, candidate sdk.AccAddress) error {
	if len(depositID) > MaxDepositIDLen {
		return errors.Wrapf(ErrDepositIDTooLong, "%d bytes", len(depositID))
	}
	expected, _ := DepositAddress(mint, borrower, depositID)
	if !expected.Equals(candidate) {
		return errors.Wrapf(ErrDepositAddressMismatch, "expected %s, got %s", expected, candidate)
	}
	return nil
}
