package types

import (
	"cosmossdk.io/errors"
)

// Protocol error codes. Codes are part of the external interface and never change.
var (
	ErrNotAuthorized             = errors.Register(ModuleName, 100, "not authorized")
	ErrPoolAddressMismatch       = errors.Register(ModuleName, 101, "pool address not correct")
	ErrListingAddressMismatch    = errors.Register(ModuleName, 102, "nft listing address not correct")
	ErrBidAddressMismatch        = errors.Register(ModuleName, 103, "nft bid address not correct")
	ErrDepositAddressMismatch    = errors.Register(ModuleName, 104, "nft loan address not correct")
	ErrNFTOverdrawn              = errors.Register(ModuleName, 105, "nft overdrawn")
	ErrEmptyNFTReserve           = errors.Register(ModuleName, 106, "empty nft reserve")
	ErrNFTOvertrade              = errors.Register(ModuleName, 107, "nft overtrade")
	ErrNFTBidQtyLargerThanSupply = errors.Register(ModuleName, 108, "bid quantity larger than nft supply")
	ErrNFTBorrowExceedBidAmount  = errors.Register(ModuleName, 109, "borrow amount exceeds bid price")
	ErrBorrowAlreadyStarted      = errors.Register(ModuleName, 110, "borrow already started")
	ErrLoanLiquidated            = errors.Register(ModuleName, 111, "loan liquidated")
	ErrLoanNotExpired            = errors.Register(ModuleName, 112, "loan not expired")
	ErrLoanAlreadyExist          = errors.Register(ModuleName, 113, "loan already exists")
	ErrLoanFinalized             = errors.Register(ModuleName, 114, "loan finalized")
	ErrLoanNotActive             = errors.Register(ModuleName, 115, "loan not active")
	ErrNotEnoughNFTInPool        = errors.Register(ModuleName, 116, "not enough nft in pool")
	ErrNFTAlreadyWithdrawn       = errors.Register(ModuleName, 117, "nft already withdrawn")
	ErrNFTLocked                 = errors.Register(ModuleName, 118, "nft locked")
	ErrBorrowedAmountTooSmall    = errors.Register(ModuleName, 119, "borrowed amount too small")
	ErrLoanNotRepayed            = errors.Register(ModuleName, 120, "loan not repayed")

	// Host-side errors
	ErrArithmeticOverflow    = errors.Register(ModuleName, 200, "arithmetic overflow")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 201, "pool already initialized")
	ErrPoolNotFound          = errors.Register(ModuleName, 202, "pool not found")
	ErrBidNotFound           = errors.Register(ModuleName, 203, "bid not found")
	ErrDepositNotFound       = errors.Register(ModuleName, 204, "deposit not found")
	ErrCollateralNotNFT      = errors.Register(ModuleName, 205, "collateral mint must have zero decimals")
	ErrMintMismatch          = errors.Register(ModuleName, 206, "token account mint mismatch")
	ErrInvalidSeeds          = errors.Register(ModuleName, 207, "invalid seeds, address must fall off the curve")
	ErrMaxSeedLengthExceeded = errors.Register(ModuleName, 208, "max seed length exceeded")
	ErrInvalidRecord         = errors.Register(ModuleName, 209, "invalid record data")
	ErrDepositIDTooLong      = errors.Register(ModuleName, 210, "deposit id too long")
	ErrInvalidAddress        = errors.Register(ModuleName, 211, "invalid address")
)

// codeTable maps every registered code back to its error
var codeTable = []*errors.Error{
	ErrNotAuthorized,
	ErrPoolAddressMismatch,
	ErrListingAddressMismatch,
	ErrBidAddressMismatch,
	ErrDepositAddressMismatch,
	ErrNFTOverdrawn,
	ErrEmptyNFTReserve,
	ErrNFTOvertrade,
	ErrNFTBidQtyLargerThanSupply,
	ErrNFTBorrowExceedBidAmount,
	ErrBorrowAlreadyStarted,
	ErrLoanLiquidated,
	ErrLoanNotExpired,
	ErrLoanAlreadyExist,
	ErrLoanFinalized,
	ErrLoanNotActive,
	ErrNotEnoughNFTInPool,
	ErrNFTAlreadyWithdrawn,
	ErrNFTLocked,
	ErrBorrowedAmountTooSmall,
	ErrLoanNotRepayed,
	ErrArithmeticOverflow,
	ErrPoolAlreadyExists,
	ErrPoolNotFound,
	ErrBidNotFound,
	ErrDepositNotFound,
	ErrCollateralNotNFT,
	ErrMintMismatch,
	ErrInvalidSeeds,
	ErrMaxSeedLengthExceeded,
	ErrInvalidRecord,
	ErrDepositIDTooLong,
	ErrInvalidAddress,
}

// ErrorFromCode returns the registered error for a numeric code, or false if the
// code does not belong to this module.
func ErrorFromCode(code uint32) (*errors.Error, bool) {
	for _, e := range codeTable {
		if e.ABCICode() == code {
			return e, true
		}
	}
	return nil, false
}

// Codes lists every registered code in ascending order
func Codes() []uint32 {
	codes := make([]uint32, len(codeTable))
	for i, e := range codeTable {
		codes[i] = e.ABCICode()
	}
	return codes
}
