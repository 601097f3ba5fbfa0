package types

import (
	"math"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxDepositIDLen bounds the caller-chosen deposit discriminator
const MaxDepositIDLen = 32

// LoanStatus is the lifecycle position of a deposited NFT
type LoanStatus uint8

const (
	LoanStatusPending    LoanStatus = iota // NFT in escrow, no loan yet
	LoanStatusActive                       // Loan outstanding
	LoanStatusRepayed                      // Repaid, lender has not unlocked funds
	LoanStatusWithdrawn                    // NFT returned before any loan
	LoanStatusLiquidated                   // NFT handed to the lender
	LoanStatusCleared                      // Lender unlocked funds after repayment
)

// String returns the string representation of LoanStatus
func (s LoanStatus) String() string {
	switch s {
	case LoanStatusPending:
		return "pending_loan"
	case LoanStatusActive:
		return "loan_active"
	case LoanStatusRepayed:
		return "loan_repayed"
	case LoanStatusWithdrawn:
		return "withdrawn"
	case LoanStatusLiquidated:
		return "loan_liquidated"
	case LoanStatusCleared:
		return "loan_cleared"
	default:
		return "unknown"
	}
}

// ActiveLoan holds the terms of an outstanding loan
type ActiveLoan struct {
	TotalAmount    uint64         `json:"total_amount"`
	BorrowedAmount uint64         `json:"borrowed_amount"`
	StartedAt      int64          `json:"started_at"`
	ExpiredAt      int64          `json:"expired_at"`
	Lender         sdk.AccAddress `json:"lender"`
}

// RepayedLoan holds what the lender settles after repayment
type RepayedLoan struct {
	TaiRequiredToUnlock uint64         `json:"tai_required_to_unlock"`
	LenderWithdrawable  uint64         `json:"lender_withdrawable"`
	Lender              sdk.AccAddress `json:"lender"`
}

// NFTDeposit is one escrowed NFT and its loan lifecycle. Active is set only in
// LoanStatusActive and Repayed only in LoanStatusRepayed.
type NFTDeposit struct {
	DepositID []byte       `json:"deposit_id"`
	Status    LoanStatus   `json:"status"`
	Active    *ActiveLoan  `json:"active,omitempty"`
	Repayed   *RepayedLoan `json:"repayed,omitempty"`
}

// NewNFTDeposit returns a deposit awaiting a loan
func NewNFTDeposit(depositID []byte) (*NFTDeposit, error) {
	if len(depositID) > MaxDepositIDLen {
		return nil, errors.Wrapf(ErrDepositIDTooLong, "%d bytes", len(depositID))
	}
	return &NFTDeposit{DepositID: append([]byte(nil), depositID...), Status: LoanStatusPending}, nil
}

func (d *NFTDeposit) setStatus(s LoanStatus) {
	d.Status = s
	d.Active = nil
	d.Repayed = nil
}

// Withdraw returns a never-borrowed NFT to its owner
func (d *NFTDeposit) Withdraw() error {
	switch d.Status {
	case LoanStatusPending:
		d.setStatus(LoanStatusWithdrawn)
		return nil
	case LoanStatusActive, LoanStatusLiquidated:
		return errors.Wrap(ErrNFTLocked, d.Status.String())
	default:
		return errors.Wrap(ErrNFTAlreadyWithdrawn, d.Status.String())
	}
}

// StartBorrow opens a loan that expires maxDuration seconds after now
func (d *NFTDeposit) StartBorrow(lender sdk.AccAddress, total, borrowed uint64, now, maxDuration int64) error {
	if d.Status != LoanStatusPending {
		return errors.Wrap(ErrBorrowAlreadyStarted, d.Status.String())
	}
	if (maxDuration > 0 && now > math.MaxInt64-maxDuration) || (maxDuration < 0 && now < math.MinInt64-maxDuration) {
		return errors.Wrapf(ErrArithmeticOverflow, "%d + %d", now, maxDuration)
	}
	loan := &ActiveLoan{
		TotalAmount:    total,
		BorrowedAmount: borrowed,
		StartedAt:      now,
		ExpiredAt:      now + maxDuration,
		Lender:         lender,
	}
	d.setStatus(LoanStatusActive)
	d.Active = loan
	return nil
}

// ActiveState returns the outstanding loan
func (d *NFTDeposit) ActiveState() (*ActiveLoan, error) {
	if d.Status != LoanStatusActive || d.Active == nil {
		return nil, errors.Wrap(ErrLoanNotActive, d.Status.String())
	}
	return d.Active, nil
}

// RepayedState returns the settlement owed to the lender
func (d *NFTDeposit) RepayedState() (*RepayedLoan, error) {
	switch {
	case d.Status == LoanStatusRepayed && d.Repayed != nil:
		return d.Repayed, nil
	case d.Status == LoanStatusActive:
		return nil, errors.Wrap(ErrLoanNotRepayed, d.Status.String())
	default:
		return nil, errors.Wrap(ErrLoanNotActive, d.Status.String())
	}
}

// Repay closes the active loan, keeping its lender on the settlement
func (d *NFTDeposit) Repay(taiRequiredToUnlock, lenderWithdrawable uint64) error {
	loan, err := d.ActiveState()
	if err != nil {
		return err
	}
	lender := loan.Lender
	d.setStatus(LoanStatusRepayed)
	d.Repayed = &RepayedLoan{
		TaiRequiredToUnlock: taiRequiredToUnlock,
		LenderWithdrawable:  lenderWithdrawable,
		Lender:              lender,
	}
	return nil
}

// Liquidate closes an active loan in the lender's favour
func (d *NFTDeposit) Liquidate() error {
	if _, err := d.ActiveState(); err != nil {
		return err
	}
	d.setStatus(LoanStatusLiquidated)
	return nil
}

// Clear finalizes a repaid loan once the lender settled
func (d *NFTDeposit) Clear() error {
	if d.Status != LoanStatusRepayed {
		return errors.Wrap(ErrLoanNotRepayed, d.Status.String())
	}
	d.setStatus(LoanStatusCleared)
	return nil
}
