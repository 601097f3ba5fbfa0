package types

import (
	"math"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

var testLender = sdk.AccAddress([]byte("lender______________"))

func depositIn(t *testing.T, status LoanStatus) *NFTDeposit {
	t.Helper()
	d, err := NewNFTDeposit([]byte("id"))
	require.NoError(t, err)
	step := func(err error) { require.NoError(t, err) }

	switch status {
	case LoanStatusPending:
	case LoanStatusActive:
		step(d.StartBorrow(testLender, 10, 9, 100, 50))
	case LoanStatusRepayed:
		step(d.StartBorrow(testLender, 10, 9, 100, 50))
		step(d.Repay(9, 10))
	case LoanStatusWithdrawn:
		step(d.Withdraw())
	case LoanStatusLiquidated:
		step(d.StartBorrow(testLender, 10, 9, 100, 50))
		step(d.Liquidate())
	case LoanStatusCleared:
		step(d.StartBorrow(testLender, 10, 9, 100, 50))
		step(d.Repay(9, 10))
		step(d.Clear())
	}
	require.Equal(t, status, d.Status)
	return d
}

var allStatuses = []LoanStatus{
	LoanStatusPending,
	LoanStatusActive,
	LoanStatusRepayed,
	LoanStatusWithdrawn,
	LoanStatusLiquidated,
	LoanStatusCleared,
}

func TestDepositTransitions(t *testing.T) {
	type op struct {
		name  string
		apply func(d *NFTDeposit) error
		// next is the status after success, nil for read-only operations
		next *LoanStatus
		errs map[LoanStatus]error
	}
	status := func(s LoanStatus) *LoanStatus { return &s }

	ops := []op{
		{
			name:  "withdraw",
			apply: func(d *NFTDeposit) error { return d.Withdraw() },
			next:  status(LoanStatusWithdrawn),
			errs: map[LoanStatus]error{
				LoanStatusActive:     ErrNFTLocked,
				LoanStatusLiquidated: ErrNFTLocked,
				LoanStatusRepayed:    ErrNFTAlreadyWithdrawn,
				LoanStatusWithdrawn:  ErrNFTAlreadyWithdrawn,
				LoanStatusCleared:    ErrNFTAlreadyWithdrawn,
			},
		},
		{
			name:  "start borrow",
			apply: func(d *NFTDeposit) error { return d.StartBorrow(testLender, 10, 9, 200, 50) },
			next:  status(LoanStatusActive),
			errs: map[LoanStatus]error{
				LoanStatusActive:     ErrBorrowAlreadyStarted,
				LoanStatusRepayed:    ErrBorrowAlreadyStarted,
				LoanStatusWithdrawn:  ErrBorrowAlreadyStarted,
				LoanStatusLiquidated: ErrBorrowAlreadyStarted,
				LoanStatusCleared:    ErrBorrowAlreadyStarted,
			},
		},
		{
			name:  "repay",
			apply: func(d *NFTDeposit) error { return d.Repay(9, 11) },
			next:  status(LoanStatusRepayed),
			errs: map[LoanStatus]error{
				LoanStatusPending:    ErrLoanNotActive,
				LoanStatusRepayed:    ErrLoanNotActive,
				LoanStatusWithdrawn:  ErrLoanNotActive,
				LoanStatusLiquidated: ErrLoanNotActive,
				LoanStatusCleared:    ErrLoanNotActive,
			},
		},
		{
			name:  "liquidate",
			apply: func(d *NFTDeposit) error { return d.Liquidate() },
			next:  status(LoanStatusLiquidated),
			errs: map[LoanStatus]error{
				LoanStatusPending:    ErrLoanNotActive,
				LoanStatusRepayed:    ErrLoanNotActive,
				LoanStatusWithdrawn:  ErrLoanNotActive,
				LoanStatusLiquidated: ErrLoanNotActive,
				LoanStatusCleared:    ErrLoanNotActive,
			},
		},
		{
			name:  "clear",
			apply: func(d *NFTDeposit) error { return d.Clear() },
			next:  status(LoanStatusCleared),
			errs: map[LoanStatus]error{
				LoanStatusPending:    ErrLoanNotRepayed,
				LoanStatusActive:     ErrLoanNotRepayed,
				LoanStatusWithdrawn:  ErrLoanNotRepayed,
				LoanStatusLiquidated: ErrLoanNotRepayed,
				LoanStatusCleared:    ErrLoanNotRepayed,
			},
		},
		{
			name:  "active state",
			apply: func(d *NFTDeposit) error { _, err := d.ActiveState(); return err },
			errs: map[LoanStatus]error{
				LoanStatusPending:    ErrLoanNotActive,
				LoanStatusRepayed:    ErrLoanNotActive,
				LoanStatusWithdrawn:  ErrLoanNotActive,
				LoanStatusLiquidated: ErrLoanNotActive,
				LoanStatusCleared:    ErrLoanNotActive,
			},
		},
		{
			name:  "repayed state",
			apply: func(d *NFTDeposit) error { _, err := d.RepayedState(); return err },
			errs: map[LoanStatus]error{
				LoanStatusPending:    ErrLoanNotActive,
				LoanStatusActive:     ErrLoanNotRepayed,
				LoanStatusWithdrawn:  ErrLoanNotActive,
				LoanStatusLiquidated: ErrLoanNotActive,
				LoanStatusCleared:    ErrLoanNotActive,
			},
		},
	}

	for _, o := range ops {
		for _, from := range allStatuses {
			t.Run(o.name+"/"+from.String(), func(t *testing.T) {
				d := depositIn(t, from)
				before := *d
				err := o.apply(d)

				if want, ok := o.errs[from]; ok {
					require.ErrorIs(t, err, want)
					require.Equal(t, before, *d)
					return
				}
				require.NoError(t, err)
				if o.next == nil {
					require.Equal(t, before, *d)
				} else {
					require.Equal(t, *o.next, d.Status)
				}
			})
		}
	}
}

func TestDepositPayloads(t *testing.T) {
	d := depositIn(t, LoanStatusActive)
	require.Equal(t, &ActiveLoan{
		TotalAmount:    10,
		BorrowedAmount: 9,
		StartedAt:      100,
		ExpiredAt:      150,
		Lender:         testLender,
	}, d.Active)
	require.Nil(t, d.Repayed)

	require.NoError(t, d.Repay(9, 12))
	require.Nil(t, d.Active)
	require.Equal(t, &RepayedLoan{TaiRequiredToUnlock: 9, LenderWithdrawable: 12, Lender: testLender}, d.Repayed)

	require.NoError(t, d.Clear())
	require.Nil(t, d.Active)
	require.Nil(t, d.Repayed)
	require.Equal(t, []byte("id"), d.DepositID)
}

func TestStartBorrowOverflow(t *testing.T) {
	d := depositIn(t, LoanStatusPending)
	err := d.StartBorrow(testLender, 10, 9, math.MaxInt64-10, 11)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	require.Equal(t, LoanStatusPending, d.Status)
	require.Nil(t, d.Active)
}

func TestNewNFTDeposit(t *testing.T) {
	_, err := NewNFTDeposit(make([]byte, MaxDepositIDLen+1))
	require.ErrorIs(t, err, ErrDepositIDTooLong)

	id := make([]byte, MaxDepositIDLen)
	d, err := NewNFTDeposit(id)
	require.NoError(t, err)
	id[0] = 1
	require.Zero(t, d.DepositID[0])
}

func TestLoanStatusString(t *testing.T) {
	require.Equal(t, "pending_loan", LoanStatusPending.String())
	require.Equal(t, "loan_cleared", LoanStatusCleared.String())
	require.Equal(t, "unknown", LoanStatus(42).String())
}
