package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordSizes(t *testing.T) {
	require.Equal(t, 24, BidRecordSize)
	require.Equal(t, 113, DepositRecordSize)
	require.Len(t, MarshalBid(&Bid{Price: 1, Qty: 2}), BidRecordSize)
}

func TestPoolRecordRoundTrip(t *testing.T) {
	p := defaultPool(t)
	got, err := UnmarshalPool(MarshalPool(p))
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestBidRecordRoundTrip(t *testing.T) {
	b := &Bid{Price: 1_000, Qty: 7}
	got, err := UnmarshalBid(MarshalBid(b))
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestDepositRecordRoundTrip(t *testing.T) {
	longLender := bytes.Repeat([]byte{0xab}, MaxRecordAddressLen)
	maxID := bytes.Repeat([]byte{0xcd}, MaxDepositIDLen)

	tests := []struct {
		name    string
		deposit *NFTDeposit
	}{
		{"pending", &NFTDeposit{DepositID: []byte("id"), Status: LoanStatusPending}},
		{"withdrawn", &NFTDeposit{DepositID: []byte("id"), Status: LoanStatusWithdrawn}},
		{"liquidated", &NFTDeposit{DepositID: []byte("id"), Status: LoanStatusLiquidated}},
		{"cleared", &NFTDeposit{DepositID: []byte("id"), Status: LoanStatusCleared}},
		{"active", &NFTDeposit{
			DepositID: []byte("id"),
			Status:    LoanStatusActive,
			Active: &ActiveLoan{
				TotalAmount:    10,
				BorrowedAmount: 9,
				StartedAt:      -5,
				ExpiredAt:      2_592_000,
				Lender:         testLender,
			},
		}},
		{"active at capacity", &NFTDeposit{
			DepositID: maxID,
			Status:    LoanStatusActive,
			Active: &ActiveLoan{
				TotalAmount:    ^uint64(0),
				BorrowedAmount: ^uint64(0),
				StartedAt:      1 << 62,
				ExpiredAt:      1 << 62,
				Lender:         longLender,
			},
		}},
		{"repayed", &NFTDeposit{
			DepositID: []byte("id"),
			Status:    LoanStatusRepayed,
			Repayed:   &RepayedLoan{TaiRequiredToUnlock: 9, LenderWithdrawable: 11, Lender: testLender},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bz, err := MarshalDeposit(tc.deposit)
			require.NoError(t, err)
			require.Len(t, bz, DepositRecordSize)

			got, err := UnmarshalDeposit(bz)
			require.NoError(t, err)
			require.Equal(t, tc.deposit, got)
		})
	}
}

func TestDepositRecordRejections(t *testing.T) {
	_, err := MarshalDeposit(&NFTDeposit{DepositID: make([]byte, MaxDepositIDLen+1)})
	require.ErrorIs(t, err, ErrDepositIDTooLong)

	_, err = MarshalDeposit(&NFTDeposit{Status: LoanStatusActive})
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = MarshalDeposit(&NFTDeposit{
		Status:  LoanStatusRepayed,
		Repayed: &RepayedLoan{Lender: make([]byte, MaxRecordAddressLen+1)},
	})
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, err = MarshalDeposit(&NFTDeposit{Status: LoanStatus(9)})
	require.ErrorIs(t, err, ErrInvalidRecord)

	bz, err := MarshalDeposit(&NFTDeposit{DepositID: []byte("id"), Status: LoanStatusPending})
	require.NoError(t, err)
	// status byte follows the discriminator and the length-prefixed id
	bz[discriminatorLen+4+2] = 9
	_, err = UnmarshalDeposit(bz)
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = UnmarshalDeposit(bz[:discriminatorLen+2])
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestRecordDiscriminators(t *testing.T) {
	_, err := UnmarshalBid(MarshalPool(defaultPool(t)))
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = UnmarshalPool(MarshalBid(&Bid{}))
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = UnmarshalDeposit(nil)
	require.ErrorIs(t, err, ErrInvalidRecord)
}
