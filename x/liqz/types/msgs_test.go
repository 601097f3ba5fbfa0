package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMsgValidateBasic(t *testing.T) {
	borrower := testBorrower.String()
	lender := testLender.String()
	deposit, _ := DepositAddress(testMint, testBorrower, []byte("id"))

	tests := []struct {
		name string
		msg  interface{ ValidateBasic() error }
		err  error
	}{
		{"initialize", &MsgInitialize{Owner: lender, PoolAccount: lender, RewardMint: "uliz", CreditMint: "utai", CurrencyMint: "udai"}, nil},
		{"initialize bad owner", &MsgInitialize{Owner: "cosmos1bad", PoolAccount: lender, RewardMint: "uliz", CreditMint: "utai", CurrencyMint: "udai"}, ErrInvalidAddress},
		{"initialize bad mint", &MsgInitialize{Owner: lender, PoolAccount: lender, RewardMint: "uliz", CreditMint: "1", CurrencyMint: "udai"}, ErrMintMismatch},
		{"change settings", &MsgChangeLoanSettings{Owner: lender, PoolAccount: lender}, nil},
		{"deposit", &MsgDepositNFT{Borrower: borrower, Mint: testMint, DepositAccount: deposit.String(), DepositID: "6964"}, nil},
		{"deposit bad id", &MsgDepositNFT{Borrower: borrower, Mint: testMint, DepositAccount: deposit.String(), DepositID: "xyz"}, ErrInvalidRecord},
		{"withdraw empty mint", &MsgWithdrawNFT{Borrower: borrower, DepositAccount: deposit.String()}, ErrMintMismatch},
		{"place bid", &MsgPlaceBid{Lender: lender, Mint: testMint, BidAccount: lender, Price: 1, Qty: 1}, nil},
		{"cancel bid bad account", &MsgCancelBid{Lender: lender, Mint: testMint, BidAccount: ""}, ErrInvalidAddress},
		{"borrow", &MsgBorrow{Borrower: borrower, Lender: lender, Mint: testMint, DepositAccount: deposit.String(), BidAccount: lender, Amount: 10}, nil},
		{"repay", &MsgRepay{Borrower: borrower, Mint: testMint, DepositAccount: deposit.String()}, nil},
		{"liquidate missing borrower", &MsgLiquidate{Lender: lender, Mint: testMint, DepositAccount: deposit.String()}, ErrInvalidAddress},
		{"withdraw locked asset", &MsgWithdrawLockedAsset{Lender: lender, Borrower: borrower, Mint: testMint, DepositAccount: deposit.String()}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecodeDepositID(t *testing.T) {
	id, err := DecodeDepositID("")
	require.NoError(t, err)
	require.Empty(t, id)

	id, err = DecodeDepositID("00ff")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff}, id)

	_, err = DecodeDepositID("00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff00")
	require.ErrorIs(t, err, ErrDepositIDTooLong)
}

func TestMsgSigners(t *testing.T) {
	msg := &MsgBorrow{Borrower: testBorrower.String(), Lender: testLender.String()}
	signers := msg.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, testBorrower, signers[0])

	liq := &MsgLiquidate{Lender: testLender.String(), Borrower: testBorrower.String()}
	require.Equal(t, testLender, liq.GetSigners()[0])
}
