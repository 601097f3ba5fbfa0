package keeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openalpha/liqz/x/liqz/types"
)

const loanPrice = 1_000_000

func TestDepositAndWithdrawNFT(t *testing.T) {
	env := setupPool(t)
	id := []byte("deposit-withdraw")

	env.resetEvents()
	incentive, err := env.keeper.DepositNFT(env.ctx, borrowerAddr, nftMint, depositAddr(id), id)
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000), incentive)

	require.Equal(t, uint64(1), env.balance(borrowerAddr, nftMint))
	require.Equal(t, uint64(1), env.balance(env.pool, nftMint))
	require.Equal(t, incentive, env.balance(borrowerAddr, rewardMint))
	require.Equal(t, types.LoanStatusPending, env.deposit(t, id).Status)
	require.Equal(t, "6465706f7369742d7769746864726177", env.eventAttr(types.EventTypeNFTDeposited, types.AttributeKeyDepositID))

	env.resetEvents()
	require.NoError(t, env.keeper.WithdrawNFT(env.ctx, borrowerAddr, nftMint, depositAddr(id)))
	require.Equal(t, uint64(2), env.balance(borrowerAddr, nftMint))
	require.Equal(t, uint64(0), env.balance(env.pool, nftMint))
	require.Equal(t, types.LoanStatusWithdrawn, env.deposit(t, id).Status)
	require.True(t, env.hasEvent(types.EventTypeNFTWithdrawn))

	// the incentive is kept
	require.Equal(t, incentive, env.balance(borrowerAddr, rewardMint))

	err = env.keeper.WithdrawNFT(env.ctx, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrNFTAlreadyWithdrawn)

	// a deposit id is never reusable
	_, err = env.keeper.DepositNFT(env.ctx, borrowerAddr, nftMint, depositAddr(id), id)
	require.ErrorIs(t, err, types.ErrLoanAlreadyExist)
}

func TestDepositNFTRejections(t *testing.T) {
	id := []byte("deposit-rejected")

	t.Run("address mismatch", func(t *testing.T) {
		env := setupPool(t)
		_, err := env.keeper.DepositNFT(env.ctx, borrowerAddr, nftMint, strangerAddr, id)
		require.ErrorIs(t, err, types.ErrDepositAddressMismatch)
	})

	t.Run("id too long", func(t *testing.T) {
		env := setupPool(t)
		long := make([]byte, types.MaxDepositIDLen+1)
		_, err := env.keeper.DepositNFT(env.ctx, borrowerAddr, nftMint, strangerAddr, long)
		require.ErrorIs(t, err, types.ErrDepositIDTooLong)
	})

	t.Run("fungible collateral", func(t *testing.T) {
		env := setupPool(t)
		addr, _ := types.DepositAddress("ufungible", borrowerAddr, id)
		_, err := env.keeper.DepositNFT(env.ctx, borrowerAddr, "ufungible", addr, id)
		require.ErrorIs(t, err, types.ErrCollateralNotNFT)
	})

	t.Run("no nft held", func(t *testing.T) {
		env := setupPool(t)
		_, err := env.keeper.DepositNFT(env.ctx, strangerAddr, nftMint, depositAddr(id), id)
		require.ErrorIs(t, err, types.ErrDepositAddressMismatch)

		addr, _ := types.DepositAddress(nftMint, strangerAddr, id)
		_, err = env.keeper.DepositNFT(env.ctx, strangerAddr, nftMint, addr, id)
		require.Error(t, err)
		require.False(t, env.keeper.HasDeposit(env.ctx, addr))
		require.Equal(t, uint64(0), env.balance(strangerAddr, rewardMint))
	})

	t.Run("empty reward reserve rolls back collateral", func(t *testing.T) {
		env := setupKeeper(t)
		_, err := env.keeper.Initialize(env.ctx, ownerAddr, env.pool, rewardMint, creditMint, currencyMint)
		require.NoError(t, err)
		env.ledger.fund(env.ctx, borrowerAddr, nftMint, 1)

		env.resetEvents()
		_, err = env.keeper.DepositNFT(env.ctx, borrowerAddr, nftMint, depositAddr(id), id)
		require.Error(t, err)
		require.Equal(t, uint64(1), env.balance(borrowerAddr, nftMint))
		require.Equal(t, uint64(0), env.balance(env.pool, nftMint))
		require.False(t, env.keeper.HasDeposit(env.ctx, depositAddr(id)))
		require.False(t, env.hasEvent(types.EventTypeNFTDeposited))
	})
}

func TestBorrow(t *testing.T) {
	env := setupPool(t)
	id := []byte("loan-borrow")

	env.resetEvents()
	res := env.openLoan(t, id, loanPrice)
	require.Equal(t, uint64(900_000), res.BorrowedAmount)
	require.Equal(t, genesisTime.Unix()+types.DefaultMaxLoanDuration, res.ExpiredAt)

	// lender funds the full amount, borrower receives the mortgage share
	require.Equal(t, uint64(1_000_000), env.balance(lenderAddr, currencyMint))
	require.Equal(t, uint64(1_100_000), env.balance(borrowerAddr, currencyMint))
	require.Equal(t, uint64(100_000), env.balance(env.pool, currencyMint))
	require.Equal(t, uint64(900_000), env.balance(lenderAddr, creditMint))
	require.Equal(t, uint64(100_000), env.balance(env.pool, creditMint))

	d := env.deposit(t, id)
	require.Equal(t, types.LoanStatusActive, d.Status)
	require.Equal(t, &types.ActiveLoan{
		TotalAmount:    loanPrice,
		BorrowedAmount: 900_000,
		StartedAt:      genesisTime.Unix(),
		ExpiredAt:      res.ExpiredAt,
		Lender:         lenderAddr,
	}, d.Active)

	bid, err := env.keeper.GetBid(env.ctx, bidAddr())
	require.NoError(t, err)
	require.Equal(t, &types.Bid{}, bid)

	allowance, _ := env.ledger.allowance(env.ctx, types.TokenAccount{Owner: lenderAddr, Mint: currencyMint})
	require.Equal(t, uint64(0), allowance.Amount)

	require.Equal(t, "900000", env.eventAttr(types.EventTypeBorrowed, types.AttributeKeyAmount))
	require.Equal(t, "2592000", env.eventAttr(types.EventTypeBorrowed, types.AttributeKeyLength))

	require.NoError(t, env.keeper.PlaceBid(env.ctx, lenderAddr, nftMint, bidAddr(), loanPrice, 1))
	_, err = env.keeper.Borrow(env.ctx, borrowerAddr, lenderAddr, nftMint, depositAddr(id), bidAddr(), loanPrice)
	require.ErrorIs(t, err, types.ErrBorrowAlreadyStarted)
}

func TestBorrowRejections(t *testing.T) {
	id := []byte("loan-rejected")

	prepare := func(t *testing.T) *testEnv {
		env := setupPool(t)
		_, err := env.keeper.DepositNFT(env.ctx, borrowerAddr, nftMint, depositAddr(id), id)
		require.NoError(t, err)
		require.NoError(t, env.keeper.PlaceBid(env.ctx, lenderAddr, nftMint, bidAddr(), 10, 1))
		return env
	}

	t.Run("amount above bid", func(t *testing.T) {
		env := prepare(t)
		_, err := env.keeper.Borrow(env.ctx, borrowerAddr, lenderAddr, nftMint, depositAddr(id), bidAddr(), 11)
		require.ErrorIs(t, err, types.ErrNFTBorrowExceedBidAmount)
	})

	t.Run("bid address mismatch", func(t *testing.T) {
		env := prepare(t)
		_, err := env.keeper.Borrow(env.ctx, borrowerAddr, lenderAddr, nftMint, depositAddr(id), strangerAddr, 10)
		require.ErrorIs(t, err, types.ErrBidAddressMismatch)
	})

	t.Run("deposit address mismatch", func(t *testing.T) {
		env := prepare(t)
		_, err := env.keeper.Borrow(env.ctx, strangerAddr, lenderAddr, nftMint, depositAddr(id), bidAddr(), 10)
		require.ErrorIs(t, err, types.ErrDepositAddressMismatch)
	})

	t.Run("borrowed amount rounds to zero", func(t *testing.T) {
		env := prepare(t)
		_, err := env.keeper.Borrow(env.ctx, borrowerAddr, lenderAddr, nftMint, depositAddr(id), bidAddr(), 1)
		require.ErrorIs(t, err, types.ErrBorrowedAmountTooSmall)
	})

	t.Run("zero mortgage rate", func(t *testing.T) {
		env := prepare(t)
		zero := uint64(0)
		_, err := env.keeper.ChangeLoanSettings(env.ctx, ownerAddr, env.pool, types.LoanSettings{MortgageRate: &zero})
		require.NoError(t, err)
		_, err = env.keeper.Borrow(env.ctx, borrowerAddr, lenderAddr, nftMint, depositAddr(id), bidAddr(), 10)
		require.ErrorIs(t, err, types.ErrBorrowedAmountTooSmall)
	})

	t.Run("exhausted bid", func(t *testing.T) {
		env := prepare(t)
		require.NoError(t, env.keeper.CancelBid(env.ctx, lenderAddr, nftMint, bidAddr(), false))
		_, err := env.keeper.Borrow(env.ctx, borrowerAddr, lenderAddr, nftMint, depositAddr(id), bidAddr(), 0)
		require.ErrorIs(t, err, types.ErrBorrowedAmountTooSmall)
	})
}

func TestBorrowIsAtomic(t *testing.T) {
	env := setupKeeper(t)
	_, err := env.keeper.Initialize(env.ctx, ownerAddr, env.pool, rewardMint, creditMint, currencyMint)
	require.NoError(t, err)
	env.ledger.fund(env.ctx, env.pool, rewardMint, 1_000_000_000)
	env.ledger.fund(env.ctx, borrowerAddr, nftMint, 1)
	env.ledger.fund(env.ctx, borrowerAddr, currencyMint, 0)
	env.ledger.fund(env.ctx, lenderAddr, currencyMint, loanPrice)
	env.ledger.fund(env.ctx, lenderAddr, creditMint, 0)

	id := []byte("loan-atomic")
	_, err = env.keeper.DepositNFT(env.ctx, borrowerAddr, nftMint, depositAddr(id), id)
	require.NoError(t, err)
	require.NoError(t, env.keeper.PlaceBid(env.ctx, lenderAddr, nftMint, bidAddr(), loanPrice, 1))

	// the pool holds no credit tokens, so the last transfer fails after the
	// currency has already moved inside the branch
	env.resetEvents()
	_, err = env.keeper.Borrow(env.ctx, borrowerAddr, lenderAddr, nftMint, depositAddr(id), bidAddr(), loanPrice)
	require.Error(t, err)

	require.Equal(t, uint64(loanPrice), env.balance(lenderAddr, currencyMint))
	require.Equal(t, uint64(0), env.balance(borrowerAddr, currencyMint))
	require.Equal(t, uint64(0), env.balance(env.pool, currencyMint))
	require.Equal(t, types.LoanStatusPending, env.deposit(t, id).Status)
	bid, err := env.keeper.GetBid(env.ctx, bidAddr())
	require.NoError(t, err)
	require.Equal(t, &types.Bid{Price: loanPrice, Qty: 1}, bid)
	allowance, _ := env.ledger.allowance(env.ctx, types.TokenAccount{Owner: lenderAddr, Mint: currencyMint})
	require.Equal(t, uint64(loanPrice), allowance.Amount)
	require.Empty(t, env.ctx.EventManager().Events())
}

func TestRepayAndWithdrawLockedAsset(t *testing.T) {
	env := setupPool(t)
	id := []byte("loan-repay")
	env.openLoan(t, id, loanPrice)

	env.advance(24 * time.Hour)
	env.resetEvents()
	res, err := env.keeper.Repay(env.ctx, borrowerAddr, nftMint, depositAddr(id))
	require.NoError(t, err)

	// 900000 * 1% over one day = 9000 interest, 5% of it is the service fee
	require.Equal(t, &RepayResult{RepayedAmount: 1_008_550, Fee: 450, LenderIncome: 8_550}, res)
	require.Equal(t, uint64(91_000), env.balance(borrowerAddr, currencyMint))
	require.Equal(t, uint64(450), env.balance(ownerAddr, currencyMint))
	require.Equal(t, uint64(1_108_550), env.balance(env.pool, currencyMint))
	require.Equal(t, uint64(2), env.balance(borrowerAddr, nftMint))
	require.Equal(t, uint64(0), env.balance(env.pool, nftMint))

	d := env.deposit(t, id)
	require.Equal(t, types.LoanStatusRepayed, d.Status)
	require.Equal(t, &types.RepayedLoan{
		TaiRequiredToUnlock: 900_000,
		LenderWithdrawable:  1_008_550,
		Lender:              lenderAddr,
	}, d.Repayed)
	require.Equal(t, "8550", env.eventAttr(types.EventTypeRepayed, types.AttributeKeyLenderIncome))
	require.Equal(t, "450", env.eventAttr(types.EventTypeRepayed, types.AttributeKeyFee))

	_, err = env.keeper.Repay(env.ctx, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrLoanNotActive)
	_, err = env.keeper.Liquidate(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrLoanNotActive)
	_, err = env.keeper.WithdrawLockedAsset(env.ctx, strangerAddr, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrNotAuthorized)

	env.resetEvents()
	amount, err := env.keeper.WithdrawLockedAsset(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.NoError(t, err)
	require.Equal(t, uint64(1_008_550), amount)
	require.Equal(t, uint64(2_008_550), env.balance(lenderAddr, currencyMint))
	require.Equal(t, uint64(0), env.balance(lenderAddr, creditMint))
	require.Equal(t, uint64(100_000), env.balance(env.pool, currencyMint))
	require.Equal(t, uint64(1_000_000), env.balance(env.pool, creditMint))
	require.Equal(t, types.LoanStatusCleared, env.deposit(t, id).Status)
	require.Equal(t, "1008550", env.eventAttr(types.EventTypeWithdrawLockedAsset, types.AttributeKeyAmount))

	_, err = env.keeper.WithdrawLockedAsset(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrLoanNotActive)
}

func TestRepayAfterExpiry(t *testing.T) {
	env := setupPool(t)
	id := []byte("loan-late")
	env.openLoan(t, id, loanPrice)

	// repaying exactly at expiry is still allowed
	env.advance(time.Duration(types.DefaultMaxLoanDuration) * time.Second)
	env.ledger.fund(env.ctx, borrowerAddr, currencyMint, 1_000_000)
	res, err := env.keeper.Repay(env.ctx, borrowerAddr, nftMint, depositAddr(id))
	require.NoError(t, err)
	require.Equal(t, &RepayResult{RepayedAmount: 1_256_500, Fee: 13_500, LenderIncome: 256_500}, res)

	env = setupPool(t)
	env.openLoan(t, id, loanPrice)
	env.advance(time.Duration(types.DefaultMaxLoanDuration+1) * time.Second)
	_, err = env.keeper.Repay(env.ctx, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrLoanLiquidated)
	require.Equal(t, types.LoanStatusActive, env.deposit(t, id).Status)
}

func TestRepayFeeAboveInterestOverflows(t *testing.T) {
	env := setupPool(t)
	id := []byte("loan-fee-overflow")
	env.openLoan(t, id, loanPrice)

	// a fee of twice the interest leaves the lender a negative income
	feeRate := uint64(20_000)
	_, err := env.keeper.ChangeLoanSettings(env.ctx, ownerAddr, env.pool, types.LoanSettings{ServiceFeeRate: &feeRate})
	require.NoError(t, err)

	env.advance(24 * time.Hour)
	before := env.balance(borrowerAddr, currencyMint)
	_, err = env.keeper.Repay(env.ctx, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
	require.Equal(t, types.LoanStatusActive, env.deposit(t, id).Status)
	require.Equal(t, before, env.balance(borrowerAddr, currencyMint))
	require.Equal(t, uint64(1), env.balance(env.pool, nftMint))
}

func TestActiveLoanLocksCollateral(t *testing.T) {
	env := setupPool(t)
	id := []byte("loan-locked")
	env.openLoan(t, id, loanPrice)

	err := env.keeper.WithdrawNFT(env.ctx, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrNFTLocked)

	_, err = env.keeper.WithdrawLockedAsset(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrLoanNotRepayed)
}

func TestLiquidate(t *testing.T) {
	env := setupPool(t)
	id := []byte("loan-liquidate")
	env.openLoan(t, id, loanPrice)

	_, err := env.keeper.Liquidate(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrLoanNotExpired)

	env.advance(time.Duration(types.DefaultMaxLoanDuration+1) * time.Second)

	_, err = env.keeper.Liquidate(env.ctx, strangerAddr, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrNotAuthorized)

	env.resetEvents()
	withdrawable, err := env.keeper.Liquidate(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.NoError(t, err)

	// the fee is charged over the full loan duration: 270000 interest, 13500 fee
	require.Equal(t, uint64(86_500), withdrawable)
	require.Equal(t, uint64(13_500), env.balance(ownerAddr, currencyMint))
	require.Equal(t, uint64(1_086_500), env.balance(lenderAddr, currencyMint))
	require.Equal(t, uint64(0), env.balance(env.pool, currencyMint))
	require.Equal(t, uint64(0), env.balance(lenderAddr, creditMint))
	require.Equal(t, uint64(1), env.balance(lenderAddr, nftMint))
	require.Equal(t, uint64(0), env.balance(env.pool, nftMint))
	require.Equal(t, types.LoanStatusLiquidated, env.deposit(t, id).Status)
	require.Equal(t, depositAddr(id).String(), env.eventAttr(types.EventTypeLiquidated, types.AttributeKeyLoanID))
	require.Equal(t, "86500", env.eventAttr(types.EventTypeLiquidated, types.AttributeKeyWithdrawable))

	_, err = env.keeper.Repay(env.ctx, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrLoanNotActive)
	_, err = env.keeper.Liquidate(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrLoanNotActive)
	err = env.keeper.WithdrawNFT(env.ctx, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrNFTLocked)
	_, err = env.keeper.WithdrawLockedAsset(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrLoanNotActive)
}

func TestLiquidateFullMortgageOverflows(t *testing.T) {
	env := setupPool(t)
	mortgage := uint64(types.BasisPoints)
	_, err := env.keeper.ChangeLoanSettings(env.ctx, ownerAddr, env.pool, types.LoanSettings{MortgageRate: &mortgage})
	require.NoError(t, err)

	// lending the full price leaves no margin to cover the service fee
	id := []byte("loan-no-margin")
	res := env.openLoan(t, id, loanPrice)
	require.Equal(t, uint64(loanPrice), res.BorrowedAmount)

	env.advance(time.Duration(types.DefaultMaxLoanDuration+1) * time.Second)
	credit := env.balance(lenderAddr, creditMint)
	_, err = env.keeper.Liquidate(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
	require.Equal(t, types.LoanStatusActive, env.deposit(t, id).Status)
	require.Equal(t, credit, env.balance(lenderAddr, creditMint))
	require.Equal(t, uint64(0), env.balance(lenderAddr, nftMint))
}

func TestLiquidateSmallLoan(t *testing.T) {
	env := setupPool(t)
	id := []byte("loan-small")
	res := env.openLoan(t, id, 10)
	require.Equal(t, uint64(9), res.BorrowedAmount)

	env.advance(time.Duration(types.DefaultMaxLoanDuration+1) * time.Second)
	withdrawable, err := env.keeper.Liquidate(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr(id))
	require.NoError(t, err)
	require.Equal(t, uint64(1), withdrawable)
}

func TestLoanOpsOnMissingDeposit(t *testing.T) {
	env := setupPool(t)
	addr := depositAddr([]byte("missing"))

	err := env.keeper.WithdrawNFT(env.ctx, borrowerAddr, nftMint, addr)
	require.ErrorIs(t, err, types.ErrDepositNotFound)
	_, err = env.keeper.Repay(env.ctx, borrowerAddr, nftMint, addr)
	require.ErrorIs(t, err, types.ErrDepositNotFound)
	_, err = env.keeper.Liquidate(env.ctx, lenderAddr, borrowerAddr, nftMint, addr)
	require.ErrorIs(t, err, types.ErrDepositNotFound)
	_, err = env.keeper.WithdrawLockedAsset(env.ctx, lenderAddr, borrowerAddr, nftMint, addr)
	require.ErrorIs(t, err, types.ErrDepositNotFound)
}

func TestQueryServer(t *testing.T) {
	env := setupPool(t)
	q := NewQueryServerImpl(env.keeper)

	addr, pool, err := q.Pool(env.ctx)
	require.NoError(t, err)
	require.True(t, addr.Equals(env.pool))
	require.True(t, pool.Owner.Equals(ownerAddr))

	env.openLoan(t, []byte("q-active"), loanPrice)
	_, err = env.keeper.DepositNFT(env.ctx, borrowerAddr, nftMint, depositAddr([]byte("q-pending")), []byte("q-pending"))
	require.NoError(t, err)

	got, d, err := q.Deposit(env.ctx, nftMint, borrowerAddr, []byte("q-active"))
	require.NoError(t, err)
	require.True(t, got.Equals(depositAddr([]byte("q-active"))))
	require.Equal(t, types.LoanStatusActive, d.Status)

	_, bid, err := q.Bid(env.ctx, nftMint, lenderAddr)
	require.NoError(t, err)
	require.Equal(t, uint64(0), bid.Qty)

	require.Equal(t, []string{depositAddr([]byte("q-active")).String()}, q.DepositsByStatus(env.ctx, types.LoanStatusActive))
	require.Equal(t, []string{depositAddr([]byte("q-pending")).String()}, q.DepositsByStatus(env.ctx, types.LoanStatusPending))
	require.Empty(t, q.DepositsByStatus(env.ctx, types.LoanStatusCleared))

	_, _, err = q.Deposit(env.ctx, nftMint, borrowerAddr, make([]byte, types.MaxDepositIDLen+1))
	require.ErrorIs(t, err, types.ErrDepositIDTooLong)
}

func TestExpiredLoans(t *testing.T) {
	env := setupPool(t)
	env.ledger.fund(env.ctx, borrowerAddr, nftMint, 1)
	q := NewQueryServerImpl(env.keeper)

	_, ok := q.NextExpiry(env.ctx)
	require.False(t, ok)

	env.openLoan(t, []byte("first"), 100)
	env.advance(time.Hour)
	env.openLoan(t, []byte("second"), 100)
	env.advance(time.Hour)
	env.openLoan(t, []byte("third"), 100)

	next, ok := q.NextExpiry(env.ctx)
	require.True(t, ok)
	require.Equal(t, genesisTime.Unix()+types.DefaultMaxLoanDuration, next)
	require.Empty(t, q.ExpiredLoans(env.ctx, nil))

	// one second past the second expiry, the third loan is still running
	env.ctx = env.ctx.WithBlockTime(genesisTime.Add(time.Hour + time.Duration(types.DefaultMaxLoanDuration+1)*time.Second))
	expired := q.ExpiredLoans(env.ctx, nil)
	require.Len(t, expired, 2)
	require.Equal(t, depositAddr([]byte("first")).String(), expired[0].DepositAccount)
	require.Equal(t, depositAddr([]byte("second")).String(), expired[1].DepositAccount)
	require.Equal(t, uint64(90), expired[0].BorrowedAmount)
	require.Equal(t, lenderAddr.String(), expired[0].Lender)

	require.Len(t, q.ExpiredLoans(env.ctx, lenderAddr), 2)
	require.Empty(t, q.ExpiredLoans(env.ctx, strangerAddr))

	_, err := env.keeper.Liquidate(env.ctx, lenderAddr, borrowerAddr, nftMint, depositAddr([]byte("first")))
	require.NoError(t, err)
	expired = q.ExpiredLoans(env.ctx, nil)
	require.Len(t, expired, 1)
	require.Equal(t, depositAddr([]byte("second")).String(), expired[0].DepositAccount)
}
