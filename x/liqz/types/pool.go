package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	SecondsPerDay = 86400
	// BasisPoints is the denominator of every rate
	BasisPoints = 10000

	DefaultIncentiveUnits  = 100
	DefaultMaxLoanDuration = 30 * SecondsPerDay
	DefaultServiceFeeRate  = 500
	DefaultInterestRate    = 100
	DefaultMortgageRate    = 9000
)

// Pool is the singleton protocol configuration
type Pool struct {
	Bump            uint8          `json:"bump"`
	Owner           sdk.AccAddress `json:"owner"`
	RewardMint      string         `json:"reward_mint"`
	CreditMint      string         `json:"credit_mint"`
	CurrencyMint    string         `json:"currency_mint"`
	Incentive       uint64         `json:"incentive"`
	MaxLoanDuration int64          `json:"max_loan_duration"`
	ServiceFeeRate  uint64         `json:"service_fee_rate"`
	InterestRate    uint64         `json:"interest_rate"`
	MortgageRate    uint64         `json:"mortgage_rate"`
}

// NewPool returns a pool with default loan settings. The deposit incentive is
// 100 whole reward tokens at the reward mint's decimals.
func NewPool(bump uint8, owner sdk.AccAddress, rewardMint, creditMint, currencyMint string, rewardDecimals uint32) (*Pool, error) {
	scale := math.NewInt(10)
	incentive := math.NewInt(DefaultIncentiveUnits)
	for i := uint32(0); i < rewardDecimals; i++ {
		incentive = incentive.Mul(scale)
		if !incentive.IsUint64() {
			return nil, errors.Wrapf(ErrArithmeticOverflow, "incentive at %d decimals", rewardDecimals)
		}
	}
	return &Pool{
		Bump:            bump,
		Owner:           owner,
		RewardMint:      rewardMint,
		CreditMint:      creditMint,
		CurrencyMint:    currencyMint,
		Incentive:       incentive.Uint64(),
		MaxLoanDuration: DefaultMaxLoanDuration,
		ServiceFeeRate:  DefaultServiceFeeRate,
		InterestRate:    DefaultInterestRate,
		MortgageRate:    DefaultMortgageRate,
	}, nil
}

// LoanSettings holds optional pool parameter updates. Nil fields are left unchanged.
type LoanSettings struct {
	Incentive       *uint64 `json:"incentive,omitempty"`
	InterestRate    *uint64 `json:"interest_rate,omitempty"`
	ServiceFeeRate  *uint64 `json:"service_fee_rate,omitempty"`
	MaxLoanDuration *int64  `json:"max_loan_duration,omitempty"`
	MortgageRate    *uint64 `json:"mortgage_rate,omitempty"`
}

// Apply writes the present fields into the pool
func (s LoanSettings) Apply(p *Pool) {
	if s.Incentive != nil {
		p.Incentive = *s.Incentive
	}
	if s.InterestRate != nil {
		p.InterestRate = *s.InterestRate
	}
	if s.ServiceFeeRate != nil {
		p.ServiceFeeRate = *s.ServiceFeeRate
	}
	if s.MaxLoanDuration != nil {
		p.MaxLoanDuration = *s.MaxLoanDuration
	}
	if s.MortgageRate != nil {
		p.MortgageRate = *s.MortgageRate
	}
}

// CalculateInterestAndFee returns the interest accrued on borrowed over duration
// seconds and the service fee taken from that interest.
func (p *Pool) CalculateInterestAndFee(borrowed uint64, duration int64) (interest, fee uint64, err error) {
	if duration < 0 {
		return 0, 0, errors.Wrapf(ErrArithmeticOverflow, "negative duration %d", duration)
	}
	i, err := mulChecked(math.NewIntFromUint64(borrowed), math.NewIntFromUint64(p.InterestRate))
	if err != nil {
		return 0, 0, err
	}
	if i, err = mulChecked(i, math.NewInt(duration)); err != nil {
		return 0, 0, err
	}
	i = i.QuoRaw(SecondsPerDay).QuoRaw(BasisPoints)

	f, err := mulChecked(i, math.NewIntFromUint64(p.ServiceFeeRate))
	if err != nil {
		return 0, 0, err
	}
	f = f.QuoRaw(BasisPoints)
	return i.Uint64(), f.Uint64(), nil
}

// BorrowedAmount is the share of total paid out to the borrower
func (p *Pool) BorrowedAmount(total uint64) (uint64, error) {
	b, err := mulChecked(math.NewIntFromUint64(total), math.NewIntFromUint64(p.MortgageRate))
	if err != nil {
		return 0, err
	}
	return b.QuoRaw(BasisPoints).Uint64(), nil
}

func mulChecked(a, b math.Int) (math.Int, error) {
	r := a.Mul(b)
	if !r.IsUint64() {
		return math.Int{}, errors.Wrapf(ErrArithmeticOverflow, "%s * %s", a, b)
	}
	return r, nil
}

// SubChecked returns a - b, failing when the result would be negative
func SubChecked(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%d - %d", a, b)
	}
	return a - b, nil
}

// AddChecked returns a + b, failing on u64 overflow
func AddChecked(a, b uint64) (uint64, error) {
	r := a + b
	if r < a {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%d + %d", a, b)
	}
	return r, nil
}

// MulChecked returns a * b, failing on u64 overflow
func MulChecked(a, b uint64) (uint64, error) {
	r, err := mulChecked(math.NewIntFromUint64(a), math.NewIntFromUint64(b))
	if err != nil {
		return 0, err
	}
	return r.Uint64(), nil
}
