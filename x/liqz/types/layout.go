package types

import (
	"crypto/sha256"
	"encoding/binary"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxRecordAddressLen bounds identities stored inside deposit records
const MaxRecordAddressLen = 32

const discriminatorLen = 8

// Record sizes. Deposit records are sized for their largest state so a record
// never grows after allocation.
const (
	BidRecordSize     = discriminatorLen + 8 + 8
	DepositRecordSize = discriminatorLen + (4 + MaxDepositIDLen) + 1 + activeLoanSize
	activeLoanSize    = 8 + 8 + 8 + 8 + (4 + MaxRecordAddressLen)
)

var (
	poolDiscriminator    = discriminator("NFTPool")
	bidDiscriminator     = discriminator("NFTBid")
	depositDiscriminator = discriminator("NFTDeposit")
)

func discriminator(name string) []byte {
	sum := sha256.Sum256([]byte("account:" + name))
	return sum[:discriminatorLen]
}

type recordWriter struct {
	buf []byte
}

func (w *recordWriter) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *recordWriter) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *recordWriter) i64(v int64) {
	w.u64(uint64(v))
}

func (w *recordWriter) bytes(b []byte) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(len(b)))
	w.buf = append(w.buf, b...)
}

type recordReader struct {
	buf []byte
	err error
}

func newRecordReader(bz, disc []byte) *recordReader {
	r := &recordReader{buf: bz}
	if got := r.take(discriminatorLen); r.err == nil && string(got) != string(disc) {
		r.err = errors.Wrap(ErrInvalidRecord, "discriminator mismatch")
	}
	return r
}

func (r *recordReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || len(r.buf) < n {
		r.err = errors.Wrapf(ErrInvalidRecord, "need %d bytes, have %d", n, len(r.buf))
		return nil
	}
	out := r.buf[:n]
	r.buf = r.buf[n:]
	return out
}

func (r *recordReader) u8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *recordReader) u64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *recordReader) i64() int64 {
	return int64(r.u64())
}

func (r *recordReader) bytes() []byte {
	lb := r.take(4)
	if lb == nil {
		return nil
	}
	b := r.take(int(binary.LittleEndian.Uint32(lb)))
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// MarshalPool encodes a pool record
func MarshalPool(p *Pool) []byte {
	w := &recordWriter{buf: append([]byte(nil), poolDiscriminator...)}
	w.u8(p.Bump)
	w.bytes(p.Owner)
	w.bytes([]byte(p.RewardMint))
	w.bytes([]byte(p.CreditMint))
	w.bytes([]byte(p.CurrencyMint))
	w.u64(p.Incentive)
	w.i64(p.MaxLoanDuration)
	w.u64(p.ServiceFeeRate)
	w.u64(p.InterestRate)
	w.u64(p.MortgageRate)
	return w.buf
}

// UnmarshalPool decodes a pool record
func UnmarshalPool(bz []byte) (*Pool, error) {
	r := newRecordReader(bz, poolDiscriminator)
	p := &Pool{
		Bump:         r.u8(),
		Owner:        sdk.AccAddress(r.bytes()),
		RewardMint:   string(r.bytes()),
		CreditMint:   string(r.bytes()),
		CurrencyMint: string(r.bytes()),
	}
	p.Incentive = r.u64()
	p.MaxLoanDuration = r.i64()
	p.ServiceFeeRate = r.u64()
	p.InterestRate = r.u64()
	p.MortgageRate = r.u64()
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}

// MarshalBid encodes a bid record
func MarshalBid(b *Bid) []byte {
	w := &recordWriter{buf: make([]byte, 0, BidRecordSize)}
	w.buf = append(w.buf, bidDiscriminator...)
	w.u64(b.Price)
	w.u64(b.Qty)
	return w.buf
}

// UnmarshalBid decodes a bid record
func UnmarshalBid(bz []byte) (*Bid, error) {
	r := newRecordReader(bz, bidDiscriminator)
	b := &Bid{}
	b.Price = r.u64()
	b.Qty = r.u64()
	if r.err != nil {
		return nil, r.err
	}
	return b, nil
}

// MarshalDeposit encodes a deposit record into exactly DepositRecordSize bytes
func MarshalDeposit(d *NFTDeposit) ([]byte, error) {
	if len(d.DepositID) > MaxDepositIDLen {
		return nil, errors.Wrapf(ErrDepositIDTooLong, "%d bytes", len(d.DepositID))
	}
	w := &recordWriter{buf: make([]byte, 0, DepositRecordSize)}
	w.buf = append(w.buf, depositDiscriminator...)
	w.bytes(d.DepositID)
	w.u8(uint8(d.Status))
	switch d.Status {
	case LoanStatusActive:
		if d.Active == nil {
			return nil, errors.Wrap(ErrInvalidRecord, "active loan without terms")
		}
		if len(d.Active.Lender) > MaxRecordAddressLen {
			return nil, errors.Wrapf(ErrInvalidAddress, "lender of %d bytes", len(d.Active.Lender))
		}
		w.u64(d.Active.TotalAmount)
		w.u64(d.Active.BorrowedAmount)
		w.i64(d.Active.StartedAt)
		w.i64(d.Active.ExpiredAt)
		w.bytes(d.Active.Lender)
	case LoanStatusRepayed:
		if d.Repayed == nil {
			return nil, errors.Wrap(ErrInvalidRecord, "repayed loan without settlement")
		}
		if len(d.Repayed.Lender) > MaxRecordAddressLen {
			return nil, errors.Wrapf(ErrInvalidAddress, "lender of %d bytes", len(d.Repayed.Lender))
		}
		w.u64(d.Repayed.TaiRequiredToUnlock)
		w.u64(d.Repayed.LenderWithdrawable)
		w.bytes(d.Repayed.Lender)
	case LoanStatusPending, LoanStatusWithdrawn, LoanStatusLiquidated, LoanStatusCleared:
	default:
		return nil, errors.Wrapf(ErrInvalidRecord, "unknown status %d", d.Status)
	}
	out := make([]byte, DepositRecordSize)
	copy(out, w.buf)
	return out, nil
}

// UnmarshalDeposit decodes a deposit record, ignoring trailing padding
func UnmarshalDeposit(bz []byte) (*NFTDeposit, error) {
	r := newRecordReader(bz, depositDiscriminator)
	d := &NFTDeposit{DepositID: r.bytes()}
	d.Status = LoanStatus(r.u8())
	switch d.Status {
	case LoanStatusActive:
		loan := &ActiveLoan{}
		loan.TotalAmount = r.u64()
		loan.BorrowedAmount = r.u64()
		loan.StartedAt = r.i64()
		loan.ExpiredAt = r.i64()
		loan.Lender = sdk.AccAddress(r.bytes())
		d.Active = loan
	case LoanStatusRepayed:
		repay := &RepayedLoan{}
		repay.TaiRequiredToUnlock = r.u64()
		repay.LenderWithdrawable = r.u64()
		repay.Lender = sdk.AccAddress(r.bytes())
		d.Repayed = repay
	case LoanStatusPending, LoanStatusWithdrawn, LoanStatusLiquidated, LoanStatusCleared:
	default:
		if r.err == nil {
			r.err = errors.Wrapf(ErrInvalidRecord, "unknown status %d", d.Status)
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return d, nil
}
