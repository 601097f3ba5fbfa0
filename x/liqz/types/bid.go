package types

import (
	"cosmossdk.io/errors"
)

// Bid is a lender's standing offer to fund loans against one collateral mint.
// A bid with zero quantity always has zero price.
type Bid struct {
	Price uint64 `json:"price"`
	Qty   uint64 `json:"qty"`
}

// Set overwrites the offer
func (b *Bid) Set(price, qty uint64) {
	if qty == 0 {
		price = 0
	}
	b.Price = price
	b.Qty = qty
}

// Cancel clears the offer
func (b *Bid) Cancel() {
	b.Price = 0
	b.Qty = 0
}

// Trade consumes qty units of the offer
func (b *Bid) Trade(qty uint64) error {
	if qty > b.Qty {
		return errors.Wrapf(ErrNFTOvertrade, "trade %d of %d", qty, b.Qty)
	}
	b.Qty -= qty
	if b.Qty == 0 {
		b.Price = 0
	}
	return nil
}

// Total is the currency a fully filled bid commits
func (b *Bid) Total() (uint64, error) {
	return MulChecked(b.Price, b.Qty)
}
