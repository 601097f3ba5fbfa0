package keeper

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/btree"

	"github.com/openalpha/liqz/x/liqz/types"
)

const loanIndexDegree = 16

// loanItem orders active loans by expiry, then by deposit address
type loanItem struct {
	expiredAt int64
	deposit   sdk.AccAddress
	loan      *types.ActiveLoan
}

// Less implements btree.Item
func (a *loanItem) Less(than btree.Item) bool {
	b := than.(*loanItem)
	if a.expiredAt != b.expiredAt {
		return a.expiredAt < b.expiredAt
	}
	return bytes.Compare(a.deposit, b.deposit) < 0
}

// loanIndex is an in-memory expiry index over the active loans in the store
type loanIndex struct {
	tree *btree.BTree
}

func (k *Keeper) buildLoanIndex(ctx sdk.Context) *loanIndex {
	idx := &loanIndex{tree: btree.New(loanIndexDegree)}
	for addr, d := range k.GetAllDeposits(ctx) {
		loan, err := d.ActiveState()
		if err != nil {
			continue
		}
		deposit, err := sdk.AccAddressFromBech32(addr)
		if err != nil {
			continue
		}
		idx.tree.ReplaceOrInsert(&loanItem{expiredAt: loan.ExpiredAt, deposit: deposit, loan: loan})
	}
	return idx
}

// Len returns the number of active loans
func (idx *loanIndex) Len() int {
	return idx.tree.Len()
}

// Next returns the loan that expires first, or nil
func (idx *loanIndex) Next() *loanItem {
	item := idx.tree.Min()
	if item == nil {
		return nil
	}
	return item.(*loanItem)
}

// ExpiredBefore iterates loans with ExpiredAt < now in expiry order. A loan
// expiring exactly at now can still be repaid and is not visited.
func (idx *loanIndex) ExpiredBefore(now int64, fn func(*loanItem) bool) {
	idx.tree.AscendLessThan(&loanItem{expiredAt: now}, func(item btree.Item) bool {
		return fn(item.(*loanItem))
	})
}
