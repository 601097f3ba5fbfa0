package keeper

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

// Keeper manages the liqz module state
type Keeper struct {
	cdc      codec.BinaryCodec
	storeKey storetypes.StoreKey
	ledger   types.TokenLedger
	logger   log.Logger
}

// NewKeeper creates a new liqz keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	ledger types.TokenLedger,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		cdc:      cdc,
		storeKey: storeKey,
		ledger:   ledger,
		logger:   logger.With("module", "x/liqz"),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// atomically runs fn on a cached branch of ctx and commits it, events included,
// only when fn succeeds
func (k *Keeper) atomically(ctx sdk.Context, fn func(sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

// ============ Record Storage ============

// HasPool reports whether the pool record is allocated
func (k *Keeper) HasPool(ctx sdk.Context, addr sdk.AccAddress) bool {
	return k.GetStore(ctx).Has(types.PoolKey(addr))
}

// GetPool loads the pool record at addr
func (k *Keeper) GetPool(ctx sdk.Context, addr sdk.AccAddress) (*types.Pool, error) {
	bz := k.GetStore(ctx).Get(types.PoolKey(addr))
	if bz == nil {
		return nil, errors.Wrapf(types.ErrPoolNotFound, "%s", addr)
	}
	return types.UnmarshalPool(bz)
}

// SetPool saves the pool record at addr
func (k *Keeper) SetPool(ctx sdk.Context, addr sdk.AccAddress, pool *types.Pool) {
	k.GetStore(ctx).Set(types.PoolKey(addr), types.MarshalPool(pool))
}

// HasBid reports whether the bid record is allocated
func (k *Keeper) HasBid(ctx sdk.Context, addr sdk.AccAddress) bool {
	return k.GetStore(ctx).Has(types.BidKey(addr))
}

// GetBid loads the bid record at addr
func (k *Keeper) GetBid(ctx sdk.Context, addr sdk.AccAddress) (*types.Bid, error) {
	bz := k.GetStore(ctx).Get(types.BidKey(addr))
	if bz == nil {
		return nil, errors.Wrapf(types.ErrBidNotFound, "%s", addr)
	}
	return types.UnmarshalBid(bz)
}

// SetBid saves the bid record at addr
func (k *Keeper) SetBid(ctx sdk.Context, addr sdk.AccAddress, bid *types.Bid) {
	k.GetStore(ctx).Set(types.BidKey(addr), types.MarshalBid(bid))
}

// HasDeposit reports whether the deposit record is allocated
func (k *Keeper) HasDeposit(ctx sdk.Context, addr sdk.AccAddress) bool {
	return k.GetStore(ctx).Has(types.DepositKey(addr))
}

// GetDeposit loads the deposit record at addr
func (k *Keeper) GetDeposit(ctx sdk.Context, addr sdk.AccAddress) (*types.NFTDeposit, error) {
	bz := k.GetStore(ctx).Get(types.DepositKey(addr))
	if bz == nil {
		return nil, errors.Wrapf(types.ErrDepositNotFound, "%s", addr)
	}
	return types.UnmarshalDeposit(bz)
}

// SetDeposit saves the deposit record at addr
func (k *Keeper) SetDeposit(ctx sdk.Context, addr sdk.AccAddress, deposit *types.NFTDeposit) error {
	bz, err := types.MarshalDeposit(deposit)
	if err != nil {
		return err
	}
	k.GetStore(ctx).Set(types.DepositKey(addr), bz)
	return nil
}

// GetAllDeposits returns every deposit record keyed by bech32 address
func (k *Keeper) GetAllDeposits(ctx sdk.Context) map[string]*types.NFTDeposit {
	iterator := storetypes.KVStorePrefixIterator(k.GetStore(ctx), types.DepositKeyPrefix)
	defer iterator.Close()

	deposits := make(map[string]*types.NFTDeposit)
	for ; iterator.Valid(); iterator.Next() {
		d, err := types.UnmarshalDeposit(iterator.Value())
		if err != nil {
			k.logger.Error("skipping undecodable deposit", "key", iterator.Key(), "error", err)
			continue
		}
		addr := sdk.AccAddress(iterator.Key()[len(types.DepositKeyPrefix):])
		deposits[addr.String()] = d
	}
	return deposits
}
