package types

const (
	// ModuleName defines the module name
	ModuleName = "liqz"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// LedgerStoreKey holds token allowances kept by the bank-backed token
	// ledger. Store key names must not be prefixes of one another.
	LedgerStoreKey = "tokenledger"

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes. Records are keyed by their derived address.
var (
	PoolKeyPrefix    = []byte{0x01}
	BidKeyPrefix     = []byte{0x02}
	DepositKeyPrefix = []byte{0x03}
)

// PoolKey returns the store key of the pool record at addr
func PoolKey(addr []byte) []byte {
	return prefixed(PoolKeyPrefix, addr)
}

// BidKey returns the store key of the bid record at addr
func BidKey(addr []byte) []byte {
	return prefixed(BidKeyPrefix, addr)
}

// DepositKey returns the store key of the deposit record at addr
func DepositKey(addr []byte) []byte {
	return prefixed(DepositKeyPrefix, addr)
}

func prefixed(prefix, addr []byte) []byte {
	key := make([]byte, 0, len(prefix)+len(addr))
	key = append(key, prefix...)
	return append(key, addr...)
}
