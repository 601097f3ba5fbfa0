package types

import (
	"context"
	"encoding/hex"

	"cosmossdk.io/errors"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

// RegisterInterfaces registers the module's interface types
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitialize{},
		&MsgChangeLoanSettings{},
		&MsgDepositNFT{},
		&MsgWithdrawNFT{},
		&MsgPlaceBid{},
		&MsgCancelBid{},
		&MsgBorrow{},
		&MsgRepay{},
		&MsgLiquidate{},
		&MsgWithdrawLockedAsset{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}

// Message types for liqz module
const (
	TypeMsgInitialize          = "initialize"
	TypeMsgChangeLoanSettings  = "change_loan_settings"
	TypeMsgDepositNFT          = "deposit_nft"
	TypeMsgWithdrawNFT         = "withdraw_nft"
	TypeMsgPlaceBid            = "place_bid"
	TypeMsgCancelBid           = "cancel_bid"
	TypeMsgBorrow              = "borrow"
	TypeMsgRepay               = "repay"
	TypeMsgLiquidate           = "liquidate"
	TypeMsgWithdrawLockedAsset = "withdraw_locked_asset"
)

// MsgServer defines the liqz module's message service
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)
	ChangeLoanSettings(context.Context, *MsgChangeLoanSettings) (*MsgChangeLoanSettingsResponse, error)
	DepositNFT(context.Context, *MsgDepositNFT) (*MsgDepositNFTResponse, error)
	WithdrawNFT(context.Context, *MsgWithdrawNFT) (*MsgWithdrawNFTResponse, error)
	PlaceBid(context.Context, *MsgPlaceBid) (*MsgPlaceBidResponse, error)
	CancelBid(context.Context, *MsgCancelBid) (*MsgCancelBidResponse, error)
	Borrow(context.Context, *MsgBorrow) (*MsgBorrowResponse, error)
	Repay(context.Context, *MsgRepay) (*MsgRepayResponse, error)
	Liquidate(context.Context, *MsgLiquidate) (*MsgLiquidateResponse, error)
	WithdrawLockedAsset(context.Context, *MsgWithdrawLockedAsset) (*MsgWithdrawLockedAssetResponse, error)
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "%s: %v", field, err)
	}
	return nil
}

func validateAddresses(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := validateAddress(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func validateMint(field, denom string) error {
	if err := sdk.ValidateDenom(denom); err != nil {
		return errors.Wrapf(ErrMintMismatch, "%s: %v", field, err)
	}
	return nil
}

func signer(addr string) []sdk.AccAddress {
	acc, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{acc}
}

// ============ Pool Messages ============

// MsgInitialize creates the pool and its escrow accounts
type MsgInitialize struct {
	Owner        string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	PoolAccount  string `protobuf:"bytes,2,opt,name=pool_account,proto3" json:"pool_account"`
	RewardMint   string `protobuf:"bytes,3,opt,name=reward_mint,proto3" json:"reward_mint"`
	CreditMint   string `protobuf:"bytes,4,opt,name=credit_mint,proto3" json:"credit_mint"`
	CurrencyMint string `protobuf:"bytes,5,opt,name=currency_mint,proto3" json:"currency_mint"`
}

func (msg *MsgInitialize) Reset()         { *msg = MsgInitialize{} }
func (msg *MsgInitialize) String() string { return msg.Owner }
func (msg *MsgInitialize) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgInitialize
func (msg *MsgInitialize) XXX_MessageName() string { return "liqz.v1.MsgInitialize" }

func (msg *MsgInitialize) Route() string { return RouterKey }
func (msg *MsgInitialize) Type() string  { return TypeMsgInitialize }

// ValidateBasic for MsgInitialize
func (msg *MsgInitialize) ValidateBasic() error {
	if err := validateAddresses("owner", msg.Owner, "pool_account", msg.PoolAccount); err != nil {
		return err
	}
	if err := validateMint("reward_mint", msg.RewardMint); err != nil {
		return err
	}
	if err := validateMint("credit_mint", msg.CreditMint); err != nil {
		return err
	}
	return validateMint("currency_mint", msg.CurrencyMint)
}

// GetSigners returns the signer addresses for MsgInitialize
func (msg *MsgInitialize) GetSigners() []sdk.AccAddress { return signer(msg.Owner) }

// MsgInitializeResponse is the response for MsgInitialize
type MsgInitializeResponse struct {
	PoolAccount string `protobuf:"bytes,1,opt,name=pool_account,proto3" json:"pool_account"`
}

func (msg *MsgInitializeResponse) Reset()         { *msg = MsgInitializeResponse{} }
func (msg *MsgInitializeResponse) String() string { return msg.PoolAccount }
func (msg *MsgInitializeResponse) ProtoMessage()  {}

// MsgChangeLoanSettings updates pool parameters. Only the pool owner may send
// it. Unset fields are left unchanged.
type MsgChangeLoanSettings struct {
	Owner           string  `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	PoolAccount     string  `protobuf:"bytes,2,opt,name=pool_account,proto3" json:"pool_account"`
	Incentive       *uint64 `protobuf:"varint,3,opt,name=incentive" json:"incentive,omitempty"`
	InterestRate    *uint64 `protobuf:"varint,4,opt,name=interest_rate" json:"interest_rate,omitempty"`
	ServiceFeeRate  *uint64 `protobuf:"varint,5,opt,name=service_fee_rate" json:"service_fee_rate,omitempty"`
	MaxLoanDuration *int64  `protobuf:"varint,6,opt,name=max_loan_duration" json:"max_loan_duration,omitempty"`
	MortgageRate    *uint64 `protobuf:"varint,7,opt,name=mortgage_rate" json:"mortgage_rate,omitempty"`
}

func (msg *MsgChangeLoanSettings) Reset()         { *msg = MsgChangeLoanSettings{} }
func (msg *MsgChangeLoanSettings) String() string { return msg.Owner }
func (msg *MsgChangeLoanSettings) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgChangeLoanSettings
func (msg *MsgChangeLoanSettings) XXX_MessageName() string { return "liqz.v1.MsgChangeLoanSettings" }

func (msg *MsgChangeLoanSettings) Route() string { return RouterKey }
func (msg *MsgChangeLoanSettings) Type() string  { return TypeMsgChangeLoanSettings }

// ValidateBasic for MsgChangeLoanSettings
func (msg *MsgChangeLoanSettings) ValidateBasic() error {
	return validateAddresses("owner", msg.Owner, "pool_account", msg.PoolAccount)
}

// GetSigners returns the signer addresses for MsgChangeLoanSettings
func (msg *MsgChangeLoanSettings) GetSigners() []sdk.AccAddress { return signer(msg.Owner) }

// LoanSettings returns the requested updates
func (msg *MsgChangeLoanSettings) LoanSettings() LoanSettings {
	return LoanSettings{
		Incentive:       msg.Incentive,
		InterestRate:    msg.InterestRate,
		ServiceFeeRate:  msg.ServiceFeeRate,
		MaxLoanDuration: msg.MaxLoanDuration,
		MortgageRate:    msg.MortgageRate,
	}
}

// MsgChangeLoanSettingsResponse returns the resulting loan settings
type MsgChangeLoanSettingsResponse struct {
	Incentive       uint64 `protobuf:"varint,1,opt,name=incentive,proto3" json:"incentive"`
	InterestRate    uint64 `protobuf:"varint,2,opt,name=interest_rate,proto3" json:"interest_rate"`
	ServiceFeeRate  uint64 `protobuf:"varint,3,opt,name=service_fee_rate,proto3" json:"service_fee_rate"`
	MaxLoanDuration int64  `protobuf:"varint,4,opt,name=max_loan_duration,proto3" json:"max_loan_duration"`
	MortgageRate    uint64 `protobuf:"varint,5,opt,name=mortgage_rate,proto3" json:"mortgage_rate"`
}

func (msg *MsgChangeLoanSettingsResponse) Reset()         { *msg = MsgChangeLoanSettingsResponse{} }
func (msg *MsgChangeLoanSettingsResponse) String() string { return "change_loan_settings" }
func (msg *MsgChangeLoanSettingsResponse) ProtoMessage()  {}

// ============ Deposit Messages ============

// MsgDepositNFT escrows one NFT. DepositID is hex encoded.
type MsgDepositNFT struct {
	Borrower       string `protobuf:"bytes,1,opt,name=borrower,proto3" json:"borrower"`
	Mint           string `protobuf:"bytes,2,opt,name=mint,proto3" json:"mint"`
	DepositAccount string `protobuf:"bytes,3,opt,name=deposit_account,proto3" json:"deposit_account"`
	DepositID      string `protobuf:"bytes,4,opt,name=deposit_id,proto3" json:"deposit_id"`
}

func (msg *MsgDepositNFT) Reset()         { *msg = MsgDepositNFT{} }
func (msg *MsgDepositNFT) String() string { return msg.Borrower }
func (msg *MsgDepositNFT) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgDepositNFT
func (msg *MsgDepositNFT) XXX_MessageName() string { return "liqz.v1.MsgDepositNFT" }

func (msg *MsgDepositNFT) Route() string { return RouterKey }
func (msg *MsgDepositNFT) Type() string  { return TypeMsgDepositNFT }

// ValidateBasic for MsgDepositNFT
func (msg *MsgDepositNFT) ValidateBasic() error {
	if err := validateAddresses("borrower", msg.Borrower, "deposit_account", msg.DepositAccount); err != nil {
		return err
	}
	if err := validateMint("mint", msg.Mint); err != nil {
		return err
	}
	_, err := DecodeDepositID(msg.DepositID)
	return err
}

// GetSigners returns the signer addresses for MsgDepositNFT
func (msg *MsgDepositNFT) GetSigners() []sdk.AccAddress { return signer(msg.Borrower) }

// MsgDepositNFTResponse is the response for MsgDepositNFT
type MsgDepositNFTResponse struct {
	Incentive uint64 `protobuf:"varint,1,opt,name=incentive,proto3" json:"incentive"`
}

func (msg *MsgDepositNFTResponse) Reset()         { *msg = MsgDepositNFTResponse{} }
func (msg *MsgDepositNFTResponse) String() string { return "deposit_nft" }
func (msg *MsgDepositNFTResponse) ProtoMessage()  {}

// DecodeDepositID parses a hex deposit id
func DecodeDepositID(s string) ([]byte, error) {
	id, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidRecord, "deposit id: %v", err)
	}
	if len(id) > MaxDepositIDLen {
		return nil, errors.Wrapf(ErrDepositIDTooLong, "%d bytes", len(id))
	}
	return id, nil
}

// MsgWithdrawNFT returns a never-borrowed NFT to the borrower
type MsgWithdrawNFT struct {
	Borrower       string `protobuf:"bytes,1,opt,name=borrower,proto3" json:"borrower"`
	Mint           string `protobuf:"bytes,2,opt,name=mint,proto3" json:"mint"`
	DepositAccount string `protobuf:"bytes,3,opt,name=deposit_account,proto3" json:"deposit_account"`
}

func (msg *MsgWithdrawNFT) Reset()         { *msg = MsgWithdrawNFT{} }
func (msg *MsgWithdrawNFT) String() string { return msg.Borrower }
func (msg *MsgWithdrawNFT) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgWithdrawNFT
func (msg *MsgWithdrawNFT) XXX_MessageName() string { return "liqz.v1.MsgWithdrawNFT" }

func (msg *MsgWithdrawNFT) Route() string { return RouterKey }
func (msg *MsgWithdrawNFT) Type() string  { return TypeMsgWithdrawNFT }

// ValidateBasic for MsgWithdrawNFT
func (msg *MsgWithdrawNFT) ValidateBasic() error {
	if err := validateAddresses("borrower", msg.Borrower, "deposit_account", msg.DepositAccount); err != nil {
		return err
	}
	return validateMint("mint", msg.Mint)
}

// GetSigners returns the signer addresses for MsgWithdrawNFT
func (msg *MsgWithdrawNFT) GetSigners() []sdk.AccAddress { return signer(msg.Borrower) }

// MsgWithdrawNFTResponse is the response for MsgWithdrawNFT
type MsgWithdrawNFTResponse struct{}

func (msg *MsgWithdrawNFTResponse) Reset()         { *msg = MsgWithdrawNFTResponse{} }
func (msg *MsgWithdrawNFTResponse) String() string { return "withdraw_nft" }
func (msg *MsgWithdrawNFTResponse) ProtoMessage()  {}

// ============ Bid Messages ============

// MsgPlaceBid sets a lender's offer for a collateral mint
type MsgPlaceBid struct {
	Lender     string `protobuf:"bytes,1,opt,name=lender,proto3" json:"lender"`
	Mint       string `protobuf:"bytes,2,opt,name=mint,proto3" json:"mint"`
	BidAccount string `protobuf:"bytes,3,opt,name=bid_account,proto3" json:"bid_account"`
	Price      uint64 `protobuf:"varint,4,opt,name=price,proto3" json:"price"`
	Qty        uint64 `protobuf:"varint,5,opt,name=qty,proto3" json:"qty"`
}

func (msg *MsgPlaceBid) Reset()         { *msg = MsgPlaceBid{} }
func (msg *MsgPlaceBid) String() string { return msg.Lender }
func (msg *MsgPlaceBid) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgPlaceBid
func (msg *MsgPlaceBid) XXX_MessageName() string { return "liqz.v1.MsgPlaceBid" }

func (msg *MsgPlaceBid) Route() string { return RouterKey }
func (msg *MsgPlaceBid) Type() string  { return TypeMsgPlaceBid }

// ValidateBasic for MsgPlaceBid
func (msg *MsgPlaceBid) ValidateBasic() error {
	if err := validateAddresses("lender", msg.Lender, "bid_account", msg.BidAccount); err != nil {
		return err
	}
	return validateMint("mint", msg.Mint)
}

// GetSigners returns the signer addresses for MsgPlaceBid
func (msg *MsgPlaceBid) GetSigners() []sdk.AccAddress { return signer(msg.Lender) }

// MsgPlaceBidResponse is the response for MsgPlaceBid
type MsgPlaceBidResponse struct{}

func (msg *MsgPlaceBidResponse) Reset()         { *msg = MsgPlaceBidResponse{} }
func (msg *MsgPlaceBidResponse) String() string { return "place_bid" }
func (msg *MsgPlaceBidResponse) ProtoMessage()  {}

// MsgCancelBid clears a lender's offer, optionally revoking the pool allowance
type MsgCancelBid struct {
	Lender     string `protobuf:"bytes,1,opt,name=lender,proto3" json:"lender"`
	Mint       string `protobuf:"bytes,2,opt,name=mint,proto3" json:"mint"`
	BidAccount string `protobuf:"bytes,3,opt,name=bid_account,proto3" json:"bid_account"`
	Revoke     bool   `protobuf:"varint,4,opt,name=revoke,proto3" json:"revoke"`
}

func (msg *MsgCancelBid) Reset()         { *msg = MsgCancelBid{} }
func (msg *MsgCancelBid) String() string { return msg.Lender }
func (msg *MsgCancelBid) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgCancelBid
func (msg *MsgCancelBid) XXX_MessageName() string { return "liqz.v1.MsgCancelBid" }

func (msg *MsgCancelBid) Route() string { return RouterKey }
func (msg *MsgCancelBid) Type() string  { return TypeMsgCancelBid }

// ValidateBasic for MsgCancelBid
func (msg *MsgCancelBid) ValidateBasic() error {
	if err := validateAddresses("lender", msg.Lender, "bid_account", msg.BidAccount); err != nil {
		return err
	}
	return validateMint("mint", msg.Mint)
}

// GetSigners returns the signer addresses for MsgCancelBid
func (msg *MsgCancelBid) GetSigners() []sdk.AccAddress { return signer(msg.Lender) }

// MsgCancelBidResponse is the response for MsgCancelBid
type MsgCancelBidResponse struct{}

func (msg *MsgCancelBidResponse) Reset()         { *msg = MsgCancelBidResponse{} }
func (msg *MsgCancelBidResponse) String() string { return "cancel_bid" }
func (msg *MsgCancelBidResponse) ProtoMessage()  {}

// ============ Loan Messages ============

// MsgBorrow draws a loan against a deposited NFT from a lender's bid
type MsgBorrow struct {
	Borrower       string `protobuf:"bytes,1,opt,name=borrower,proto3" json:"borrower"`
	Lender         string `protobuf:"bytes,2,opt,name=lender,proto3" json:"lender"`
	Mint           string `protobuf:"bytes,3,opt,name=mint,proto3" json:"mint"`
	DepositAccount string `protobuf:"bytes,4,opt,name=deposit_account,proto3" json:"deposit_account"`
	BidAccount     string `protobuf:"bytes,5,opt,name=bid_account,proto3" json:"bid_account"`
	Amount         uint64 `protobuf:"varint,6,opt,name=amount,proto3" json:"amount"`
}

func (msg *MsgBorrow) Reset()         { *msg = MsgBorrow{} }
func (msg *MsgBorrow) String() string { return msg.Borrower }
func (msg *MsgBorrow) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgBorrow
func (msg *MsgBorrow) XXX_MessageName() string { return "liqz.v1.MsgBorrow" }

func (msg *MsgBorrow) Route() string { return RouterKey }
func (msg *MsgBorrow) Type() string  { return TypeMsgBorrow }

// ValidateBasic for MsgBorrow
func (msg *MsgBorrow) ValidateBasic() error {
	if err := validateAddresses(
		"borrower", msg.Borrower,
		"lender", msg.Lender,
		"deposit_account", msg.DepositAccount,
		"bid_account", msg.BidAccount,
	); err != nil {
		return err
	}
	return validateMint("mint", msg.Mint)
}

// GetSigners returns the signer addresses for MsgBorrow
func (msg *MsgBorrow) GetSigners() []sdk.AccAddress { return signer(msg.Borrower) }

// MsgBorrowResponse is the response for MsgBorrow
type MsgBorrowResponse struct {
	BorrowedAmount uint64 `protobuf:"varint,1,opt,name=borrowed_amount,proto3" json:"borrowed_amount"`
	ExpiredAt      int64  `protobuf:"varint,2,opt,name=expired_at,proto3" json:"expired_at"`
}

func (msg *MsgBorrowResponse) Reset()         { *msg = MsgBorrowResponse{} }
func (msg *MsgBorrowResponse) String() string { return "borrow" }
func (msg *MsgBorrowResponse) ProtoMessage()  {}

// MsgRepay repays an active loan before expiry
type MsgRepay struct {
	Borrower       string `protobuf:"bytes,1,opt,name=borrower,proto3" json:"borrower"`
	Mint           string `protobuf:"bytes,2,opt,name=mint,proto3" json:"mint"`
	DepositAccount string `protobuf:"bytes,3,opt,name=deposit_account,proto3" json:"deposit_account"`
}

func (msg *MsgRepay) Reset()         { *msg = MsgRepay{} }
func (msg *MsgRepay) String() string { return msg.Borrower }
func (msg *MsgRepay) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgRepay
func (msg *MsgRepay) XXX_MessageName() string { return "liqz.v1.MsgRepay" }

func (msg *MsgRepay) Route() string { return RouterKey }
func (msg *MsgRepay) Type() string  { return TypeMsgRepay }

// ValidateBasic for MsgRepay
func (msg *MsgRepay) ValidateBasic() error {
	if err := validateAddresses("borrower", msg.Borrower, "deposit_account", msg.DepositAccount); err != nil {
		return err
	}
	return validateMint("mint", msg.Mint)
}

// GetSigners returns the signer addresses for MsgRepay
func (msg *MsgRepay) GetSigners() []sdk.AccAddress { return signer(msg.Borrower) }

// MsgRepayResponse is the response for MsgRepay
type MsgRepayResponse struct {
	RepayedAmount uint64 `protobuf:"varint,1,opt,name=repayed_amount,proto3" json:"repayed_amount"`
	Fee           uint64 `protobuf:"varint,2,opt,name=fee,proto3" json:"fee"`
}

func (msg *MsgRepayResponse) Reset()         { *msg = MsgRepayResponse{} }
func (msg *MsgRepayResponse) String() string { return "repay" }
func (msg *MsgRepayResponse) ProtoMessage()  {}

// MsgLiquidate seizes the collateral of an expired loan
type MsgLiquidate struct {
	Lender         string `protobuf:"bytes,1,opt,name=lender,proto3" json:"lender"`
	Borrower       string `protobuf:"bytes,2,opt,name=borrower,proto3" json:"borrower"`
	Mint           string `protobuf:"bytes,3,opt,name=mint,proto3" json:"mint"`
	DepositAccount string `protobuf:"bytes,4,opt,name=deposit_account,proto3" json:"deposit_account"`
}

func (msg *MsgLiquidate) Reset()         { *msg = MsgLiquidate{} }
func (msg *MsgLiquidate) String() string { return msg.Lender }
func (msg *MsgLiquidate) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgLiquidate
func (msg *MsgLiquidate) XXX_MessageName() string { return "liqz.v1.MsgLiquidate" }

func (msg *MsgLiquidate) Route() string { return RouterKey }
func (msg *MsgLiquidate) Type() string  { return TypeMsgLiquidate }

// ValidateBasic for MsgLiquidate
func (msg *MsgLiquidate) ValidateBasic() error {
	if err := validateAddresses(
		"lender", msg.Lender,
		"borrower", msg.Borrower,
		"deposit_account", msg.DepositAccount,
	); err != nil {
		return err
	}
	return validateMint("mint", msg.Mint)
}

// GetSigners returns the signer addresses for MsgLiquidate
func (msg *MsgLiquidate) GetSigners() []sdk.AccAddress { return signer(msg.Lender) }

// MsgLiquidateResponse is the response for MsgLiquidate
type MsgLiquidateResponse struct {
	Withdrawable uint64 `protobuf:"varint,1,opt,name=withdrawable,proto3" json:"withdrawable"`
}

func (msg *MsgLiquidateResponse) Reset()         { *msg = MsgLiquidateResponse{} }
func (msg *MsgLiquidateResponse) String() string { return "liquidate" }
func (msg *MsgLiquidateResponse) ProtoMessage()  {}

// MsgWithdrawLockedAsset settles a repaid loan for its lender
type MsgWithdrawLockedAsset struct {
	Lender         string `protobuf:"bytes,1,opt,name=lender,proto3" json:"lender"`
	Borrower       string `protobuf:"bytes,2,opt,name=borrower,proto3" json:"borrower"`
	Mint           string `protobuf:"bytes,3,opt,name=mint,proto3" json:"mint"`
	DepositAccount string `protobuf:"bytes,4,opt,name=deposit_account,proto3" json:"deposit_account"`
}

func (msg *MsgWithdrawLockedAsset) Reset()         { *msg = MsgWithdrawLockedAsset{} }
func (msg *MsgWithdrawLockedAsset) String() string { return msg.Lender }
func (msg *MsgWithdrawLockedAsset) ProtoMessage()  {}

// XXX_MessageName returns the message type URL for MsgWithdrawLockedAsset
func (msg *MsgWithdrawLockedAsset) XXX_MessageName() string { return "liqz.v1.MsgWithdrawLockedAsset" }

func (msg *MsgWithdrawLockedAsset) Route() string { return RouterKey }
func (msg *MsgWithdrawLockedAsset) Type() string  { return TypeMsgWithdrawLockedAsset }

// ValidateBasic for MsgWithdrawLockedAsset
func (msg *MsgWithdrawLockedAsset) ValidateBasic() error {
	if err := validateAddresses(
		"lender", msg.Lender,
		"borrower", msg.Borrower,
		"deposit_account", msg.DepositAccount,
	); err != nil {
		return err
	}
	return validateMint("mint", msg.Mint)
}

// GetSigners returns the signer addresses for MsgWithdrawLockedAsset
func (msg *MsgWithdrawLockedAsset) GetSigners() []sdk.AccAddress { return signer(msg.Lender) }

// MsgWithdrawLockedAssetResponse is the response for MsgWithdrawLockedAsset
type MsgWithdrawLockedAssetResponse struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount"`
}

func (msg *MsgWithdrawLockedAssetResponse) Reset()         { *msg = MsgWithdrawLockedAssetResponse{} }
func (msg *MsgWithdrawLockedAssetResponse) String() string { return "withdraw_locked_asset" }
func (msg *MsgWithdrawLockedAssetResponse) ProtoMessage()  {}
