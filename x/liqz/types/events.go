package types

// Event types
const (
	EventTypeInitialized         = "liqz_initialized"
	EventTypeLoanSettingChanged  = "liqz_loan_setting_changed"
	EventTypeNFTDeposited        = "liqz_nft_deposited"
	EventTypeNFTWithdrawn        = "liqz_nft_withdrawn"
	EventTypeBidPlaced           = "liqz_bid_placed"
	EventTypeBidCancelled        = "liqz_bid_cancelled"
	EventTypeBorrowed            = "liqz_borrowed"
	EventTypeRepayed             = "liqz_repayed"
	EventTypeLiquidated          = "liqz_liquidated"
	EventTypeWithdrawLockedAsset = "liqz_withdraw_locked_asset"
)

// Event attribute keys
const (
	AttributeKeyAccount         = "account"
	AttributeKeyMint            = "mint"
	AttributeKeyFrom            = "from"
	AttributeKeyTo              = "to"
	AttributeKeyDepositID       = "deposit_id"
	AttributeKeyLender          = "lender"
	AttributeKeyBorrower        = "borrower"
	AttributeKeyPrice           = "price"
	AttributeKeyQty             = "qty"
	AttributeKeyAmount          = "amount"
	AttributeKeyLength          = "length"
	AttributeKeyFee             = "fee"
	AttributeKeyLenderIncome    = "lender_income"
	AttributeKeyLoanID          = "loan_id"
	AttributeKeyWithdrawable    = "withdrawable"
	AttributeKeyIncentive       = "incentive"
	AttributeKeyInterestRate    = "interest_rate"
	AttributeKeyServiceFeeRate  = "service_fee_rate"
	AttributeKeyMaxLoanDuration = "max_loan_duration"
	AttributeKeyMortgageRate    = "mortgage_rate"
)
