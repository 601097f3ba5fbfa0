package types

import (
	gogoproto "github.com/cosmos/gogoproto/proto"
)

// Records in query responses use the fixed binary layout of layout.go

// QueryPoolRequest asks for the canonical pool
type QueryPoolRequest struct{}

func (m *QueryPoolRequest) Reset()         { *m = QueryPoolRequest{} }
func (m *QueryPoolRequest) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryPoolRequest) ProtoMessage()  {}

// QueryPoolResponse carries the pool address and its encoded record
type QueryPoolResponse struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address"`
	Record  []byte `protobuf:"bytes,2,opt,name=record,proto3" json:"record"`
}

func (m *QueryPoolResponse) Reset()         { *m = QueryPoolResponse{} }
func (m *QueryPoolResponse) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryPoolResponse) ProtoMessage()  {}

// QueryBidRequest asks for the bid of lender on mint
type QueryBidRequest struct {
	Mint   string `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint"`
	Lender string `protobuf:"bytes,2,opt,name=lender,proto3" json:"lender"`
}

func (m *QueryBidRequest) Reset()         { *m = QueryBidRequest{} }
func (m *QueryBidRequest) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryBidRequest) ProtoMessage()  {}

// QueryBidResponse carries the bid address and its encoded record
type QueryBidResponse struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address"`
	Record  []byte `protobuf:"bytes,2,opt,name=record,proto3" json:"record"`
}

func (m *QueryBidResponse) Reset()         { *m = QueryBidResponse{} }
func (m *QueryBidResponse) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryBidResponse) ProtoMessage()  {}

// QueryDepositRequest identifies a deposit. DepositID is hex encoded.
type QueryDepositRequest struct {
	Mint      string `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint"`
	Borrower  string `protobuf:"bytes,2,opt,name=borrower,proto3" json:"borrower"`
	DepositID string `protobuf:"bytes,3,opt,name=deposit_id,proto3" json:"deposit_id"`
}

func (m *QueryDepositRequest) Reset()         { *m = QueryDepositRequest{} }
func (m *QueryDepositRequest) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryDepositRequest) ProtoMessage()  {}

// QueryDepositResponse carries the deposit address, status and encoded record
type QueryDepositResponse struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address"`
	Status  string `protobuf:"bytes,2,opt,name=status,proto3" json:"status"`
	Record  []byte `protobuf:"bytes,3,opt,name=record,proto3" json:"record"`
}

func (m *QueryDepositResponse) Reset()         { *m = QueryDepositResponse{} }
func (m *QueryDepositResponse) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryDepositResponse) ProtoMessage()  {}

// ExpiredLoan is an active loan its lender may liquidate
type ExpiredLoan struct {
	DepositAccount string `protobuf:"bytes,1,opt,name=deposit_account,proto3" json:"deposit_account"`
	Lender         string `protobuf:"bytes,2,opt,name=lender,proto3" json:"lender"`
	TotalAmount    uint64 `protobuf:"varint,3,opt,name=total_amount,proto3" json:"total_amount"`
	BorrowedAmount uint64 `protobuf:"varint,4,opt,name=borrowed_amount,proto3" json:"borrowed_amount"`
	ExpiredAt      int64  `protobuf:"varint,5,opt,name=expired_at,proto3" json:"expired_at"`
}

func (m *ExpiredLoan) Reset()         { *m = ExpiredLoan{} }
func (m *ExpiredLoan) String() string { return gogoproto.CompactTextString(m) }
func (m *ExpiredLoan) ProtoMessage()  {}

// QueryExpiredLoansRequest filters expired loans by lender. Empty means all.
type QueryExpiredLoansRequest struct {
	Lender string `protobuf:"bytes,1,opt,name=lender,proto3" json:"lender"`
}

func (m *QueryExpiredLoansRequest) Reset()         { *m = QueryExpiredLoansRequest{} }
func (m *QueryExpiredLoansRequest) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryExpiredLoansRequest) ProtoMessage()  {}

// QueryExpiredLoansResponse lists expired loans, earliest first
type QueryExpiredLoansResponse struct {
	Loans []*ExpiredLoan `protobuf:"bytes,1,rep,name=loans,proto3" json:"loans"`
}

func (m *QueryExpiredLoansResponse) Reset()         { *m = QueryExpiredLoansResponse{} }
func (m *QueryExpiredLoansResponse) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryExpiredLoansResponse) ProtoMessage()  {}

// QueryNextExpiryRequest asks for the earliest active loan expiry
type QueryNextExpiryRequest struct{}

func (m *QueryNextExpiryRequest) Reset()         { *m = QueryNextExpiryRequest{} }
func (m *QueryNextExpiryRequest) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryNextExpiryRequest) ProtoMessage()  {}

// QueryNextExpiryResponse holds the expiry. Found is false with no active loans.
type QueryNextExpiryResponse struct {
	ExpiredAt int64 `protobuf:"varint,1,opt,name=expired_at,proto3" json:"expired_at"`
	Found     bool  `protobuf:"varint,2,opt,name=found,proto3" json:"found"`
}

func (m *QueryNextExpiryResponse) Reset()         { *m = QueryNextExpiryResponse{} }
func (m *QueryNextExpiryResponse) String() string { return gogoproto.CompactTextString(m) }
func (m *QueryNextExpiryResponse) ProtoMessage()  {}
