package types

import (
	"bytes"
	"compress/gzip"
	"reflect"

	msgv1 "cosmossdk.io/api/cosmos/msg/v1"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// File names of the liqz.v1 schemas under proto/
const (
	TxProtoFile    = "liqz/v1/tx.proto"
	QueryProtoFile = "liqz/v1/query.proto"

	protoPackage = "liqz.v1"
	goPackage    = "github.com/openalpha/liqz/x/liqz/types"
	msgProtoFile = "cosmos/msg/v1/msg.proto"
)

type protoField struct {
	name     string
	kind     descriptorpb.FieldDescriptorProto_Type
	typeName string
	repeated bool
	optional bool
}

func stringField(name string) protoField {
	return protoField{name: name, kind: descriptorpb.FieldDescriptorProto_TYPE_STRING}
}

func bytesField(name string) protoField {
	return protoField{name: name, kind: descriptorpb.FieldDescriptorProto_TYPE_BYTES}
}

func boolField(name string) protoField {
	return protoField{name: name, kind: descriptorpb.FieldDescriptorProto_TYPE_BOOL}
}

func uint64Field(name string) protoField {
	return protoField{name: name, kind: descriptorpb.FieldDescriptorProto_TYPE_UINT64}
}

func int64Field(name string) protoField {
	return protoField{name: name, kind: descriptorpb.FieldDescriptorProto_TYPE_INT64}
}

func optional(f protoField) protoField {
	f.optional = true
	return f
}

func repeatedMessage(name, message string) protoField {
	return protoField{
		name:     name,
		kind:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE,
		typeName: "." + protoPackage + "." + message,
		repeated: true,
	}
}

// protoMessage describes one message. Field numbers follow declaration order.
type protoMessage struct {
	name   string
	signer string
	fields []protoField
}

func (m protoMessage) descriptor() *descriptorpb.DescriptorProto {
	desc := &descriptorpb.DescriptorProto{Name: proto.String(m.name)}
	var synthetic []*descriptorpb.OneofDescriptorProto
	for i, f := range m.fields {
		field := &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(f.name),
			Number: proto.Int32(int32(i + 1)),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:   f.kind.Enum(),
		}
		if f.typeName != "" {
			field.TypeName = proto.String(f.typeName)
		}
		if f.repeated {
			field.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
		}
		if f.optional {
			// proto3 optional fields live in a synthetic oneof named _<field>
			field.Proto3Optional = proto.Bool(true)
			field.OneofIndex = proto.Int32(int32(len(synthetic)))
			synthetic = append(synthetic, &descriptorpb.OneofDescriptorProto{Name: proto.String("_" + f.name)})
		}
		desc.Field = append(desc.Field, field)
	}
	desc.OneofDecl = synthetic
	if m.signer != "" {
		desc.Options = &descriptorpb.MessageOptions{}
		proto.SetExtension(desc.Options, msgv1.E_Signer, []string{m.signer})
	}
	return desc
}

type protoMethod struct {
	name, input, output string
}

func serviceDescriptor(name string, msgService bool, methods []protoMethod) *descriptorpb.ServiceDescriptorProto {
	svc := &descriptorpb.ServiceDescriptorProto{Name: proto.String(name)}
	for _, m := range methods {
		svc.Method = append(svc.Method, &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(m.name),
			InputType:  proto.String("." + protoPackage + "." + m.input),
			OutputType: proto.String("." + protoPackage + "." + m.output),
		})
	}
	if msgService {
		svc.Options = &descriptorpb.ServiceOptions{}
		proto.SetExtension(svc.Options, msgv1.E_Service, true)
	}
	return svc
}

func gzipFile(fd *descriptorpb.FileDescriptorProto) []byte {
	bz, err := proto.MarshalOptions{Deterministic: true}.Marshal(fd)
	if err != nil {
		panic(err)
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(bz); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func buildFile(name string, deps []string, svc *descriptorpb.ServiceDescriptorProto, msgs []protoMessage) []byte {
	fd := &descriptorpb.FileDescriptorProto{
		Name:       proto.String(name),
		Package:    proto.String(protoPackage),
		Dependency: deps,
		Syntax:     proto.String("proto3"),
		Options:    &descriptorpb.FileOptions{GoPackage: proto.String(goPackage)},
		Service:    []*descriptorpb.ServiceDescriptorProto{svc},
	}
	for _, m := range msgs {
		fd.MessageType = append(fd.MessageType, m.descriptor())
	}
	return gzipFile(fd)
}

var txMessages = []protoMessage{
	{name: "MsgInitialize", signer: "owner", fields: []protoField{
		stringField("owner"), stringField("pool_account"),
		stringField("reward_mint"), stringField("credit_mint"), stringField("currency_mint"),
	}},
	{name: "MsgInitializeResponse", fields: []protoField{stringField("pool_account")}},
	{name: "MsgChangeLoanSettings", signer: "owner", fields: []protoField{
		stringField("owner"), stringField("pool_account"),
		optional(uint64Field("incentive")),
		optional(uint64Field("interest_rate")),
		optional(uint64Field("service_fee_rate")),
		optional(int64Field("max_loan_duration")),
		optional(uint64Field("mortgage_rate")),
	}},
	{name: "MsgChangeLoanSettingsResponse", fields: []protoField{
		uint64Field("incentive"), uint64Field("interest_rate"), uint64Field("service_fee_rate"),
		int64Field("max_loan_duration"), uint64Field("mortgage_rate"),
	}},
	{name: "MsgDepositNFT", signer: "borrower", fields: []protoField{
		stringField("borrower"), stringField("mint"), stringField("deposit_account"), stringField("deposit_id"),
	}},
	{name: "MsgDepositNFTResponse", fields: []protoField{uint64Field("incentive")}},
	{name: "MsgWithdrawNFT", signer: "borrower", fields: []protoField{
		stringField("borrower"), stringField("mint"), stringField("deposit_account"),
	}},
	{name: "MsgWithdrawNFTResponse"},
	{name: "MsgPlaceBid", signer: "lender", fields: []protoField{
		stringField("lender"), stringField("mint"), stringField("bid_account"), uint64Field("price"), uint64Field("qty"),
	}},
	{name: "MsgPlaceBidResponse"},
	{name: "MsgCancelBid", signer: "lender", fields: []protoField{
		stringField("lender"), stringField("mint"), stringField("bid_account"), boolField("revoke"),
	}},
	{name: "MsgCancelBidResponse"},
	{name: "MsgBorrow", signer: "borrower", fields: []protoField{
		stringField("borrower"), stringField("lender"), stringField("mint"),
		stringField("deposit_account"), stringField("bid_account"), uint64Field("amount"),
	}},
	{name: "MsgBorrowResponse", fields: []protoField{uint64Field("borrowed_amount"), int64Field("expired_at")}},
	{name: "MsgRepay", signer: "borrower", fields: []protoField{
		stringField("borrower"), stringField("mint"), stringField("deposit_account"),
	}},
	{name: "MsgRepayResponse", fields: []protoField{uint64Field("repayed_amount"), uint64Field("fee")}},
	{name: "MsgLiquidate", signer: "lender", fields: []protoField{
		stringField("lender"), stringField("borrower"), stringField("mint"), stringField("deposit_account"),
	}},
	{name: "MsgLiquidateResponse", fields: []protoField{uint64Field("withdrawable")}},
	{name: "MsgWithdrawLockedAsset", signer: "lender", fields: []protoField{
		stringField("lender"), stringField("borrower"), stringField("mint"), stringField("deposit_account"),
	}},
	{name: "MsgWithdrawLockedAssetResponse", fields: []protoField{uint64Field("amount")}},
}

var queryMessages = []protoMessage{
	{name: "QueryPoolRequest"},
	{name: "QueryPoolResponse", fields: []protoField{stringField("address"), bytesField("record")}},
	{name: "QueryBidRequest", fields: []protoField{stringField("mint"), stringField("lender")}},
	{name: "QueryBidResponse", fields: []protoField{stringField("address"), bytesField("record")}},
	{name: "QueryDepositRequest", fields: []protoField{stringField("mint"), stringField("borrower"), stringField("deposit_id")}},
	{name: "QueryDepositResponse", fields: []protoField{stringField("address"), stringField("status"), bytesField("record")}},
	{name: "ExpiredLoan", fields: []protoField{
		stringField("deposit_account"), stringField("lender"),
		uint64Field("total_amount"), uint64Field("borrowed_amount"), int64Field("expired_at"),
	}},
	{name: "QueryExpiredLoansRequest", fields: []protoField{stringField("lender")}},
	{name: "QueryExpiredLoansResponse", fields: []protoField{repeatedMessage("loans", "ExpiredLoan")}},
	{name: "QueryNextExpiryRequest"},
	{name: "QueryNextExpiryResponse", fields: []protoField{int64Field("expired_at"), boolField("found")}},
}

func msgMethods(names ...string) []protoMethod {
	out := make([]protoMethod, 0, len(names))
	for _, n := range names {
		out = append(out, protoMethod{name: n, input: "Msg" + n, output: "Msg" + n + "Response"})
	}
	return out
}

func queryMethods(names ...string) []protoMethod {
	out := make([]protoMethod, 0, len(names))
	for _, n := range names {
		out = append(out, protoMethod{name: n, input: "Query" + n + "Request", output: "Query" + n + "Response"})
	}
	return out
}

func init() {
	gogoproto.RegisterFile(TxProtoFile, buildFile(TxProtoFile, []string{msgProtoFile},
		serviceDescriptor("Msg", true, msgMethods(
			"Initialize", "ChangeLoanSettings", "DepositNFT", "WithdrawNFT", "PlaceBid",
			"CancelBid", "Borrow", "Repay", "Liquidate", "WithdrawLockedAsset",
		)), txMessages))
	gogoproto.RegisterFile(QueryProtoFile, buildFile(QueryProtoFile, nil,
		serviceDescriptor("Query", false, queryMethods(
			"Pool", "Bid", "Deposit", "ExpiredLoans", "NextExpiry",
		)), queryMessages))

	for _, m := range []gogoproto.Message{
		(*MsgInitialize)(nil), (*MsgInitializeResponse)(nil),
		(*MsgChangeLoanSettings)(nil), (*MsgChangeLoanSettingsResponse)(nil),
		(*MsgDepositNFT)(nil), (*MsgDepositNFTResponse)(nil),
		(*MsgWithdrawNFT)(nil), (*MsgWithdrawNFTResponse)(nil),
		(*MsgPlaceBid)(nil), (*MsgPlaceBidResponse)(nil),
		(*MsgCancelBid)(nil), (*MsgCancelBidResponse)(nil),
		(*MsgBorrow)(nil), (*MsgBorrowResponse)(nil),
		(*MsgRepay)(nil), (*MsgRepayResponse)(nil),
		(*MsgLiquidate)(nil), (*MsgLiquidateResponse)(nil),
		(*MsgWithdrawLockedAsset)(nil), (*MsgWithdrawLockedAssetResponse)(nil),
		(*QueryPoolRequest)(nil), (*QueryPoolResponse)(nil),
		(*QueryBidRequest)(nil), (*QueryBidResponse)(nil),
		(*QueryDepositRequest)(nil), (*QueryDepositResponse)(nil),
		(*ExpiredLoan)(nil),
		(*QueryExpiredLoansRequest)(nil), (*QueryExpiredLoansResponse)(nil),
		(*QueryNextExpiryRequest)(nil), (*QueryNextExpiryResponse)(nil),
	} {
		gogoproto.RegisterType(m, protoPackage+"."+reflect.TypeOf(m).Elem().Name())
	}
}
