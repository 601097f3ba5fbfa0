package liqz

import (
	"encoding/json"

	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"github.com/spf13/cobra"

	"github.com/openalpha/liqz/x/liqz/client/cli"
	"github.com/openalpha/liqz/x/liqz/keeper"
	"github.com/openalpha/liqz/x/liqz/types"
)

const (
	ModuleName = types.ModuleName
)

var (
	_ module.AppModuleBasic = AppModuleBasic{}
	_ appmodule.AppModule   = AppModule{}
	_ module.HasServices    = AppModule{}
)

// AppModuleBasic defines the basic application module for liqz
type AppModuleBasic struct{}

// Name returns the module's name
func (AppModuleBasic) Name() string {
	return ModuleName
}

// RegisterLegacyAminoCodec registers the module's types on the given LegacyAmino codec
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&types.MsgInitialize{}, "liqz/MsgInitialize", nil)
	cdc.RegisterConcrete(&types.MsgChangeLoanSettings{}, "liqz/MsgChangeLoanSettings", nil)
	cdc.RegisterConcrete(&types.MsgDepositNFT{}, "liqz/MsgDepositNFT", nil)
	cdc.RegisterConcrete(&types.MsgWithdrawNFT{}, "liqz/MsgWithdrawNFT", nil)
	cdc.RegisterConcrete(&types.MsgPlaceBid{}, "liqz/MsgPlaceBid", nil)
	cdc.RegisterConcrete(&types.MsgCancelBid{}, "liqz/MsgCancelBid", nil)
	cdc.RegisterConcrete(&types.MsgBorrow{}, "liqz/MsgBorrow", nil)
	cdc.RegisterConcrete(&types.MsgRepay{}, "liqz/MsgRepay", nil)
	cdc.RegisterConcrete(&types.MsgLiquidate{}, "liqz/MsgLiquidate", nil)
	cdc.RegisterConcrete(&types.MsgWithdrawLockedAsset{}, "liqz/MsgWithdrawLockedAsset", nil)
}

// RegisterInterfaces registers the module's interface types
func (AppModuleBasic) RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	types.RegisterInterfaces(registry)
}

// DefaultGenesis returns default genesis state as raw bytes. The pool is created
// by MsgInitialize, not at genesis.
func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	return nil
}

// ValidateGenesis performs genesis state validation
func (AppModuleBasic) ValidateGenesis(cdc codec.JSONCodec, config client.TxEncodingConfig, bz json.RawMessage) error {
	return nil
}

// RegisterGRPCGatewayRoutes registers the gRPC Gateway routes for the module
func (AppModuleBasic) RegisterGRPCGatewayRoutes(clientCtx client.Context, mux *runtime.ServeMux) {
}

// GetTxCmd returns the root tx command for the module
func (AppModuleBasic) GetTxCmd() *cobra.Command {
	return cli.GetTxCmd()
}

// GetQueryCmd returns the root query command for the module
func (AppModuleBasic) GetQueryCmd() *cobra.Command {
	return cli.GetQueryCmd()
}

// AppModule implements an application module for the liqz module
type AppModule struct {
	AppModuleBasic
	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(k *keeper.Keeper) AppModule {
	return AppModule{
		AppModuleBasic: AppModuleBasic{},
		keeper:         k,
	}
}

// Name returns the module's name
func (am AppModule) Name() string {
	return ModuleName
}

// RegisterServices registers module services
func (am AppModule) RegisterServices(cfg module.Configurator) {
	types.RegisterMsgServer(cfg.MsgServer(), keeper.NewMsgServerImpl(am.keeper))
	types.RegisterQueryServer(cfg.QueryServer(), keeper.NewQuerier(am.keeper))
}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface
func (am AppModule) IsOnePerModuleType() {}

// IsAppModule implements the appmodule.AppModule interface
func (am AppModule) IsAppModule() {}
