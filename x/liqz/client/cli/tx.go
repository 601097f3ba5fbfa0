package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

const (
	FlagDepositID       = "deposit-id"
	FlagRevoke          = "revoke"
	FlagIncentive       = "incentive"
	FlagInterestRate    = "interest-rate"
	FlagServiceFeeRate  = "service-fee-rate"
	FlagMaxLoanDuration = "max-loan-duration"
	FlagMortgageRate    = "mortgage-rate"
	FlagLender          = "lender"
)

// GetTxCmd returns the transaction commands for the liqz module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "NFT lending transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdInitialize(),
		CmdChangeLoanSettings(),
		CmdDepositNFT(),
		CmdWithdrawNFT(),
		CmdPlaceBid(),
		CmdCancelBid(),
		CmdBorrow(),
		CmdRepay(),
		CmdLiquidate(),
		CmdWithdrawLockedAsset(),
	)

	return cmd
}

// NewDepositID returns a fresh random deposit id, hex encoded
func NewDepositID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

func depositAccount(mint string, borrower sdk.AccAddress, depositIDHex string) (string, error) {
	id, err := types.DecodeDepositID(depositIDHex)
	if err != nil {
		return "", err
	}
	addr, _ := types.DepositAddress(mint, borrower, id)
	return addr.String(), nil
}

func parseUint(name, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return v, nil
}

// CmdInitialize returns the command to create the pool
func CmdInitialize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize [reward-mint] [credit-mint] [currency-mint]",
		Short: "Create the lending pool and its escrow accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pool, _ := types.PoolAddress()
			msg := &types.MsgInitialize{
				Owner:        clientCtx.GetFromAddress().String(),
				PoolAccount:  pool.String(),
				RewardMint:   args[0],
				CreditMint:   args[1],
				CurrencyMint: args[2],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdChangeLoanSettings returns the command to update pool parameters
func CmdChangeLoanSettings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-loan-settings",
		Short: "Update loan settings; only flags that are set change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			var settings types.LoanSettings
			fs := cmd.Flags()
			for flag, dst := range map[string]**uint64{
				FlagIncentive:      &settings.Incentive,
				FlagInterestRate:   &settings.InterestRate,
				FlagServiceFeeRate: &settings.ServiceFeeRate,
				FlagMortgageRate:   &settings.MortgageRate,
			} {
				if !fs.Changed(flag) {
					continue
				}
				v, err := fs.GetUint64(flag)
				if err != nil {
					return err
				}
				*dst = &v
			}
			if fs.Changed(FlagMaxLoanDuration) {
				v, err := fs.GetInt64(FlagMaxLoanDuration)
				if err != nil {
					return err
				}
				settings.MaxLoanDuration = &v
			}

			pool, _ := types.PoolAddress()
			msg := &types.MsgChangeLoanSettings{
				Owner:           clientCtx.GetFromAddress().String(),
				PoolAccount:     pool.String(),
				Incentive:       settings.Incentive,
				InterestRate:    settings.InterestRate,
				ServiceFeeRate:  settings.ServiceFeeRate,
				MaxLoanDuration: settings.MaxLoanDuration,
				MortgageRate:    settings.MortgageRate,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint64(FlagIncentive, 0, "Reward tokens paid per deposit, in smallest units")
	cmd.Flags().Uint64(FlagInterestRate, 0, "Daily interest rate in basis points")
	cmd.Flags().Uint64(FlagServiceFeeRate, 0, "Share of interest taken as service fee, in basis points")
	cmd.Flags().Int64(FlagMaxLoanDuration, 0, "Maximum loan duration in seconds")
	cmd.Flags().Uint64(FlagMortgageRate, 0, "Share of the loan paid to the borrower, in basis points")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDepositNFT returns the command to deposit an NFT
func CmdDepositNFT() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit-nft [mint]",
		Short: "Escrow one NFT and collect the deposit incentive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			depositID, _ := cmd.Flags().GetString(FlagDepositID)
			if depositID == "" {
				depositID = NewDepositID()
			}
			borrower := clientCtx.GetFromAddress()
			account, err := depositAccount(args[0], borrower, depositID)
			if err != nil {
				return err
			}

			msg := &types.MsgDepositNFT{
				Borrower:       borrower.String(),
				Mint:           args[0],
				DepositAccount: account,
				DepositID:      depositID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "deposit id %s at %s\n", depositID, account)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagDepositID, "", "Hex deposit id (random when empty)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawNFT returns the command to withdraw a deposited NFT
func CmdWithdrawNFT() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-nft [mint] [deposit-id]",
		Short: "Take back an NFT that never backed a loan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			borrower := clientCtx.GetFromAddress()
			account, err := depositAccount(args[0], borrower, args[1])
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawNFT{
				Borrower:       borrower.String(),
				Mint:           args[0],
				DepositAccount: account,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPlaceBid returns the command to place a bid
func CmdPlaceBid() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place-bid [mint] [price] [qty]",
		Short: "Offer to fund qty loans of up to price against a collection",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			price, err := parseUint("price", args[1])
			if err != nil {
				return err
			}
			qty, err := parseUint("qty", args[2])
			if err != nil {
				return err
			}
			lender := clientCtx.GetFromAddress()
			bid, _ := types.BidAddress(args[0], lender)

			msg := &types.MsgPlaceBid{
				Lender:     lender.String(),
				Mint:       args[0],
				BidAccount: bid.String(),
				Price:      price,
				Qty:        qty,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelBid returns the command to cancel a bid
func CmdCancelBid() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-bid [mint]",
		Short: "Cancel a bid, optionally revoking the pool allowance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			revoke, _ := cmd.Flags().GetBool(FlagRevoke)
			lender := clientCtx.GetFromAddress()
			bid, _ := types.BidAddress(args[0], lender)

			msg := &types.MsgCancelBid{
				Lender:     lender.String(),
				Mint:       args[0],
				BidAccount: bid.String(),
				Revoke:     revoke,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagRevoke, false, "Also revoke the pool's spending allowance")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBorrow returns the command to borrow against a deposit
func CmdBorrow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "borrow [mint] [lender] [deposit-id] [amount]",
		Short: "Borrow against a deposited NFT using a lender's bid",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			lender, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return fmt.Errorf("invalid lender: %v", err)
			}
			amount, err := parseUint("amount", args[3])
			if err != nil {
				return err
			}
			borrower := clientCtx.GetFromAddress()
			account, err := depositAccount(args[0], borrower, args[2])
			if err != nil {
				return err
			}
			bid, _ := types.BidAddress(args[0], lender)

			msg := &types.MsgBorrow{
				Borrower:       borrower.String(),
				Lender:         lender.String(),
				Mint:           args[0],
				DepositAccount: account,
				BidAccount:     bid.String(),
				Amount:         amount,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRepay returns the command to repay a loan
func CmdRepay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repay [mint] [deposit-id]",
		Short: "Repay an active loan and take back the NFT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			borrower := clientCtx.GetFromAddress()
			account, err := depositAccount(args[0], borrower, args[1])
			if err != nil {
				return err
			}

			msg := &types.MsgRepay{
				Borrower:       borrower.String(),
				Mint:           args[0],
				DepositAccount: account,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// lenderMsgArgs resolves the [mint] [borrower] [deposit-id] arguments shared by lender commands
func lenderMsgArgs(args []string) (borrower sdk.AccAddress, account string, err error) {
	borrower, err = sdk.AccAddressFromBech32(args[1])
	if err != nil {
		return nil, "", fmt.Errorf("invalid borrower: %v", err)
	}
	account, err = depositAccount(args[0], borrower, args[2])
	return borrower, account, err
}

// CmdLiquidate returns the command to liquidate an expired loan
func CmdLiquidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidate [mint] [borrower] [deposit-id]",
		Short: "Claim the NFT of an expired loan",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			borrower, account, err := lenderMsgArgs(args)
			if err != nil {
				return err
			}

			msg := &types.MsgLiquidate{
				Lender:         clientCtx.GetFromAddress().String(),
				Borrower:       borrower.String(),
				Mint:           args[0],
				DepositAccount: account,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawLockedAsset returns the command to settle a repaid loan
func CmdWithdrawLockedAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-locked-asset [mint] [borrower] [deposit-id]",
		Short: "Return credit tokens and collect a repaid loan",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			borrower, account, err := lenderMsgArgs(args)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawLockedAsset{
				Lender:         clientCtx.GetFromAddress().String(),
				Borrower:       borrower.String(),
				Mint:           args[0],
				DepositAccount: account,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
