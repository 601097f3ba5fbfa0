package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/liqz/x/liqz/types"
)

// GetQueryCmd returns the cli query commands for the liqz module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the liqz module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdPoolAddress(),
		CmdBidAddress(),
		CmdDepositAddress(),
		CmdDecodeError(),
		CmdQueryPool(),
		CmdQueryBid(),
		CmdQueryDeposit(),
		CmdQueryExpiredLoans(),
		CmdQueryNextExpiry(),
	)

	return cmd
}

type addressOutput struct {
	Address string `json:"address"`
	Bump    uint8  `json:"bump"`
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// CmdPoolAddress returns the command to derive the pool address
func CmdPoolAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "pool-address",
		Short: "Derive the pool address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, bump := types.PoolAddress()
			return printJSON(cmd, addressOutput{Address: addr.String(), Bump: bump})
		},
	}
}

// CmdBidAddress returns the command to derive a bid address
func CmdBidAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "bid-address [mint] [lender]",
		Short: "Derive the bid address of a lender for a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lender, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return fmt.Errorf("invalid lender: %v", err)
			}
			addr, bump := types.BidAddress(args[0], lender)
			return printJSON(cmd, addressOutput{Address: addr.String(), Bump: bump})
		},
	}
}

// CmdDepositAddress returns the command to derive a deposit address
func CmdDepositAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit-address [mint] [borrower] [deposit-id]",
		Short: "Derive the address of a deposit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			borrower, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return fmt.Errorf("invalid borrower: %v", err)
			}
			id, err := types.DecodeDepositID(args[2])
			if err != nil {
				return err
			}
			addr, bump := types.DepositAddress(args[0], borrower, id)
			return printJSON(cmd, addressOutput{Address: addr.String(), Bump: bump})
		},
	}
}

// CmdDecodeError returns the command to decode a module error code
func CmdDecodeError() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-error [code]",
		Short: "Describe a liqz error code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid code: %v", err)
			}
			e, ok := types.ErrorFromCode(uint32(code))
			if !ok {
				return fmt.Errorf("code %d is not a %s error", code, types.ModuleName)
			}
			return printJSON(cmd, map[string]interface{}{
				"codespace": e.Codespace(),
				"code":      e.ABCICode(),
				"message":   e.Error(),
			})
		},
	}
}

func queryRecord(cmd *cobra.Command, key []byte) ([]byte, error) {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return nil, err
	}
	bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
	if err != nil {
		return nil, err
	}
	if len(bz) == 0 {
		return nil, fmt.Errorf("no record at key %X", key)
	}
	return bz, nil
}

// CmdQueryPool returns the command to read the pool record
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Show the pool configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := types.PoolAddress()
			bz, err := queryRecord(cmd, types.PoolKey(addr))
			if err != nil {
				return err
			}
			pool, err := types.UnmarshalPool(bz)
			if err != nil {
				return err
			}
			return printJSON(cmd, pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryBid returns the command to read a bid record
func CmdQueryBid() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bid [mint] [lender]",
		Short: "Show a lender's bid for a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lender, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return fmt.Errorf("invalid lender: %v", err)
			}
			addr, _ := types.BidAddress(args[0], lender)
			bz, err := queryRecord(cmd, types.BidKey(addr))
			if err != nil {
				return err
			}
			bid, err := types.UnmarshalBid(bz)
			if err != nil {
				return err
			}
			return printJSON(cmd, bid)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryDeposit returns the command to read a deposit record
func CmdQueryDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [mint] [borrower] [deposit-id]",
		Short: "Show a deposit and its loan state",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			borrower, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return fmt.Errorf("invalid borrower: %v", err)
			}
			id, err := types.DecodeDepositID(args[2])
			if err != nil {
				return err
			}
			addr, _ := types.DepositAddress(args[0], borrower, id)
			bz, err := queryRecord(cmd, types.DepositKey(addr))
			if err != nil {
				return err
			}
			deposit, err := types.UnmarshalDeposit(bz)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{
				"address": addr.String(),
				"status":  deposit.Status.String(),
				"record":  deposit,
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryExpiredLoans returns the command to list liquidatable loans
func CmdQueryExpiredLoans() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expired-loans",
		Short: "List active loans past expiry, earliest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			lender, err := cmd.Flags().GetString(FlagLender)
			if err != nil {
				return err
			}
			res, err := types.NewQueryClient(clientCtx).ExpiredLoans(cmd.Context(), &types.QueryExpiredLoansRequest{Lender: lender})
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}

	cmd.Flags().String(FlagLender, "", "Only list loans of this lender")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryNextExpiry returns the command to show the earliest loan expiry
func CmdQueryNextExpiry() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next-expiry",
		Short: "Show the earliest expiry among active loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			res, err := types.NewQueryClient(clientCtx).NextExpiry(cmd.Context(), &types.QueryNextExpiryRequest{})
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
