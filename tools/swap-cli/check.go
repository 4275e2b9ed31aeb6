package main

import (
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tokenswap/tokenswap/packages/entrypoint"
	"github.com/tokenswap/tokenswap/packages/isc"
	"github.com/tokenswap/tokenswap/packages/swap/instruction"
	"github.com/tokenswap/tokenswap/packages/swap/processor"
)

func accept[T instruction.Instruction](out io.Writer) processor.Handler {
	return processor.Handle(func(ctx *processor.Context, ins T) error {
		fmt.Fprintf(out, "accepted %s %+v with %d accounts\n", ins.Kind(), ins, len(ctx.Accounts))
		return nil
	})
}

// dryRunHandlers accept every instruction that reaches the pool logic.
func dryRunHandlers(out io.Writer) []processor.Handler {
	return []processor.Handler{
		accept[instruction.Initialize](out),
		accept[instruction.Swap](out),
		accept[instruction.DepositAllTokenTypes](out),
		accept[instruction.WithdrawAllTokenTypes](out),
		accept[instruction.DepositSingleTokenTypeExactAmountIn](out),
		accept[instruction.WithdrawSingleTokenTypeExactAmountOut](out),
	}
}

func newCheckCmd() *cobra.Command {
	var numAccounts int
	cmd := &cobra.Command{
		Use:   "check <data>",
		Short: "Run instruction data through the program entrypoint without pool logic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseData(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			accounts := lo.Times(numAccounts, func(int) *isc.AccountInfo {
				return isc.NewAccountInfo(solana.NewWallet().PublicKey(), false, true)
			})
			programID := solana.NewWallet().PublicKey()

			err = entrypoint.NewDefault(dryRunHandlers(out)...).ProcessInstruction(programID, accounts, data)
			if err != nil {
				fmt.Fprintf(out, "rejected: %s (host code %#x)\n", err, uint64(isc.ToProgramError(err)))
				return err
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&numAccounts, "accounts", 11, "number of accounts passed with the instruction")
	return cmd
}
