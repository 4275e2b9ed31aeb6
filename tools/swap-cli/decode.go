package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokenswap/tokenswap/packages/swap/instruction"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <data>",
		Short: "Decode instruction data (base58 or 0x-hex)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseData(args[0])
			if err != nil {
				return err
			}
			ins, err := instruction.Unpack(data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %+v\n", ins.Kind(), ins)
			return nil
		},
	}
}
