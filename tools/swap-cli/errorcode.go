package main

import (
	"fmt"
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/spf13/cobra"

	"github.com/tokenswap/tokenswap/packages/swap/swaperrors"
)

func newErrorCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "error [code]",
		Short: "Explain a custom error code returned by the program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if all {
				for _, e := range swaperrors.All() {
					fmt.Fprintf(out, "%d %s: %s\n", uint32(e), e.Name(), e.Error())
				}
				return nil
			}
			if len(args) == 0 {
				return ierrors.New("missing error code")
			}
			code, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return ierrors.Wrapf(err, "invalid error code %q", args[0])
			}
			if _, ok := swaperrors.Decode(uint32(code)); !ok {
				return ierrors.Errorf("unknown error code %d", code)
			}
			e := swaperrors.SwapError(code)
			fmt.Fprintf(out, "%d %s: %s\n", code, e.Name(), e.Error())
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every error code")
	return cmd
}
