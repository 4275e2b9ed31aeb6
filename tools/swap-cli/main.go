package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "swap-cli",
		Short:        "swap-cli inspects and builds token-swap instruction data",
		SilenceUsage: true,
	}
	root.AddCommand(
		newDecodeCmd(),
		newEncodeCmd(),
		newErrorCmd(),
		newCheckCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
