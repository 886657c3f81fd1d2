// Command spotctl plans spot distributions from the terminal without a
// record store: it renders the allocation grid, decodes stored strings and
// computes impact.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "spotctl",
		Short:         "Plan and inspect ad spot distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPlanCmd(), newDecodeCmd(), newImpactCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
