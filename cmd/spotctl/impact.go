package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spotplan/internal/core/distribution"
	"spotplan/internal/core/domain"
)

func newImpactCmd() *cobra.Command {
	var pmm float64
	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Compute the impact of spot quantities",
		Args:  cobra.NoArgs,
	}
	quantities := addQuantityFlags(cmd)
	cmd.Flags().Float64Var(&pmm, "pmm", domain.DefaultImpactWeight, "impact weight")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if pmm <= 0 {
			return fmt.Errorf("--pmm must be positive, got %v", pmm)
		}
		q := quantities.quantities()
		for p, n := range q {
			if n < 0 {
				return fmt.Errorf("--%s must not be negative", p)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), distribution.Impact(q, pmm))
		return nil
	}
	return cmd
}
