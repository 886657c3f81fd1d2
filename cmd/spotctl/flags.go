package main

import (
	"github.com/spf13/cobra"

	"spotplan/internal/core/domain"
)

// quantityFlags binds one integer flag per product.
type quantityFlags map[domain.Product]*int

func addQuantityFlags(cmd *cobra.Command) quantityFlags {
	q := quantityFlags{}
	for _, p := range domain.Products {
		q[p] = cmd.Flags().Int(string(p), 0, p.Label()+" spots")
	}
	return q
}

func (q quantityFlags) set(cmd *cobra.Command) bool {
	for p := range q {
		if cmd.Flags().Changed(string(p)) {
			return true
		}
	}
	return false
}

func (q quantityFlags) quantities() domain.Quantities {
	out := domain.Quantities{}
	for p, n := range q {
		if *n != 0 {
			out[p] = *n
		}
	}
	return out
}
