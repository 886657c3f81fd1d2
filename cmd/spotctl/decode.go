package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"spotplan/internal/core/distribution"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [encoded|-]",
		Short: "Decode a stored distribution into JSON",
		Long: `Decodes the compact distribution string kept in the record store, or the
older JSON form, and prints it as JSON. Records that cannot be read are
listed on stderr. Use - to read the string from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded := args[0]
			if encoded == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				encoded = strings.TrimSpace(string(data))
			}

			d, report := distribution.Decode(encoded)
			for _, s := range report.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped record %d %q: %s\n", s.Index, s.Record, s.Reason)
			}
			if report.Err != nil {
				return report.Err
			}
			if report.Legacy {
				fmt.Fprintln(cmd.ErrOrStderr(), "read legacy JSON form")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		},
	}
}
