package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spotplan/internal/core/distribution"
	"spotplan/internal/core/domain"
	"spotplan/internal/fixtures"
)

type planOptions struct {
	file     string
	start    string
	end      string
	weekdays string
	pmm      float64
	station  string
	limit    int
}

func newPlanCmd() *cobra.Command {
	var opts planOptions
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Allocate a campaign and print the grid",
		Long: `Allocates the contracted spots over the valid days of the period and
prints one grid per month, the impact and the encoded distribution.

Without --inicio and --fim the example campaign is used, or the campaign
read from --file. Product flags override its quantities.`,
		Args: cobra.NoArgs,
	}
	quantities := addQuantityFlags(cmd)
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "campaign YAML file")
	cmd.Flags().StringVar(&opts.start, "inicio", "", "first day, DD/MM/YYYY or YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.end, "fim", "", "last day, DD/MM/YYYY or YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.weekdays, "dias", "", "broadcast weekdays, e.g. Seg.,Qua.,Sex.")
	cmd.Flags().Float64Var(&opts.pmm, "pmm", 0, "impact weight")
	cmd.Flags().StringVar(&opts.station, "emissora", "", "station name")
	cmd.Flags().IntVar(&opts.limit, "limit", distribution.FieldCapacity, "encoded field capacity")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		spec, err := opts.spec()
		if err != nil {
			return err
		}
		if quantities.set(cmd) {
			spec.Quantities = quantities.quantities()
		}
		if err = spec.Validate(); err != nil {
			return err
		}
		days, err := distribution.ValidDaysFor(spec)
		if err != nil {
			return err
		}
		d := distribution.Allocate(spec.Quantities, days)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s a %s  %s\n\n", spec.StationName,
			domain.FormatDisplay(spec.PeriodStart), domain.FormatDisplay(spec.PeriodEnd),
			joinNames(domain.WeekdayNames(spec.Weekdays)))
		for _, m := range distribution.Months(spec) {
			frame, err := distribution.Month(spec, d, m.Year(), m.Month())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, renderMonth(frame))
		}

		fmt.Fprintf(out, "Impacto: %d\n", distribution.Impact(spec.Quantities, spec.ImpactWeight))
		encoded, err := distribution.EncodeWithin(d, opts.limit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Distribuição (%d caracteres): %s\n", len([]rune(encoded)), encoded)
		return nil
	}
	return cmd
}

// spec builds the campaign from the file or the example, then applies the
// period flags on top of it.
func (o planOptions) spec() (domain.CampaignSpec, error) {
	var (
		spec domain.CampaignSpec
		err  error
	)
	if o.file != "" {
		data, err := os.ReadFile(o.file)
		if err != nil {
			return spec, err
		}
		spec, err = fixtures.Parse(data)
		if err != nil {
			return spec, err
		}
	} else if spec, err = fixtures.ExampleCampaign(); err != nil {
		return spec, err
	}

	if o.start != "" {
		if spec.PeriodStart, err = domain.ParseDate(o.start); err != nil {
			return spec, fmt.Errorf("--inicio: %w", err)
		}
	}
	if o.end != "" {
		if spec.PeriodEnd, err = domain.ParseDate(o.end); err != nil {
			return spec, fmt.Errorf("--fim: %w", err)
		}
	}
	if o.weekdays != "" {
		if spec.Weekdays, err = domain.ParseWeekdays(o.weekdays); err != nil {
			return spec, err
		}
	}
	if o.pmm != 0 {
		spec.ImpactWeight = o.pmm
	}
	if o.station != "" {
		spec.StationName = o.station
	}
	return spec.WithDefaults(), nil
}
