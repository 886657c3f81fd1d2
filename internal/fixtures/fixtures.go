// Package fixtures embeds the example campaign shown when the calendar is
// opened without a record.
package fixtures

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"spotplan/internal/core/domain"
)

//go:embed example_campaign.yaml
var exampleCampaign []byte

// Campaign is the YAML shape of a campaign definition.
type Campaign struct {
	Station    string         `yaml:"station"`
	Start      string         `yaml:"start"`
	End        string         `yaml:"end"`
	Weekdays   []string       `yaml:"weekdays"`
	PMM        float64        `yaml:"pmm"`
	Quantities map[string]int `yaml:"quantities"`
}

// Spec converts c into a campaign spec with defaults applied.
func (c Campaign) Spec() (domain.CampaignSpec, error) {
	spec := domain.CampaignSpec{
		Quantities:   domain.Quantities{},
		ImpactWeight: c.PMM,
		StationName:  c.Station,
	}
	var err error
	if spec.PeriodStart, err = domain.ParseDate(c.Start); err != nil {
		return spec, fmt.Errorf("start: %w", err)
	}
	if spec.PeriodEnd, err = domain.ParseDate(c.End); err != nil {
		return spec, fmt.Errorf("end: %w", err)
	}
	if spec.Weekdays, err = domain.ParseWeekdayList(c.Weekdays); err != nil {
		return spec, err
	}
	for code, n := range c.Quantities {
		p, err := domain.ParseProduct(code)
		if err != nil {
			return spec, err
		}
		spec.Quantities[p] = n
	}
	return spec.WithDefaults(), nil
}

// Parse reads a campaign definition.
func Parse(data []byte) (domain.CampaignSpec, error) {
	var c Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return domain.CampaignSpec{}, fmt.Errorf("parse campaign: %w", err)
	}
	return c.Spec()
}

// ExampleCampaign returns the embedded example campaign.
func ExampleCampaign() (domain.CampaignSpec, error) {
	return Parse(exampleCampaign)
}
