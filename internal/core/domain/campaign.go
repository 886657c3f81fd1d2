package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPeriod = errors.New("invalid campaign period")
	ErrNoWeekdays    = errors.New("no broadcast weekdays selected")
	ErrNoValidDays   = errors.New("campaign has no valid days")
	ErrInvalidSpec   = errors.New("invalid campaign")
)

// DefaultImpactWeight is the PMM used when a campaign does not define one.
const DefaultImpactWeight = 1000

// DefaultStationName labels campaigns without a station.
const DefaultStationName = "Emissora"

// Period used when a campaign is stored or requested without dates.
var (
	DefaultPeriodStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultPeriodEnd   = time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
)

// CampaignSpec is the immutable description of a campaign for one editing
// session. Dates are midnight UTC and the period is inclusive.
type CampaignSpec struct {
	Quantities   Quantities
	PeriodStart  time.Time
	PeriodEnd    time.Time
	Weekdays     []time.Weekday
	ImpactWeight float64 // PMM
	StationName  string
}

// Validate reports configuration errors that make the campaign impossible to
// render. It does not check that the period contains a selected weekday.
func (c CampaignSpec) Validate() error {
	if c.PeriodStart.IsZero() || c.PeriodEnd.IsZero() {
		return fmt.Errorf("%w: missing start or end date", ErrInvalidPeriod)
	}
	if c.PeriodEnd.Before(c.PeriodStart) {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidPeriod,
			FormatDisplay(c.PeriodEnd), FormatDisplay(c.PeriodStart))
	}
	if len(c.Weekdays) == 0 {
		return ErrNoWeekdays
	}
	for p, n := range c.Quantities {
		if n < 0 {
			return fmt.Errorf("%w: negative quantity for %s: %d", ErrInvalidSpec, p, n)
		}
	}
	if c.ImpactWeight <= 0 {
		return fmt.Errorf("%w: impact weight must be positive, got %v", ErrInvalidSpec, c.ImpactWeight)
	}
	return nil
}

// WithDefaults fills the optional fields that were left empty.
func (c CampaignSpec) WithDefaults() CampaignSpec {
	if c.Quantities == nil {
		c.Quantities = Quantities{}
	}
	if c.ImpactWeight == 0 {
		c.ImpactWeight = DefaultImpactWeight
	}
	if c.StationName == "" {
		c.StationName = DefaultStationName
	}
	if len(c.Weekdays) == 0 {
		c.Weekdays = append([]time.Weekday(nil), DefaultWeekdays...)
	}
	c.PeriodStart = Midnight(c.PeriodStart)
	c.PeriodEnd = Midnight(c.PeriodEnd)
	return c
}

// CampaignRecord is a campaign as read from the record store, with defaults
// already applied by the gateway.
type CampaignRecord struct {
	ID                 string
	Spec               CampaignSpec
	CustomDistribution string // encoded, may be empty
}
