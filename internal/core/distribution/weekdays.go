package distribution

import (
	"time"

	"spotplan/internal/core/domain"
)

// ValidDays returns every day between start and end inclusive whose weekday
// is selected, in chronological order. An empty result means the campaign
// cannot be scheduled.
func ValidDays(start, end time.Time, weekdays []time.Weekday) []time.Time {
	var selected [7]bool
	for _, w := range weekdays {
		selected[w%7] = true
	}
	start, end = domain.Midnight(start), domain.Midnight(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if selected[d.Weekday()] {
			days = append(days, d)
		}
	}
	return days
}

// ValidDaysFor is ValidDays for a campaign. It returns domain.ErrNoValidDays
// when nothing qualifies.
func ValidDaysFor(spec domain.CampaignSpec) ([]time.Time, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	days := ValidDays(spec.PeriodStart, spec.PeriodEnd, spec.Weekdays)
	if len(days) == 0 {
		return nil, domain.ErrNoValidDays
	}
	return days, nil
}

// DateKeys formats days as Distribution keys.
func DateKeys(days []time.Time) []string {
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = domain.DateKey(d)
	}
	return keys
}
