package distribution

import "spotplan/internal/core/domain"

// Summary holds the live statistics shown next to the grid.
type Summary struct {
	Scheduled  domain.Quantities `json:"scheduled"`
	TotalSpots int               `json:"total_spots"`
	ActiveDays int               `json:"active_days"`
	PeakDate   string            `json:"peak_date,omitempty"`
	PeakTotal  int               `json:"peak_total"`
	Impact     int               `json:"impact"`
	Drift      []Drift           `json:"drift,omitempty"`
}

// QuantitiesChanged reports whether the grid no longer matches the
// contracted quantities.
func (s Summary) QuantitiesChanged() bool {
	return len(s.Drift) > 0
}

// Summarize computes the statistics of d against the campaign. Impact is
// computed from the scheduled quantities.
func Summarize(spec domain.CampaignSpec, d domain.Distribution) Summary {
	s := Summary{Scheduled: SumByProduct(d)}
	for _, date := range d.Dates() {
		total := d[date].Sum()
		if total <= 0 {
			continue
		}
		s.TotalSpots += total
		s.ActiveDays++
		if total > s.PeakTotal {
			s.PeakTotal = total
			s.PeakDate = date
		}
	}
	s.Impact = Impact(s.Scheduled, spec.ImpactWeight)
	s.Drift = CompareQuantities(spec.Quantities, d)
	return s
}
