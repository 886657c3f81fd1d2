package httpadapter

import (
	"fmt"

	"spotplan/internal/core/distribution"
	"spotplan/internal/core/domain"
	"spotplan/internal/core/port"
)

type campaignView struct {
	Station    string            `json:"station"`
	Start      string            `json:"start"`
	End        string            `json:"end"`
	Weekdays   []string          `json:"weekdays"`
	PMM        float64           `json:"pmm"`
	Quantities domain.Quantities `json:"quantities"`
	Products   []domain.Product  `json:"products"`
}

type planView struct {
	RecordID     string                       `json:"record_id,omitempty"`
	Campaign     campaignView                 `json:"campaign"`
	ValidDays    []string                     `json:"valid_days"`
	Distribution domain.Distribution          `json:"distribution"`
	Source       string                       `json:"source"`
	Impact       int                          `json:"impact"`
	Summary      distribution.Summary         `json:"summary"`
	Skipped      []distribution.SkippedRecord `json:"skipped,omitempty"`
}

func newPlanView(p *port.Plan) planView {
	return planView{
		RecordID: p.RecordID,
		Campaign: campaignView{
			Station:    p.Spec.StationName,
			Start:      domain.DateKey(p.Spec.PeriodStart),
			End:        domain.DateKey(p.Spec.PeriodEnd),
			Weekdays:   domain.WeekdayNames(p.Spec.Weekdays),
			PMM:        p.Spec.ImpactWeight,
			Quantities: p.Spec.Quantities,
			Products:   p.Spec.Quantities.Active(),
		},
		ValidDays:    p.ValidDays,
		Distribution: p.Distribution,
		Source:       p.Source,
		Impact:       p.Impact,
		Summary:      p.Summary,
		Skipped:      p.Skipped,
	}
}

// parseQuantities reads product counts keyed by product code.
func parseQuantities(in map[string]int) (domain.Quantities, error) {
	q := domain.Quantities{}
	for code, n := range in {
		p, err := domain.ParseProduct(code)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative quantity for %s", errBadInput, p)
		}
		q[p] = n
	}
	return q, nil
}
