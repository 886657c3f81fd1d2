package distribution

import (
	"fmt"
	"time"

	"spotplan/internal/core/domain"
)

// MonthFrame is one calendar month of a distribution laid out for export.
type MonthFrame struct {
	Year     int               `json:"year"`
	Month    time.Month        `json:"month"`
	Products []domain.Product  `json:"products"`
	Days     []FrameDay        `json:"days"`
	Totals   domain.Quantities `json:"totals"`
}

// FrameDay is one column of a MonthFrame.
type FrameDay struct {
	Day      int                    `json:"day"`
	Weekday  string                 `json:"weekday"`
	Date     string                 `json:"date"`
	Valid    bool                   `json:"valid"`
	Products map[domain.Product]int `json:"products"`
	Total    int                    `json:"total"`
}

// Month lays out every day of the given month, at most 31 columns. Days that
// are not valid campaign days are present but marked invalid and empty.
func Month(spec domain.CampaignSpec, d domain.Distribution, year int, month time.Month) (MonthFrame, error) {
	if month < time.January || month > time.December {
		return MonthFrame{}, fmt.Errorf("invalid month %d", month)
	}
	valid := map[string]bool{}
	for _, day := range ValidDays(spec.PeriodStart, spec.PeriodEnd, spec.Weekdays) {
		valid[domain.DateKey(day)] = true
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	frame := MonthFrame{Year: year, Month: month, Totals: domain.Quantities{}}
	active := map[domain.Product]bool{}
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		key := domain.DateKey(day)
		fd := FrameDay{
			Day:      day.Day(),
			Weekday:  domain.WeekdayName(day.Weekday()),
			Date:     key,
			Valid:    valid[key],
			Products: map[domain.Product]int{},
		}
		for p, v := range d[key].Products {
			if v <= 0 {
				continue
			}
			fd.Products[p] = v
			fd.Total += v
			frame.Totals[p] += v
			active[p] = true
		}
		frame.Days = append(frame.Days, fd)
	}
	for _, p := range domain.Products {
		if active[p] || spec.Quantities[p] > 0 {
			frame.Products = append(frame.Products, p)
		}
	}
	return frame, nil
}

// Months lists the first day of every month touched by the campaign period.
func Months(spec domain.CampaignSpec) []time.Time {
	start, end := domain.Midnight(spec.PeriodStart), domain.Midnight(spec.PeriodEnd)
	var out []time.Time
	for m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !m.After(end); m = m.AddDate(0, 1, 0) {
		out = append(out, m)
	}
	return out
}
