package distribution

import (
	"errors"
	"fmt"
	"time"

	"spotplan/internal/core/domain"
)

var (
	ErrUnknownDay    = errors.New("day is not part of the distribution")
	ErrNegativeValue = errors.New("spot count must not be negative")
)

// Allocate spreads every product quantity over days. A product with n units
// uses d = min(n, len(days)) slots at indices i*len(days)/d, so sparse
// products are spread over the whole period instead of clustering at its
// start. Each slot receives n/d units and the first n%d slots one more.
//
// All valid days are present in the result, including days that receive
// nothing. When days is empty or there is nothing to allocate the result is
// empty.
func Allocate(quantities domain.Quantities, days []time.Time) domain.Distribution {
	out := domain.Distribution{}
	m := len(days)
	if m == 0 || len(quantities.Active()) == 0 {
		return out
	}
	for _, day := range days {
		out[domain.DateKey(day)] = domain.DayEntry{Products: map[domain.Product]int{}}
	}
	for _, p := range domain.Products {
		n := quantities[p]
		if n <= 0 {
			continue
		}
		for i, amount := range spread(n, m) {
			if amount == 0 {
				continue
			}
			key := domain.DateKey(days[i])
			entry := out[key]
			entry.Products[p] += amount
			entry.Total += amount
			out[key] = entry
		}
	}
	return out
}

// spread returns the amount each of the m day indices receives for n units.
func spread(n, m int) []int {
	amounts := make([]int, m)
	d := min(n, m)
	base, remainder := n/d, n%d
	for i := 0; i < d; i++ {
		amount := base
		if i < remainder {
			amount++
		}
		amounts[i*m/d] += amount
	}
	return amounts
}

// RecomputeTotals returns a copy of d where every Total equals the sum of
// its products.
func RecomputeTotals(d domain.Distribution) domain.Distribution {
	out := d.Clone()
	for date, entry := range out {
		entry.Total = entry.Sum()
		out[date] = entry
	}
	return out
}

// SumByProduct totals each product across all days. Products that are never
// scheduled are absent.
func SumByProduct(d domain.Distribution) domain.Quantities {
	sums := domain.Quantities{}
	for _, entry := range d {
		for p, v := range entry.Products {
			if v != 0 {
				sums[p] += v
			}
		}
	}
	return sums
}

// ApplyEdit sets one cell of the grid and returns the edited copy.
func ApplyEdit(d domain.Distribution, date string, product domain.Product, value int) (domain.Distribution, error) {
	if value < 0 {
		return nil, fmt.Errorf("%w: %s %s = %d", ErrNegativeValue, date, product, value)
	}
	product, err := domain.ParseProduct(string(product))
	if err != nil {
		return nil, err
	}
	if _, ok := d[date]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDay, date)
	}
	out := d.Clone()
	entry := out[date]
	setCell(&entry, product, value)
	out[date] = entry
	return out, nil
}

// FillRange replicates value into the product row for every day of d between
// from and to inclusive. The bounds may be given in either order but both
// must exist in d.
func FillRange(d domain.Distribution, product domain.Product, from, to string, value int) (domain.Distribution, error) {
	if value < 0 {
		return nil, fmt.Errorf("%w: %s = %d", ErrNegativeValue, product, value)
	}
	product, err := domain.ParseProduct(string(product))
	if err != nil {
		return nil, err
	}
	for _, bound := range []string{from, to} {
		if _, ok := d[bound]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDay, bound)
		}
	}
	if from > to {
		from, to = to, from
	}
	out := d.Clone()
	for date, entry := range out {
		if date < from || date > to {
			continue
		}
		setCell(&entry, product, value)
		out[date] = entry
	}
	return out, nil
}

func setCell(entry *domain.DayEntry, product domain.Product, value int) {
	if value == 0 {
		delete(entry.Products, product)
	} else {
		entry.Products[product] = value
	}
	entry.Total = entry.Sum()
}

// Align adds an empty entry for each valid day missing from d so that every
// grid cell can be edited. Days outside the valid set are kept untouched.
func Align(d domain.Distribution, days []time.Time) domain.Distribution {
	out := RecomputeTotals(d)
	for _, day := range days {
		key := domain.DateKey(day)
		if entry, ok := out[key]; !ok || entry.Products == nil {
			out[key] = domain.DayEntry{Products: map[domain.Product]int{}}
		}
	}
	return out
}

// Drift describes a product whose scheduled units no longer match the
// contracted quantity.
type Drift struct {
	Product    domain.Product `json:"product"`
	Contracted int            `json:"contracted"`
	Scheduled  int            `json:"scheduled"`
}

// CompareQuantities lists the products of d whose sums differ from want.
func CompareQuantities(want domain.Quantities, d domain.Distribution) []Drift {
	got := SumByProduct(d)
	var drift []Drift
	for _, p := range domain.Products {
		if want[p] != got[p] {
			drift = append(drift, Drift{Product: p, Contracted: want[p], Scheduled: got[p]})
		}
	}
	return drift
}
