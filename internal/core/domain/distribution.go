package domain

import "sort"

// DayEntry holds the spots scheduled on one day. Total always mirrors the sum
// of Products after any engine operation.
type DayEntry struct {
	Total    int             `json:"total"`
	Products map[Product]int `json:"products"`
}

// Sum adds every product count of the entry.
func (e DayEntry) Sum() int {
	var n int
	for _, v := range e.Products {
		n += v
	}
	return n
}

// Distribution maps ISO dates (YYYY-MM-DD) to their scheduled spots.
type Distribution map[string]DayEntry

// Clone returns a deep copy.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for date, entry := range d {
		products := make(map[Product]int, len(entry.Products))
		for p, v := range entry.Products {
			products[p] = v
		}
		out[date] = DayEntry{Total: entry.Total, Products: products}
	}
	return out
}

// Dates returns the keys in chronological order.
func (d Distribution) Dates() []string {
	dates := make([]string, 0, len(d))
	for date := range d {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Compact returns a copy without zero product counts and without days whose
// total is zero.
func (d Distribution) Compact() Distribution {
	out := make(Distribution, len(d))
	for date, entry := range d {
		products := make(map[Product]int, len(entry.Products))
		var total int
		for p, v := range entry.Products {
			if v > 0 {
				products[p] = v
				total += v
			}
		}
		if total == 0 {
			continue
		}
		out[date] = DayEntry{Total: total, Products: products}
	}
	return out
}
