package distribution

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"spotplan/internal/core/domain"
)

var ErrInvalidDistribution = errors.New("invalid distribution")

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Violation is one structural problem found in a distribution.
type Violation struct {
	Date   string `json:"date"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	if v.Field == "" {
		return fmt.Sprintf("%s: %s", v.Date, v.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", v.Date, v.Field, v.Reason)
}

// ValidationError lists every violation found, not just the first one.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidDistribution, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidDistribution }

// Validate checks the structure of d: ISO date keys, a products mapping on
// every day, and non negative totals and counts. Whether Total matches the
// sum of products is not checked here; RecomputeTotals maintains it.
func Validate(d domain.Distribution) error {
	var violations []Violation
	for _, date := range d.Dates() {
		entry := d[date]
		violations = append(violations, checkKey(date)...)
		if entry.Total < 0 {
			violations = append(violations, Violation{Date: date, Field: "total", Reason: fmt.Sprintf("negative total %d", entry.Total)})
		}
		if entry.Products == nil {
			violations = append(violations, Violation{Date: date, Field: "products", Reason: "missing"})
			continue
		}
		for _, p := range sortedProducts(entry.Products) {
			if _, err := domain.ParseProduct(string(p)); err != nil {
				violations = append(violations, Violation{Date: date, Field: "products." + string(p), Reason: "unknown product"})
				continue
			}
			if v := entry.Products[p]; v < 0 {
				violations = append(violations, Violation{Date: date, Field: "products." + string(p), Reason: fmt.Sprintf("negative count %d", v)})
			}
		}
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// ValidateJSON checks a distribution received as JSON, including fields that
// cannot be represented once decoded: a missing total or products field and
// non numeric counts. The returned distribution reads such counts as zero and
// has its totals recomputed; it is returned even when err is not nil.
func ValidateJSON(data []byte) (domain.Distribution, error) {
	raw, err := parseRaw(data)
	if err != nil {
		return nil, &ValidationError{Violations: []Violation{{Reason: fmt.Sprintf("not a distribution: %v", err)}}}
	}
	out := make(domain.Distribution, len(raw))
	var violations []Violation
	for _, date := range sortedKeys(raw) {
		entry := raw[date]
		out[date] = entry.lenient()
		violations = append(violations, checkKey(date)...)
		if entry.Total == nil {
			violations = append(violations, Violation{Date: date, Field: "total", Reason: "missing"})
		} else if n, ok := rawCount(entry.Total); !ok {
			violations = append(violations, Violation{Date: date, Field: "total", Reason: fmt.Sprintf("not an integer: %s", entry.Total)})
		} else if n < 0 {
			violations = append(violations, Violation{Date: date, Field: "total", Reason: fmt.Sprintf("negative total %d", n)})
		}
		if entry.Products == nil {
			violations = append(violations, Violation{Date: date, Field: "products", Reason: "missing"})
			continue
		}
		for _, code := range sortedKeys(entry.Products) {
			field := "products." + code
			if _, err := domain.ParseProduct(code); err != nil {
				violations = append(violations, Violation{Date: date, Field: field, Reason: "unknown product"})
				continue
			}
			n, ok := rawCount(entry.Products[code])
			switch {
			case !ok:
				violations = append(violations, Violation{Date: date, Field: field, Reason: fmt.Sprintf("not an integer: %s", entry.Products[code])})
			case n < 0:
				violations = append(violations, Violation{Date: date, Field: field, Reason: fmt.Sprintf("negative count %d", n)})
			}
		}
	}
	if len(violations) > 0 {
		return out, &ValidationError{Violations: violations}
	}
	return out, nil
}

func checkKey(date string) []Violation {
	if !dateKeyPattern.MatchString(date) {
		return []Violation{{Date: date, Reason: "key is not YYYY-MM-DD"}}
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return []Violation{{Date: date, Reason: "key is not a calendar date"}}
	}
	return nil
}

func sortedProducts(m map[domain.Product]int) []domain.Product {
	out := make([]domain.Product, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
