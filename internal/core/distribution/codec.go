package distribution

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"spotplan/internal/core/domain"
)

// FieldCapacity is the largest encoded distribution the record store field
// accepts safely.
const FieldCapacity = 1900

const (
	recordSep  = "|"
	fieldSep   = ":"
	productSep = ","
	valueSep   = "="
	keyLayout  = "20060102"
)

var ErrCapacityExceeded = errors.New("encoded distribution exceeds field capacity")

// CapacityError is returned when an encoded distribution does not fit the
// record store field.
type CapacityError struct {
	Length int
	Limit  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("encoded distribution has %d characters, limit is %d: reduce the period or the number of products", e.Length, e.Limit)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

var abbreviations = map[domain.Product]string{
	domain.Spots5:  "s5",
	domain.Spots15: "s15",
	domain.Spots30: "s30",
	domain.Spots60: "s60",
	domain.Test60:  "t60",
}

var productsByAbbreviation = func() map[string]domain.Product {
	out := make(map[string]domain.Product, len(abbreviations))
	for p, abbr := range abbreviations {
		out[abbr] = p
	}
	return out
}()

// Encode writes d as records "YYYYMMDD:total:abbr=n,abbr=n" joined by "|".
// Days are written in chronological order and products in grid order. Zero
// counts, days without spots and keys that are not ISO dates are left out.
func Encode(d domain.Distribution) string {
	var b strings.Builder
	for _, date := range d.Dates() {
		day, err := time.Parse(domain.DateLayout, date)
		if err != nil {
			continue
		}
		entry := d[date]
		var total int
		for _, p := range domain.Products {
			if v := entry.Products[p]; v > 0 {
				total += v
			}
		}
		if total == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(recordSep)
		}
		b.WriteString(day.Format(keyLayout))
		b.WriteString(fieldSep)
		b.WriteString(strconv.Itoa(total))
		b.WriteString(fieldSep)
		first := true
		for _, p := range domain.Products {
			v := entry.Products[p]
			if v <= 0 {
				continue
			}
			if !first {
				b.WriteString(productSep)
			}
			first = false
			b.WriteString(abbreviations[p])
			b.WriteString(valueSep)
			b.WriteString(strconv.Itoa(v))
		}
	}
	return b.String()
}

// EncodeWithin encodes d and fails with a *CapacityError when the result is
// longer than limit. Nothing is truncated.
func EncodeWithin(d domain.Distribution, limit int) (string, error) {
	encoded := Encode(d)
	if n := len([]rune(encoded)); n > limit {
		return "", &CapacityError{Length: n, Limit: limit}
	}
	return encoded, nil
}

// SkippedRecord is a record that Decode could not read.
type SkippedRecord struct {
	Index  int    `json:"index"`
	Record string `json:"record"`
	Reason string `json:"reason"`
}

// DecodeReport explains how an encoded distribution was read.
type DecodeReport struct {
	// Legacy is set when the input was read as a JSON distribution.
	Legacy  bool
	Skipped []SkippedRecord
	// Err holds the legacy parse failure when neither format could be read.
	Err error
}

// Lossy reports whether any part of the input was dropped.
func (r DecodeReport) Lossy() bool {
	return len(r.Skipped) > 0 || r.Err != nil
}

// Decode reads the compact encoding produced by Encode. Malformed records are
// skipped and listed in the report while the remaining records are kept.
// When no record can be read the input is parsed as a legacy JSON
// distribution. If that fails too the distribution is empty and report.Err is
// set.
func Decode(encoded string) (domain.Distribution, DecodeReport) {
	var report DecodeReport
	out := domain.Distribution{}
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return out, report
	}
	for i, record := range strings.Split(encoded, recordSep) {
		date, entry, err := decodeRecord(record)
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedRecord{Index: i, Record: record, Reason: err.Error()})
			continue
		}
		if existing, ok := out[date]; ok {
			for p, v := range entry.Products {
				existing.Products[p] += v
			}
			existing.Total = existing.Sum()
			entry = existing
		}
		out[date] = entry
	}
	if len(out) > 0 {
		return out, report
	}

	legacy, err := decodeLegacy(encoded)
	if err != nil {
		report.Err = err
		return domain.Distribution{}, report
	}
	return legacy, DecodeReport{Legacy: true}
}

func decodeRecord(record string) (string, domain.DayEntry, error) {
	fields := strings.Split(strings.TrimSpace(record), fieldSep)
	if len(fields) != 3 {
		return "", domain.DayEntry{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	if len(fields[0]) != len(keyLayout) {
		return "", domain.DayEntry{}, fmt.Errorf("invalid date %q", fields[0])
	}
	day, err := time.Parse(keyLayout, fields[0])
	if err != nil {
		return "", domain.DayEntry{}, fmt.Errorf("invalid date %q", fields[0])
	}
	if _, err = parseCount(fields[1]); err != nil {
		return "", domain.DayEntry{}, fmt.Errorf("invalid total: %w", err)
	}
	if fields[2] == "" {
		return "", domain.DayEntry{}, errors.New("no products")
	}
	entry := domain.DayEntry{Products: map[domain.Product]int{}}
	for _, item := range strings.Split(fields[2], productSep) {
		abbr, raw, ok := strings.Cut(item, valueSep)
		if !ok {
			return "", domain.DayEntry{}, fmt.Errorf("invalid product entry %q", item)
		}
		p, ok := productsByAbbreviation[abbr]
		if !ok {
			return "", domain.DayEntry{}, fmt.Errorf("unknown product abbreviation %q", abbr)
		}
		n, err := parseCount(raw)
		if err != nil {
			return "", domain.DayEntry{}, fmt.Errorf("invalid count for %s: %w", abbr, err)
		}
		entry.Products[p] += n
	}
	// the declared total is informative only
	entry.Total = entry.Sum()
	return domain.DateKey(day), entry, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}

// decodeLegacy reads the JSON form {"YYYY-MM-DD": {"total": n, "products": {...}}}
// used before the compact encoding existed. Non numeric counts read as zero.
func decodeLegacy(encoded string) (domain.Distribution, error) {
	raw, err := parseRaw([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("legacy distribution: %w", err)
	}
	out := make(domain.Distribution, len(raw))
	for date, entry := range raw {
		out[date] = entry.lenient()
	}
	return out, nil
}

// rawDayEntry keeps the JSON shape of a day as received so that missing or
// mistyped fields can be reported.
type rawDayEntry struct {
	Total    json.RawMessage            `json:"total"`
	Products map[string]json.RawMessage `json:"products"`
}

func parseRaw(data []byte) (map[string]rawDayEntry, error) {
	var raw map[string]rawDayEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("distribution is null")
	}
	return raw, nil
}

// lenient converts e into a DayEntry, reading unknown products, negative and
// non numeric counts as zero. Total is recomputed.
func (e rawDayEntry) lenient() domain.DayEntry {
	entry := domain.DayEntry{Products: map[domain.Product]int{}}
	for code, value := range e.Products {
		p, err := domain.ParseProduct(code)
		if err != nil {
			continue
		}
		if n, ok := rawCount(value); ok && n > 0 {
			entry.Products[p] += n
		}
	}
	entry.Total = entry.Sum()
	return entry
}

// rawCount reads a JSON number or numeric string. null is not a count.
func rawCount(value json.RawMessage) (int, bool) {
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(value, &f); err == nil {
		if f != float64(int(f)) {
			return 0, false
		}
		return int(f), true
	}
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		return n, err == nil
	}
	return 0, false
}
