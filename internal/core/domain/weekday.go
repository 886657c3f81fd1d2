package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

var ErrUnknownWeekday = errors.New("unknown weekday")

// weekdayNames holds the pt-BR abbreviations stored in the record store,
// indexed by time.Weekday.
var weekdayNames = [7]string{"Dom.", "Seg.", "Ter.", "Qua.", "Qui.", "Sex.", "Sáb."}

var weekdayAliases = map[string]time.Weekday{
	"dom": time.Sunday, "domingo": time.Sunday, "sun": time.Sunday, "sunday": time.Sunday,
	"seg": time.Monday, "segunda": time.Monday, "mon": time.Monday, "monday": time.Monday,
	"ter": time.Tuesday, "terca": time.Tuesday, "tue": time.Tuesday, "tuesday": time.Tuesday,
	"qua": time.Wednesday, "quarta": time.Wednesday, "wed": time.Wednesday, "wednesday": time.Wednesday,
	"qui": time.Thursday, "quinta": time.Thursday, "thu": time.Thursday, "thursday": time.Thursday,
	"sex": time.Friday, "sexta": time.Friday, "fri": time.Friday, "friday": time.Friday,
	"sab": time.Saturday, "sabado": time.Saturday, "sat": time.Saturday, "saturday": time.Saturday,
}

// DefaultWeekdays is Monday through Friday.
var DefaultWeekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// WeekdayName returns the pt-BR abbreviation for w.
func WeekdayName(w time.Weekday) string {
	return weekdayNames[w%7]
}

// ParseWeekday understands the pt-BR abbreviations with or without the
// trailing dot, full pt-BR and English names, and the ordinals 0 to 6.
func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, ".")
	key = strings.TrimSuffix(key, "-feira")
	key = strings.NewReplacer("á", "a", "ç", "c").Replace(key)
	if n, err := strconv.Atoi(key); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n), nil
	}
	if w, ok := weekdayAliases[key]; ok {
		return w, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// ParseWeekdays splits a comma separated list and returns the distinct
// weekdays in ordinal order. Empty items are ignored.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	return ParseWeekdayList(strings.Split(s, ","))
}

// ParseWeekdayList is ParseWeekdays for an already split list.
func ParseWeekdayList(items []string) ([]time.Weekday, error) {
	var set [7]bool
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		w, err := ParseWeekday(item)
		if err != nil {
			return nil, err
		}
		set[w] = true
	}
	out := make([]time.Weekday, 0, 7)
	for i, ok := range set {
		if ok {
			out = append(out, time.Weekday(i))
		}
	}
	return out, nil
}

// WeekdayNames formats weekdays as pt-BR abbreviations in ordinal order.
func WeekdayNames(days []time.Weekday) []string {
	sorted := append([]time.Weekday(nil), days...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := make([]string, 0, len(sorted))
	for i, w := range sorted {
		if i > 0 && sorted[i-1] == w {
			continue
		}
		out = append(out, WeekdayName(w))
	}
	return out
}
