package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// DateLayout is the ISO layout used as Distribution key.
const DateLayout = "2006-01-02"

// DisplayLayout is the day/month/year layout operators type and read.
const DisplayLayout = "02/01/2006"

// ParseDate accepts either the ISO layout or the display layout. Single digit
// day and month components are tolerated in the display layout. The result is
// midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	if strings.Contains(s, "-") {
		// Notion may return a full timestamp in date.start.
		if len(s) > len(DateLayout) {
			s = s[:len(DateLayout)]
		}
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return t, nil
	}
	t, err := time.Parse("2/1/2006", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DateKey formats t as a Distribution key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDisplay formats t in the display layout.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// Midnight truncates t to its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
