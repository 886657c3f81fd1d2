package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-06-02", "2025-06-02"},
		{"2025-06-02T10:00:00.000-03:00", "2025-06-02"},
		{"02/06/2025", "2025-06-02"},
		{"2/6/2025", "2025-06-02"},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, DateKey(got), tt.in)
	}

	for _, bad := range []string{"", "31/02/2025", "2025-13-01", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays("Seg.,Ter.,Qua.,Qui.,Sex.")
	require.NoError(t, err)
	assert.Equal(t, DefaultWeekdays, got)

	got, err = ParseWeekdays("sábado, Domingo ,terça-feira,SEG,0")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Saturday}, got)

	_, err = ParseWeekdays("Seg.,Funday")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}

func TestWeekdayNames(t *testing.T) {
	names := WeekdayNames([]time.Weekday{time.Saturday, time.Monday, time.Monday})
	assert.Equal(t, []string{"Seg.", "Sáb."}, names)
}

func TestCampaignSpecValidate(t *testing.T) {
	start, _ := ParseDate("2025-06-01")
	end, _ := ParseDate("2025-06-30")
	spec := CampaignSpec{PeriodStart: start, PeriodEnd: end}.WithDefaults()

	require.NoError(t, spec.Validate())
	assert.Equal(t, DefaultStationName, spec.StationName)
	assert.Equal(t, float64(DefaultImpactWeight), spec.ImpactWeight)

	reversed := spec
	reversed.PeriodStart, reversed.PeriodEnd = end, start
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidPeriod)

	noDays := spec
	noDays.Weekdays = nil
	assert.ErrorIs(t, noDays.Validate(), ErrNoWeekdays)

	negative := spec
	negative.Quantities = Quantities{Spots15: -1}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidSpec)

	weightless := spec
	weightless.ImpactWeight = -5
	assert.ErrorIs(t, weightless.Validate(), ErrInvalidSpec)
}

func TestParseProduct(t *testing.T) {
	p, err := ParseProduct(" Spots30 ")
	require.NoError(t, err)
	assert.Equal(t, Spots30, p)

	_, err = ParseProduct("spots90")
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestQuantities(t *testing.T) {
	q := Quantities{Spots30: 2, Spots5: 0, Test60: 1}
	assert.Equal(t, 3, q.Total())
	assert.Equal(t, []Product{Spots30, Test60}, q.Active())
	assert.True(t, q.Equal(Quantities{Spots30: 2, Test60: 1}))
	assert.False(t, q.Equal(Quantities{Spots30: 2}))
}
