package distribution

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotplan/internal/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// consecutive returns count consecutive days starting at start.
func consecutive(start string, count int) []time.Time {
	first := day(start)
	out := make([]time.Time, count)
	for i := range out {
		out[i] = first.AddDate(0, 0, i)
	}
	return out
}

func TestValidDays(t *testing.T) {
	// 2025-06-01 is a Sunday
	days := ValidDays(day("2025-06-01"), day("2025-06-14"), domain.DefaultWeekdays)
	want := []string{
		"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06",
		"2025-06-09", "2025-06-10", "2025-06-11", "2025-06-12", "2025-06-13",
	}
	if diff := cmp.Diff(want, DateKeys(days)); diff != "" {
		t.Fatalf("valid days mismatch (-want +got):\n%s", diff)
	}
}

func TestValidDaysInclusiveSingleDay(t *testing.T) {
	days := ValidDays(day("2025-06-07"), day("2025-06-07"), []time.Weekday{time.Saturday})
	require.Len(t, days, 1)
	assert.Equal(t, "2025-06-07", domain.DateKey(days[0]))
}

func TestValidDaysForNoQualifyingDay(t *testing.T) {
	spec := domain.CampaignSpec{
		PeriodStart:  day("2025-06-02"),
		PeriodEnd:    day("2025-06-06"),
		Weekdays:     []time.Weekday{time.Sunday},
		ImpactWeight: 1000,
	}
	_, err := ValidDaysFor(spec)
	require.ErrorIs(t, err, domain.ErrNoValidDays)

	spec.PeriodEnd = day("2025-06-01")
	_, err = ValidDaysFor(spec)
	require.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestAllocateStrideScenario(t *testing.T) {
	days := consecutive("2025-06-02", 5)
	got := Allocate(domain.Quantities{domain.Spots30: 3}, days)

	want := domain.Distribution{
		"2025-06-02": {Total: 1, Products: map[domain.Product]int{domain.Spots30: 1}},
		"2025-06-03": {Total: 1, Products: map[domain.Product]int{domain.Spots30: 1}},
		"2025-06-04": {Total: 0, Products: map[domain.Product]int{}},
		"2025-06-05": {Total: 1, Products: map[domain.Product]int{domain.Spots30: 1}},
		"2025-06-06": {Total: 0, Products: map[domain.Product]int{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("allocation mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocateEmpty(t *testing.T) {
	days := consecutive("2025-06-02", 5)
	zero := domain.Quantities{
		domain.Spots5: 0, domain.Spots15: 0, domain.Spots30: 0, domain.Spots60: 0, domain.Test60: 0,
	}
	assert.Empty(t, Allocate(zero, days))
	assert.Empty(t, Allocate(domain.Quantities{domain.Spots30: 4}, nil))
}

func TestAllocateIgnoresNegativeProducts(t *testing.T) {
	days := consecutive("2025-06-02", 3)
	got := Allocate(domain.Quantities{domain.Spots30: 3, domain.Spots5: -5}, days)

	require.Len(t, got, 3)
	for _, key := range DateKeys(days) {
		assert.Equal(t, 1, got[key].Products[domain.Spots30], key)
		assert.NotContains(t, got[key].Products, domain.Spots5, key)
	}
}

func TestAllocateRemainderGoesToEarliestDays(t *testing.T) {
	days := consecutive("2025-06-02", 3)
	got := Allocate(domain.Quantities{domain.Spots15: 8}, days)

	assert.Equal(t, 3, got["2025-06-02"].Products[domain.Spots15])
	assert.Equal(t, 3, got["2025-06-03"].Products[domain.Spots15])
	assert.Equal(t, 2, got["2025-06-04"].Products[domain.Spots15])
}

func TestAllocateConservation(t *testing.T) {
	quantities := []domain.Quantities{
		{domain.Spots30: 1},
		{domain.Spots30: 17, domain.Spots5: 3, domain.Test60: 40},
		{domain.Spots15: 100, domain.Spots60: 7},
		{domain.Spots5: 22, domain.Spots15: 22, domain.Spots30: 22, domain.Spots60: 22, domain.Test60: 22},
	}
	for _, count := range []int{1, 2, 7, 22, 31, 45} {
		days := consecutive("2025-01-01", count)
		for _, q := range quantities {
			d := Allocate(q, days)
			got := SumByProduct(d)
			assert.True(t, q.Equal(got), "days=%d quantities=%v got=%v", count, q, got)
			for date, entry := range d {
				assert.Equal(t, entry.Sum(), entry.Total, "total of %s", date)
			}
		}
	}
}

func TestAllocateStrideFairness(t *testing.T) {
	const m = 20
	days := consecutive("2025-03-01", m)
	for _, n := range []int{1, 3, 7, 13, 20} {
		d := Allocate(domain.Quantities{domain.Spots60: n}, days)
		var indices []int
		for i, dd := range days {
			if d[domain.DateKey(dd)].Products[domain.Spots60] > 0 {
				indices = append(indices, i)
			}
		}
		require.Len(t, indices, n, "n=%d", n)
		assert.Equal(t, 0, indices[0])
		for i := 1; i < len(indices); i++ {
			gap := indices[i] - indices[i-1]
			assert.GreaterOrEqual(t, gap, m/n, "n=%d", n)
			assert.LessOrEqual(t, gap, m/n+1, "n=%d", n)
		}
	}
}

func TestAllocateProductsShareDays(t *testing.T) {
	days := consecutive("2025-06-02", 4)
	d := Allocate(domain.Quantities{domain.Spots30: 4, domain.Spots5: 2}, days)

	first := d["2025-06-02"]
	assert.Equal(t, 2, first.Total)
	assert.Equal(t, 1, first.Products[domain.Spots5])
	assert.Equal(t, 1, first.Products[domain.Spots30])
	assert.Equal(t, 1, d["2025-06-03"].Total)
	assert.Equal(t, 2, d["2025-06-04"].Total)
}

func TestRecomputeTotalsIdempotent(t *testing.T) {
	d := domain.Distribution{
		"2025-06-02": {Total: 99, Products: map[domain.Product]int{domain.Spots30: 2, domain.Spots5: 1}},
		"2025-06-03": {Total: 1, Products: map[domain.Product]int{}},
	}
	once := RecomputeTotals(d)
	twice := RecomputeTotals(once)

	assert.Equal(t, 3, once["2025-06-02"].Total)
	assert.Equal(t, 0, once["2025-06-03"].Total)
	assert.Equal(t, once, twice)
	assert.Equal(t, 99, d["2025-06-02"].Total, "input must not be mutated")
}

func TestApplyEdit(t *testing.T) {
	d := Allocate(domain.Quantities{domain.Spots30: 2}, consecutive("2025-06-02", 2))

	edited, err := ApplyEdit(d, "2025-06-03", domain.Spots5, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, edited["2025-06-03"].Total)
	assert.Equal(t, 1, d["2025-06-03"].Total, "input must not be mutated")

	edited, err = ApplyEdit(edited, "2025-06-02", domain.Spots30, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, edited["2025-06-02"].Total)
	assert.NotContains(t, edited["2025-06-02"].Products, domain.Spots30)

	_, err = ApplyEdit(d, "2025-06-09", domain.Spots30, 1)
	require.ErrorIs(t, err, ErrUnknownDay)
	_, err = ApplyEdit(d, "2025-06-02", domain.Spots30, -1)
	require.ErrorIs(t, err, ErrNegativeValue)
	_, err = ApplyEdit(d, "2025-06-02", "spots90", 1)
	require.ErrorIs(t, err, domain.ErrUnknownProduct)
}

func TestFillRange(t *testing.T) {
	d := Allocate(domain.Quantities{domain.Spots30: 5}, consecutive("2025-06-02", 5))

	filled, err := FillRange(d, domain.Spots15, "2025-06-05", "2025-06-03", 2)
	require.NoError(t, err)
	for _, date := range []string{"2025-06-03", "2025-06-04", "2025-06-05"} {
		assert.Equal(t, 2, filled[date].Products[domain.Spots15], date)
		assert.Equal(t, 3, filled[date].Total, date)
	}
	assert.NotContains(t, filled["2025-06-02"].Products, domain.Spots15)
	assert.NotContains(t, filled["2025-06-06"].Products, domain.Spots15)

	_, err = FillRange(d, domain.Spots15, "2025-06-02", "2025-07-01", 2)
	require.ErrorIs(t, err, ErrUnknownDay)
}

func TestAlign(t *testing.T) {
	decoded := domain.Distribution{
		"2025-06-03": {Total: 2, Products: map[domain.Product]int{domain.Spots30: 2}},
	}
	aligned := Align(decoded, consecutive("2025-06-02", 3))

	require.Len(t, aligned, 3)
	assert.Equal(t, 0, aligned["2025-06-02"].Total)
	assert.NotNil(t, aligned["2025-06-04"].Products)
	assert.Equal(t, 2, aligned["2025-06-03"].Total)
}

func TestCompareQuantitiesAfterManualEdit(t *testing.T) {
	q := domain.Quantities{domain.Spots30: 3}
	d := Allocate(q, consecutive("2025-06-02", 5))
	assert.Empty(t, CompareQuantities(q, d))

	edited, err := ApplyEdit(d, "2025-06-04", domain.Spots30, 2)
	require.NoError(t, err)

	require.NoError(t, Validate(edited))
	drift := CompareQuantities(q, edited)
	require.Len(t, drift, 1)
	assert.Equal(t, Drift{Product: domain.Spots30, Contracted: 3, Scheduled: 5}, drift[0])
}
