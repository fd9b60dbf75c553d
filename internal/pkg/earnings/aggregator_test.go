package earnings

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func worked(day int, e Entry) Record {
	return Record{
		Date:          date(2024, time.May, day),
		ExpectedHours: 6,
		HourlyRate:    ptr(15),
		Entry:         &e,
	}
}

func TestAggregate_Scenario(t *testing.T) {
	records := []Record{
		worked(1, Entry{
			ActualHours: 5, Sales: 200, Tips: 40, CashOut: 5,
			GrossIncome: ptr(75), NetIncome: ptr(60),
		}),
		worked(2, Entry{
			ActualHours: 3, Sales: 100, Tips: 15, Other: 10,
			HourlyRate: ptr(15), DeductionPercentage: ptr(20),
		}),
	}

	s := Aggregate(records, DefaultAggregateOptions())

	assert.InDelta(t, 8, s.Hours, 1e-9)
	assert.InDelta(t, 300, s.Sales, 1e-9)
	assert.InDelta(t, 55, s.Tips, 1e-9)
	assert.InDelta(t, 5, s.TipOut, 1e-9)
	assert.InDelta(t, 10, s.Other, 1e-9)
	assert.InDelta(t, 120, s.GrossIncome, 1e-9)
	assert.InDelta(t, 96, s.NetIncome, 1e-9)
	assert.InDelta(t, 156, s.TotalRevenue, 1e-9)
	assert.InDelta(t, 18.333, s.TipPercentage, 1e-3)
	assert.InDelta(t, 19.5, s.EffectiveHourlyRate, 1e-9)
	assert.Equal(t, 2, s.WorkedShifts)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, Aggregate(nil, DefaultAggregateOptions()))
	assert.Equal(t, Stats{}, Aggregate([]Record{}, DefaultAggregateOptions()))
}

func TestAggregate_SnapshotPreferred(t *testing.T) {
	r := worked(1, Entry{
		ActualHours: 10, HourlyRate: ptr(50),
		GrossIncome: ptr(100), NetIncome: ptr(70),
	})

	s := Aggregate([]Record{r}, DefaultAggregateOptions())
	assert.Equal(t, 70.0, s.NetIncome)
	assert.Equal(t, 100.0, s.GrossIncome)
}

func TestAggregate_PartialSnapshotRecomputes(t *testing.T) {
	// Only gross stored: both figures are recomputed from hours and rate.
	r := worked(1, Entry{ActualHours: 4, HourlyRate: ptr(10), GrossIncome: ptr(999)})

	s := Aggregate([]Record{r}, AggregateOptions{DeductionPercentage: 25, DefaultHourlyRate: 15})
	assert.InDelta(t, 40, s.GrossIncome, 1e-9)
	assert.InDelta(t, 30, s.NetIncome, 1e-9)
}

func TestResolveIncome_RateFallbacks(t *testing.T) {
	opts := AggregateOptions{DeductionPercentage: 10, DefaultHourlyRate: 12}

	cases := []struct {
		name      string
		shiftRate *float64
		entryRate *float64
		wantGross float64
	}{
		{"entry rate wins", ptr(20), ptr(18), 36},
		{"shift rate when entry has none", ptr(20), nil, 40},
		{"default rate as last resort", nil, nil, 24},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{HourlyRate: tc.shiftRate, Entry: &Entry{ActualHours: 2, HourlyRate: tc.entryRate}}
			income := ResolveIncome(r, opts)
			assert.InDelta(t, tc.wantGross, income.Gross, 1e-9)
			assert.InDelta(t, tc.wantGross*0.9, income.Net, 1e-9)
		})
	}
}

func TestResolveIncome_Unworked(t *testing.T) {
	assert.Equal(t, Income{}, ResolveIncome(Record{ExpectedHours: 8, HourlyRate: ptr(20)}, DefaultAggregateOptions()))
}

func TestAggregate_UnworkedRecordsOnlyCounted(t *testing.T) {
	records := []Record{
		worked(1, Entry{ActualHours: 4, Sales: 100, Tips: 20}),
		{Date: date(2024, time.May, 2), ExpectedHours: 8, HourlyRate: ptr(15), Missed: true},
		{Date: date(2024, time.May, 3), ExpectedHours: 8, HourlyRate: ptr(15)},
		{Date: date(2024, time.May, 4), ExpectedHours: 8, HourlyRate: ptr(15)},
	}

	s := Aggregate(records, DefaultAggregateOptions())

	assert.InDelta(t, 4, s.Hours, 1e-9)
	assert.InDelta(t, 20, s.TipPercentage, 1e-9)
	assert.Equal(t, 1, s.WorkedShifts)
	assert.Equal(t, 1, s.MissedShifts)
	assert.Equal(t, 2, s.ScheduledShifts)
}

func TestAggregate_TipPercentageWithoutSales(t *testing.T) {
	for _, tips := range []float64{0, 1, 55.5, 1e9} {
		s := Aggregate([]Record{worked(1, Entry{ActualHours: 1, Tips: tips})}, DefaultAggregateOptions())
		assert.Equal(t, 0.0, s.TipPercentage, "tips=%v", tips)
		assert.False(t, math.IsNaN(s.TipPercentage))
	}
}

func TestAggregate_NonFiniteInputsDegradeToZero(t *testing.T) {
	r := worked(1, Entry{ActualHours: math.NaN(), Sales: math.Inf(1), Tips: 10})

	s := Aggregate([]Record{r}, DefaultAggregateOptions())
	assert.Equal(t, 0.0, s.Hours)
	assert.Equal(t, 0.0, s.Sales)
	assert.Equal(t, 0.0, s.TipPercentage)
	assert.Equal(t, 0.0, s.EffectiveHourlyRate)
	assert.Equal(t, 10.0, s.Tips)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	records := make([]Record, 0, 60)
	for i := 0; i < 60; i++ {
		e := Entry{
			ActualHours: float64(rng.Intn(100)) / 10,
			Sales:       rng.Float64() * 500,
			Tips:        rng.Float64() * 100,
			CashOut:     rng.Float64() * 10,
			Other:       rng.Float64() * 5,
			HourlyRate:  ptr(10 + rng.Float64()*10),
		}
		if i%3 == 0 {
			e.GrossIncome = ptr(rng.Float64() * 200)
			e.NetIncome = ptr(rng.Float64() * 150)
		}
		r := worked(1+i%28, e)
		if i%7 == 0 {
			r.Entry = nil
		}
		records = append(records, r)
	}

	opts := DefaultAggregateOptions()
	want := Aggregate(records, opts)

	for round := 0; round < 20; round++ {
		shuffled := append([]Record(nil), records...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Aggregate(shuffled, opts)
		assert.InDelta(t, want.Hours, got.Hours, 1e-6)
		assert.InDelta(t, want.Sales, got.Sales, 1e-6)
		assert.InDelta(t, want.Tips, got.Tips, 1e-6)
		assert.InDelta(t, want.TipOut, got.TipOut, 1e-6)
		assert.InDelta(t, want.Other, got.Other, 1e-6)
		assert.InDelta(t, want.GrossIncome, got.GrossIncome, 1e-6)
		assert.InDelta(t, want.NetIncome, got.NetIncome, 1e-6)
		assert.InDelta(t, want.TotalRevenue, got.TotalRevenue, 1e-6)
		assert.InDelta(t, want.TipPercentage, got.TipPercentage, 1e-6)
		assert.Equal(t, want.WorkedShifts, got.WorkedShifts)
		assert.Equal(t, want.ScheduledShifts, got.ScheduledShifts)
	}
}
