package earnings

import (
	"math"
	"time"
)

const (
	DefaultDeductionPercentage = 30.0
	DefaultHourlyRate          = 15.0
)

// Record is one shift as the aggregator sees it. A record is worked exactly
// when Entry is non-nil.
type Record struct {
	Date          time.Time
	ExpectedHours float64
	// HourlyRate is the rate recorded on the shift; nil when unknown.
	HourlyRate *float64
	Missed     bool
	Entry      *Entry
}

// Entry holds what actually happened on a worked shift.
type Entry struct {
	ActualHours float64
	Sales       float64
	Tips        float64
	CashOut     float64
	Other       float64

	// Snapshots taken when the entry was recorded.
	HourlyRate          *float64
	GrossIncome         *float64
	NetIncome           *float64
	DeductionPercentage *float64
}

func (r Record) Worked() bool {
	return r.Entry != nil
}

type AggregateOptions struct {
	// DeductionPercentage applies when an entry carries no snapshot of its own.
	DeductionPercentage float64
	// DefaultHourlyRate applies when neither the entry nor the shift has a rate.
	DefaultHourlyRate float64
}

// DefaultAggregateOptions returns the options used for users without a profile.
func DefaultAggregateOptions() AggregateOptions {
	return AggregateOptions{
		DeductionPercentage: DefaultDeductionPercentage,
		DefaultHourlyRate:   DefaultHourlyRate,
	}
}

// Stats is the aggregate of a set of records over a date range.
type Stats struct {
	Hours        float64 `json:"hours"`
	Sales        float64 `json:"sales"`
	Tips         float64 `json:"tips"`
	TipOut       float64 `json:"tip_out"`
	Other        float64 `json:"other"`
	GrossIncome  float64 `json:"gross_income"`
	NetIncome    float64 `json:"net_income"`
	TotalRevenue float64 `json:"total_revenue"`
	// TipPercentage is tips as a percentage of sales, 0 when there are no sales.
	TipPercentage float64 `json:"tip_percentage"`
	// EffectiveHourlyRate is total revenue per worked hour, 0 without hours.
	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`

	WorkedShifts    int `json:"worked_shifts"`
	MissedShifts    int `json:"missed_shifts"`
	ScheduledShifts int `json:"scheduled_shifts"`
}

func (s Stats) HasData() bool {
	return s.WorkedShifts > 0
}

// Income is the wage earned on one worked record.
type Income struct {
	Gross float64
	Net   float64
}

// ResolveIncome returns the wage for a worked record. Stored gross and net
// snapshots win when both are present; otherwise the wage is recomputed from
// hours and rate.
func ResolveIncome(r Record, opts AggregateOptions) Income {
	if r.Entry == nil {
		return Income{}
	}
	e := r.Entry

	if e.GrossIncome != nil && e.NetIncome != nil {
		return Income{Gross: finite(*e.GrossIncome), Net: finite(*e.NetIncome)}
	}

	rate := opts.DefaultHourlyRate
	switch {
	case e.HourlyRate != nil:
		rate = *e.HourlyRate
	case r.HourlyRate != nil:
		rate = *r.HourlyRate
	}

	deduction := opts.DeductionPercentage
	if e.DeductionPercentage != nil {
		deduction = *e.DeductionPercentage
	}

	gross := finite(r.hours() * rate)
	return Income{Gross: gross, Net: finite(gross * (1 - deduction/100))}
}

// hours is the worked duration, or the scheduled duration for a record
// without an entry.
func (r Record) hours() float64 {
	if r.Entry != nil {
		return finite(r.Entry.ActualHours)
	}
	return finite(r.ExpectedHours)
}

// Aggregate reduces records to Stats. Only worked records contribute to sums;
// unworked records are counted as missed or scheduled. The reduction is
// order-independent.
func Aggregate(records []Record, opts AggregateOptions) Stats {
	var s Stats

	for _, r := range records {
		if !r.Worked() {
			if r.Missed {
				s.MissedShifts++
			} else {
				s.ScheduledShifts++
			}
			continue
		}

		income := ResolveIncome(r, opts)
		s.WorkedShifts++
		s.Hours += r.hours()
		s.Sales += finite(r.Entry.Sales)
		s.Tips += finite(r.Entry.Tips)
		s.TipOut += finite(r.Entry.CashOut)
		s.Other += finite(r.Entry.Other)
		s.GrossIncome += income.Gross
		s.NetIncome += income.Net
	}

	s.TotalRevenue = s.NetIncome + s.Tips + s.Other - s.TipOut
	s.TipPercentage = TipPercentage(s.Tips, s.Sales)

	if s.Hours > 0 {
		s.EffectiveHourlyRate = finite(s.TotalRevenue / s.Hours)
	}

	return s
}

// TipPercentage returns tips/sales×100, or 0 when sales are not positive or
// the result is not a finite number.
func TipPercentage(tips, sales float64) float64 {
	if sales <= 0 {
		return 0
	}
	return finite(tips / sales * 100)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
