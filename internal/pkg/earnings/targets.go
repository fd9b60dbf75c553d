package earnings

import "time"

// UserTargets are the goals a user configured in settings. Zero means no
// target is set.
type UserTargets struct {
	TipPercentage float64 `json:"tip_percentage"`
	DailySales    float64 `json:"daily_sales"`
	WeeklySales   float64 `json:"weekly_sales"`
	MonthlySales  float64 `json:"monthly_sales"`
	DailyHours    float64 `json:"daily_hours"`
	WeeklyHours   float64 `json:"weekly_hours"`
	MonthlyHours  float64 `json:"monthly_hours"`
	DailyIncome   float64 `json:"daily_income"`
	WeeklyIncome  float64 `json:"weekly_income"`
	MonthlyIncome float64 `json:"monthly_income"`
}

// Targets are the goals that apply to one period.
type Targets struct {
	Hours         float64 `json:"hours"`
	Sales         float64 `json:"sales"`
	Income        float64 `json:"income"`
	TipPercentage float64 `json:"tip_percentage"`
}

func (t Targets) scale(n float64) Targets {
	return Targets{
		Hours:         t.Hours * n,
		Sales:         t.Sales * n,
		Income:        t.Income * n,
		TipPercentage: t.TipPercentage,
	}
}

// Any reports whether at least one target is set.
func (t Targets) Any() bool {
	return t.Hours > 0 || t.Sales > 0 || t.Income > 0 || t.TipPercentage > 0
}

func (u UserTargets) daily() Targets {
	return Targets{Hours: u.DailyHours, Sales: u.DailySales, Income: u.DailyIncome, TipPercentage: u.TipPercentage}
}

func (u UserTargets) weekly() Targets {
	return Targets{Hours: u.WeeklyHours, Sales: u.WeeklySales, Income: u.WeeklyIncome, TipPercentage: u.TipPercentage}
}

func (u UserTargets) monthly() Targets {
	return Targets{Hours: u.MonthlyHours, Sales: u.MonthlySales, Income: u.MonthlyIncome, TipPercentage: u.TipPercentage}
}

type TargetQuery struct {
	Period              Period
	MonthView           MonthViewType
	HasVariableSchedule bool
	// ReferenceDate drives the year-to-date projection for the Year period.
	ReferenceDate time.Time
}

// ResolveTargets maps the configured daily, weekly and monthly goals onto the
// selected period. Variable-schedule users only ever get daily targets. The
// Year target is a year-to-date projection: monthly × month number.
func ResolveTargets(q TargetQuery, u UserTargets) Targets {
	if q.HasVariableSchedule {
		return u.daily()
	}

	switch q.Period {
	case PeriodToday:
		return u.daily()
	case PeriodWeek:
		return u.weekly()
	case PeriodMonth:
		if q.MonthView == MonthViewFourWeeksPay && u.WeeklyHours > 0 {
			return u.weekly().scale(4)
		}
		return u.monthly()
	case PeriodYear:
		return u.monthly().scale(float64(q.ReferenceDate.Month()))
	case PeriodFourWeeks:
		return u.weekly().scale(4)
	}

	return Targets{}
}
