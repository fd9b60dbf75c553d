package earnings

import (
	"fmt"
	"time"
)

// Period is the time window a dashboard is showing.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodWeek      Period = "week"
	PeriodMonth     Period = "month"
	PeriodYear      Period = "year"
	PeriodFourWeeks Period = "four_weeks"
	PeriodCustom    Period = "custom"
)

// Periods lists every fixed (non-custom) period.
var Periods = []Period{PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodFourWeeks}

func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodFourWeeks, PeriodCustom:
		return true
	}
	return false
}

// MonthViewType controls how the Month period is interpreted.
type MonthViewType string

const (
	MonthViewCalendar     MonthViewType = "calendar_month"
	MonthViewFourWeeksPay MonthViewType = "four_weeks_pay"
)

func (m MonthViewType) Valid() bool {
	return m == MonthViewCalendar || m == MonthViewFourWeeksPay
}

// DateRange is an inclusive range of civil dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normalizes both bounds to civil dates.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

func (r DateRange) Validate() error {
	if r.End.Before(r.Start) {
		return fmt.Errorf("range end %s is before start %s", r.End.Format(DateLayout), r.Start.Format(DateLayout))
	}
	return nil
}

// Contains reports whether the civil date of d lies within the range.
func (r DateRange) Contains(d time.Time) bool {
	day := Day(d)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Days returns the number of calendar days covered, both ends included.
func (r DateRange) Days() int {
	return daysBetween(r.Start, r.End) + 1
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

// DateLayout is the wire format for civil dates.
const DateLayout = "2006-01-02"

// Day truncates t to its civil date at midnight UTC. The calendar fields are
// read in t's own location so a local evening does not roll into tomorrow.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

func daysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

func normalizeWeekStart(weekStartDay int) int {
	return ((weekStartDay % 7) + 7) % 7
}

// StartOfWeek returns the most recent date on or before date whose weekday
// equals weekStartDay (0 = Sunday ... 6 = Saturday).
func StartOfWeek(date time.Time, weekStartDay int) time.Time {
	day := Day(date)
	current := int(day.Weekday())
	daysToSubtract := (current - normalizeWeekStart(weekStartDay) + 7) % 7
	return day.AddDate(0, 0, -daysToSubtract)
}

// DateRangeForPeriod returns the inclusive range the period covers around the
// reference date. A custom period without a range falls back to the month.
func DateRangeForPeriod(period Period, referenceDate time.Time, weekStartDay int, custom *DateRange) DateRange {
	ref := Day(referenceDate)

	switch period {
	case PeriodToday:
		return DateRange{Start: ref, End: ref}
	case PeriodWeek:
		start := StartOfWeek(ref, weekStartDay)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}
	case PeriodYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(1, 0, -1)}
	case PeriodFourWeeks:
		start := StartOfWeek(ref, weekStartDay)
		return DateRange{Start: start, End: start.AddDate(0, 0, 27)}
	case PeriodCustom:
		if custom != nil {
			return NewDateRange(custom.Start, custom.End)
		}
	}

	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// PreviousDateRange returns the comparison range immediately preceding the
// period's current range.
func PreviousDateRange(period Period, referenceDate time.Time, weekStartDay int, custom *DateRange) DateRange {
	current := DateRangeForPeriod(period, referenceDate, weekStartDay, custom)

	switch period {
	case PeriodToday:
		prev := current.Start.AddDate(0, 0, -1)
		return DateRange{Start: prev, End: prev}
	case PeriodWeek:
		return DateRange{Start: current.Start.AddDate(0, 0, -7), End: current.End.AddDate(0, 0, -7)}
	case PeriodYear:
		return DateRange{Start: current.Start.AddDate(-1, 0, 0), End: current.End.AddDate(-1, 0, 0)}
	case PeriodFourWeeks:
		return DateRange{Start: current.Start.AddDate(0, 0, -28), End: current.Start.AddDate(0, 0, -1)}
	case PeriodCustom:
		if custom != nil {
			n := current.Days()
			return DateRange{Start: current.Start.AddDate(0, 0, -n), End: current.End.AddDate(0, 0, -n)}
		}
	}

	// current.Start is the 1st, so AddDate never normalizes into another month.
	return DateRange{Start: current.Start.AddDate(0, -1, 0), End: current.Start.AddDate(0, 0, -1)}
}

// Selection is the period state a dashboard request carries.
type Selection struct {
	Period       Period
	MonthView    MonthViewType
	WeekStartDay int
	Custom       *DateRange
}

// effectivePeriod maps a Month selection viewed as four-week pay onto the
// FourWeeks period.
func (s Selection) effectivePeriod() Period {
	if s.Period == PeriodMonth && s.MonthView == MonthViewFourWeeksPay {
		return PeriodFourWeeks
	}
	return s.Period
}

func (s Selection) Range(referenceDate time.Time) DateRange {
	return DateRangeForPeriod(s.effectivePeriod(), referenceDate, s.WeekStartDay, s.Custom)
}

func (s Selection) PreviousRange(referenceDate time.Time) DateRange {
	return PreviousDateRange(s.effectivePeriod(), referenceDate, s.WeekStartDay, s.Custom)
}
