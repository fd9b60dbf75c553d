package dashboard

import (
	"math"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DashboardRequest carries the period selection from the query string.
type DashboardRequest struct {
	Period    string `json:"period"`
	MonthView string `json:"month_view"`
	Date      string `json:"date"` // reference date, defaults to today
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *DashboardRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Period == "" {
		r.Period = string(earnings.PeriodMonth)
	}
	if r.MonthView == "" {
		r.MonthView = string(earnings.MonthViewCalendar)
	}

	if !earnings.Period(r.Period).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of: today, week, month, year, four_weeks, custom",
		})
	}
	if !earnings.MonthViewType(r.MonthView).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "month_view",
			Message: "month_view must be one of: calendar_month, four_weeks_pay",
		})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	end, endOK := validator.IsValidDate(r.EndDate)
	if r.StartDate != "" && !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if r.EndDate != "" && !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if (r.StartDate == "") != (r.EndDate == "") {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "start_date and end_date must be given together"})
	}
	if startOK && endOK {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: shift.ErrInvalidDateRange.Error()})
		} else if earnings.NewDateRange(start, end).Days() > MaxCustomRangeDays {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: shift.ErrDateRangeTooLong.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MaxCustomRangeDays caps the length of a custom range, both ends included.
const MaxCustomRangeDays = 366

// CustomRange returns the caller-supplied range, if any. Call after Validate.
func (r *DashboardRequest) CustomRange() *earnings.DateRange {
	if r.StartDate == "" || r.EndDate == "" {
		return nil
	}
	start, _ := earnings.ParseDate(r.StartDate)
	end, _ := earnings.ParseDate(r.EndDate)
	return &earnings.DateRange{Start: start, End: end}
}

type DateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

func NewDateRangeResponse(r earnings.DateRange) DateRangeResponse {
	return DateRangeResponse{
		Start: r.Start.Format(earnings.DateLayout),
		End:   r.End.Format(earnings.DateLayout),
		Days:  r.Days(),
	}
}

// StatsResponse is earnings.Stats with currency rounded to cents.
type StatsResponse struct {
	Hours               float64         `json:"hours"`
	Sales               decimal.Decimal `json:"sales"`
	Tips                decimal.Decimal `json:"tips"`
	TipOut              decimal.Decimal `json:"tip_out"`
	Other               decimal.Decimal `json:"other"`
	GrossIncome         decimal.Decimal `json:"gross_income"`
	NetIncome           decimal.Decimal `json:"net_income"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TipPercentage       float64         `json:"tip_percentage"`
	EffectiveHourlyRate decimal.Decimal `json:"effective_hourly_rate"`
	WorkedShifts        int             `json:"worked_shifts"`
	MissedShifts        int             `json:"missed_shifts"`
	ScheduledShifts     int             `json:"scheduled_shifts"`
}

func NewStatsResponse(s earnings.Stats) StatsResponse {
	return StatsResponse{
		Hours:               round(s.Hours, 2),
		Sales:               shift.Money(s.Sales),
		Tips:                shift.Money(s.Tips),
		TipOut:              shift.Money(s.TipOut),
		Other:               shift.Money(s.Other),
		GrossIncome:         shift.Money(s.GrossIncome),
		NetIncome:           shift.Money(s.NetIncome),
		TotalRevenue:        shift.Money(s.TotalRevenue),
		TipPercentage:       round(s.TipPercentage, 2),
		EffectiveHourlyRate: shift.Money(s.EffectiveHourlyRate),
		WorkedShifts:        s.WorkedShifts,
		MissedShifts:        s.MissedShifts,
		ScheduledShifts:     s.ScheduledShifts,
	}
}

type TargetsResponse struct {
	Hours         float64         `json:"hours"`
	Sales         decimal.Decimal `json:"sales"`
	Income        decimal.Decimal `json:"income"`
	TipPercentage float64         `json:"tip_percentage"`
}

func NewTargetsResponse(t earnings.Targets) TargetsResponse {
	return TargetsResponse{
		Hours:         round(t.Hours, 2),
		Sales:         shift.Money(t.Sales),
		Income:        shift.Money(t.Income),
		TipPercentage: round(t.TipPercentage, 2),
	}
}

type MetricScoreResponse struct {
	Metric     string  `json:"metric"`
	Actual     float64 `json:"actual"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
	Scored     bool    `json:"scored"`
}

type PerformanceResponse struct {
	Overall    float64               `json:"overall"`
	Status     string                `json:"status"`
	HasTargets bool                  `json:"has_targets"`
	HasScore   bool                  `json:"has_score"`
	Metrics    []MetricScoreResponse `json:"metrics"`
}

func NewPerformanceResponse(p earnings.Performance) PerformanceResponse {
	resp := PerformanceResponse{
		Overall:    round(p.Overall, 2),
		Status:     string(p.Status),
		HasTargets: p.HasTargets,
		HasScore:   p.HasScore,
		Metrics:    make([]MetricScoreResponse, 0, len(p.Metrics)),
	}
	for _, m := range p.Metrics {
		resp.Metrics = append(resp.Metrics, MetricScoreResponse{
			Metric:     string(m.Metric),
			Actual:     round(m.Actual, 2),
			Target:     round(m.Target, 2),
			Percentage: round(m.Percentage, 2),
			Status:     string(m.Status),
			Scored:     m.Scored,
		})
	}
	return resp
}

type ChangesResponse struct {
	TotalRevenue float64 `json:"total_revenue"`
	GrossIncome  float64 `json:"gross_income"`
	Tips         float64 `json:"tips"`
	Hours        float64 `json:"hours"`
	Sales        float64 `json:"sales"`
	TipOut       float64 `json:"tip_out"`
	Other        float64 `json:"other"`
}

func NewChangesResponse(c earnings.Changes) ChangesResponse {
	return ChangesResponse{
		TotalRevenue: round(c.TotalRevenue, 1),
		GrossIncome:  round(c.GrossIncome, 1),
		Tips:         round(c.Tips, 1),
		Hours:        round(c.Hours, 1),
		Sales:        round(c.Sales, 1),
		TipOut:       round(c.TipOut, 1),
		Other:        round(c.Other, 1),
	}
}

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Period        string                `json:"period"`
	MonthView     string                `json:"month_view"`
	ReferenceDate string                `json:"reference_date"`
	Range         DateRangeResponse     `json:"range"`
	PreviousRange DateRangeResponse     `json:"previous_range"`
	Current       StatsResponse         `json:"current"`
	Previous      StatsResponse         `json:"previous"`
	Changes       ChangesResponse       `json:"changes"`
	Targets       TargetsResponse       `json:"targets"`
	Performance   PerformanceResponse   `json:"performance"`
	RecentShifts  []shift.ShiftResponse `json:"recent_shifts"`
	HasData       bool                  `json:"has_data"`
}

type PeriodSummary struct {
	Period string            `json:"period"`
	Range  DateRangeResponse `json:"range"`
	Stats  StatsResponse     `json:"stats"`
}

// PeriodSummariesResponse holds stats for every fixed period around one date.
type PeriodSummariesResponse struct {
	ReferenceDate string          `json:"reference_date"`
	Periods       []PeriodSummary `json:"periods"`
}

type PerformanceOnlyResponse struct {
	Period      string              `json:"period"`
	Range       DateRangeResponse   `json:"range"`
	Targets     TargetsResponse     `json:"targets"`
	Performance PerformanceResponse `json:"performance"`
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
