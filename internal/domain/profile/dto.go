package profile

import (
	"strconv"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateProfileRequest struct {
	Name                       *string          `json:"name,omitempty"`
	PreferredLanguage          *string          `json:"preferred_language,omitempty"`
	WeekStartDay               *int             `json:"week_start_day,omitempty"`
	HasVariableSchedule        *bool            `json:"has_variable_schedule,omitempty"`
	DefaultHourlyRate          *decimal.Decimal `json:"default_hourly_rate,omitempty"`
	AverageDeductionPercentage *float64         `json:"average_deduction_percentage,omitempty"`
	DefaultEmployerID          *string          `json:"default_employer_id,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && len(*r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}
	if r.PreferredLanguage != nil && !validator.IsInSlice(*r.PreferredLanguage, LanguageValues) {
		errs = append(errs, validator.ValidationError{Field: "preferred_language", Message: "preferred_language must be one of: en, fr, es"})
	}
	if r.WeekStartDay != nil && (*r.WeekStartDay < 0 || *r.WeekStartDay > 6) {
		errs = append(errs, validator.ValidationError{Field: "week_start_day", Message: "week_start_day must be between 0 (Sunday) and 6 (Saturday)"})
	}
	if r.DefaultHourlyRate != nil && r.DefaultHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "default_hourly_rate", Message: "must be non-negative"})
	}
	if r.AverageDeductionPercentage != nil && !validator.IsPercentage(*r.AverageDeductionPercentage) {
		errs = append(errs, validator.ValidationError{Field: "average_deduction_percentage", Message: "must be between 0 and 100"})
	}
	if r.DefaultEmployerID != nil && *r.DefaultEmployerID != "" && !validator.IsValidUUID(*r.DefaultEmployerID) {
		errs = append(errs, validator.ValidationError{Field: "default_employer_id", Message: "default_employer_id must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateTargetsRequest sets goals; zero clears a goal.
type UpdateTargetsRequest struct {
	TipPercentage *float64         `json:"tip_percentage,omitempty"`
	DailySales    *decimal.Decimal `json:"daily_sales,omitempty"`
	WeeklySales   *decimal.Decimal `json:"weekly_sales,omitempty"`
	MonthlySales  *decimal.Decimal `json:"monthly_sales,omitempty"`
	DailyHours    *float64         `json:"daily_hours,omitempty"`
	WeeklyHours   *float64         `json:"weekly_hours,omitempty"`
	MonthlyHours  *float64         `json:"monthly_hours,omitempty"`
	DailyIncome   *decimal.Decimal `json:"daily_income,omitempty"`
	WeeklyIncome  *decimal.Decimal `json:"weekly_income,omitempty"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income,omitempty"`
}

func (r *UpdateTargetsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TipPercentage != nil && !validator.IsPercentage(*r.TipPercentage) {
		errs = append(errs, validator.ValidationError{Field: "tip_percentage", Message: "must be between 0 and 100"})
	}

	hours := []struct {
		field string
		value *float64
		max   float64
	}{
		{"daily_hours", r.DailyHours, 24},
		{"weekly_hours", r.WeeklyHours, 24 * 7},
		{"monthly_hours", r.MonthlyHours, 24 * 31},
	}
	for _, h := range hours {
		if h.value != nil && (!validator.IsNonNegative(*h.value) || *h.value > h.max) {
			errs = append(errs, validator.ValidationError{Field: h.field, Message: "must be between 0 and " + strconv.Itoa(int(h.max))})
		}
	}

	amounts := []struct {
		field string
		value *decimal.Decimal
	}{
		{"daily_sales", r.DailySales},
		{"weekly_sales", r.WeeklySales},
		{"monthly_sales", r.MonthlySales},
		{"daily_income", r.DailyIncome},
		{"weekly_income", r.WeeklyIncome},
		{"monthly_income", r.MonthlyIncome},
	}
	for _, a := range amounts {
		if a.value != nil && a.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: a.field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply overlays the request onto existing targets.
func (r *UpdateTargetsRequest) Apply(t earnings.UserTargets) earnings.UserTargets {
	setFloat := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setMoney := func(dst *float64, v *decimal.Decimal) {
		if v != nil {
			*dst = v.InexactFloat64()
		}
	}

	setFloat(&t.TipPercentage, r.TipPercentage)
	setMoney(&t.DailySales, r.DailySales)
	setMoney(&t.WeeklySales, r.WeeklySales)
	setMoney(&t.MonthlySales, r.MonthlySales)
	setFloat(&t.DailyHours, r.DailyHours)
	setFloat(&t.WeeklyHours, r.WeeklyHours)
	setFloat(&t.MonthlyHours, r.MonthlyHours)
	setMoney(&t.DailyIncome, r.DailyIncome)
	setMoney(&t.WeeklyIncome, r.WeeklyIncome)
	setMoney(&t.MonthlyIncome, r.MonthlyIncome)
	return t
}

type TargetsResponse struct {
	TipPercentage float64         `json:"tip_percentage"`
	DailySales    decimal.Decimal `json:"daily_sales"`
	WeeklySales   decimal.Decimal `json:"weekly_sales"`
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	DailyHours    float64         `json:"daily_hours"`
	WeeklyHours   float64         `json:"weekly_hours"`
	MonthlyHours  float64         `json:"monthly_hours"`
	DailyIncome   decimal.Decimal `json:"daily_income"`
	WeeklyIncome  decimal.Decimal `json:"weekly_income"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
}

type ProfileResponse struct {
	UserID                     string          `json:"user_id"`
	Name                       *string         `json:"name,omitempty"`
	PreferredLanguage          string          `json:"preferred_language"`
	WeekStartDay               int             `json:"week_start_day"`
	HasVariableSchedule        bool            `json:"has_variable_schedule"`
	DefaultHourlyRate          decimal.Decimal `json:"default_hourly_rate"`
	AverageDeductionPercentage float64         `json:"average_deduction_percentage"`
	DefaultEmployerID          *string         `json:"default_employer_id,omitempty"`
	Targets                    TargetsResponse `json:"targets"`
	UpdatedAt                  *string         `json:"updated_at,omitempty"`
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func ToResponse(p Profile) ProfileResponse {
	resp := ProfileResponse{
		UserID:                     p.UserID,
		Name:                       p.Name,
		PreferredLanguage:          p.PreferredLanguage,
		WeekStartDay:               p.WeekStartDay,
		HasVariableSchedule:        p.HasVariableSchedule,
		DefaultHourlyRate:          money(p.DefaultHourlyRate),
		AverageDeductionPercentage: p.AverageDeductionPercentage,
		DefaultEmployerID:          p.DefaultEmployerID,
		Targets: TargetsResponse{
			TipPercentage: p.Targets.TipPercentage,
			DailySales:    money(p.Targets.DailySales),
			WeeklySales:   money(p.Targets.WeeklySales),
			MonthlySales:  money(p.Targets.MonthlySales),
			DailyHours:    p.Targets.DailyHours,
			WeeklyHours:   p.Targets.WeeklyHours,
			MonthlyHours:  p.Targets.MonthlyHours,
			DailyIncome:   money(p.Targets.DailyIncome),
			WeeklyIncome:  money(p.Targets.WeeklyIncome),
			MonthlyIncome: money(p.Targets.MonthlyIncome),
		},
	}
	if !p.UpdatedAt.IsZero() {
		updated := p.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}
	return resp
}
