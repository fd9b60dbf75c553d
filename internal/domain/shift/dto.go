package shift

import (
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const maxNotesLength = 1000

type CreateShiftRequest struct {
	EmployerID        *string          `json:"employer_id,omitempty"`
	Date              string           `json:"date"`
	StartTime         *string          `json:"start_time,omitempty"`
	EndTime           *string          `json:"end_time,omitempty"`
	ExpectedHours     float64          `json:"expected_hours"`
	HourlyRate        *decimal.Decimal `json:"hourly_rate,omitempty"`
	LunchBreakMinutes int              `json:"lunch_break_minutes"`
	SalesTarget       *decimal.Decimal `json:"sales_target,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.EmployerID != nil && !validator.IsValidUUID(*r.EmployerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employer_id",
			Message: "employer_id must be a valid UUID",
		})
	}

	errs = append(errs, validateClock("start_time", r.StartTime)...)
	errs = append(errs, validateClock("end_time", r.EndTime)...)

	if !validator.IsNonNegative(r.ExpectedHours) || r.ExpectedHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_hours",
			Message: "expected_hours must be between 0 and 24",
		})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.LunchBreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "lunch_break_minutes", Message: "must be non-negative"})
	}
	if r.SalesTarget != nil && r.SalesTarget.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "sales_target", Message: "must be non-negative"})
	}
	errs = append(errs, validateNotes(r.Notes)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID                string           `json:"-"`
	EmployerID        *string          `json:"employer_id,omitempty"`
	Date              *string          `json:"date,omitempty"`
	StartTime         *string          `json:"start_time,omitempty"`
	EndTime           *string          `json:"end_time,omitempty"`
	ExpectedHours     *float64         `json:"expected_hours,omitempty"`
	HourlyRate        *decimal.Decimal `json:"hourly_rate,omitempty"`
	LunchBreakMinutes *int             `json:"lunch_break_minutes,omitempty"`
	SalesTarget       *decimal.Decimal `json:"sales_target,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EmployerID != nil && *r.EmployerID != "" && !validator.IsValidUUID(*r.EmployerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employer_id",
			Message: "employer_id must be a valid UUID",
		})
	}

	errs = append(errs, validateClock("start_time", r.StartTime)...)
	errs = append(errs, validateClock("end_time", r.EndTime)...)

	if r.ExpectedHours != nil && (!validator.IsNonNegative(*r.ExpectedHours) || *r.ExpectedHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_hours",
			Message: "expected_hours must be between 0 and 24",
		})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.LunchBreakMinutes != nil && *r.LunchBreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "lunch_break_minutes", Message: "must be non-negative"})
	}
	if r.SalesTarget != nil && r.SalesTarget.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "sales_target", Message: "must be non-negative"})
	}
	errs = append(errs, validateNotes(r.Notes)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordEntryRequest struct {
	ShiftID     string          `json:"-"`
	ActualHours float64         `json:"actual_hours"`
	Sales       decimal.Decimal `json:"sales"`
	Tips        decimal.Decimal `json:"tips"`
	CashOut     decimal.Decimal `json:"cash_out"`
	Other       decimal.Decimal `json:"other"`
	Notes       *string         `json:"notes,omitempty"`
}

func (r *RecordEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "shift_id must be a valid UUID"})
	}
	if !validator.IsNonNegative(r.ActualHours) || r.ActualHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_hours",
			Message: "actual_hours must be between 0 and 24",
		})
	}

	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"sales", r.Sales},
		{"tips", r.Tips},
		{"cash_out", r.CashOut},
		{"other", r.Other},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: a.field, Message: "must be non-negative"})
		}
	}
	errs = append(errs, validateNotes(r.Notes)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkMissedRequest struct {
	ShiftID string  `json:"-"`
	Reason  string  `json:"reason"`
	Notes   *string `json:"notes,omitempty"`
}

func (r *MarkMissedRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "shift_id must be a valid UUID"})
	}
	if !validator.IsInSlice(r.Reason, MissedReasonValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be one of: sick, shift_cancelled, personal, holiday, no_show, weather, other",
		})
	}
	errs = append(errs, validateNotes(r.Notes)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftFilter struct {
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Status     *string `json:"status,omitempty"`
	EmployerID *string `json:"employer_id,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ShiftFilter) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var hasStart, hasEnd bool
	if f.StartDate != nil {
		if start, hasStart = validator.IsValidDate(*f.StartDate); !hasStart {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != nil {
		if end, hasEnd = validator.IsValidDate(*f.EndDate); !hasEnd {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}
	if hasStart && hasEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: ErrInvalidDateRange.Error()})
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: planned, completed, missed"})
	}
	if f.EmployerID != nil && !validator.IsValidUUID(*f.EmployerID) {
		errs = append(errs, validator.ValidationError{Field: "employer_id", Message: "employer_id must be a valid UUID"})
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a positive number"})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if f.Limit == 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must not exceed 200"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateClock(field string, v *string) validator.ValidationErrors {
	if v == nil || validator.IsValidTime(*v) {
		return nil
	}
	return validator.ValidationErrors{{Field: field, Message: field + " must be in HH:MM format"}}
}

func validateNotes(notes *string) validator.ValidationErrors {
	if notes == nil || len(*notes) <= maxNotesLength {
		return nil
	}
	return validator.ValidationErrors{{Field: "notes", Message: "notes must not exceed 1000 characters"}}
}

type EntryResponse struct {
	ActualHours         float64          `json:"actual_hours"`
	Sales               decimal.Decimal  `json:"sales"`
	Tips                decimal.Decimal  `json:"tips"`
	CashOut             decimal.Decimal  `json:"cash_out"`
	Other               decimal.Decimal  `json:"other"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate,omitempty"`
	GrossIncome         decimal.Decimal  `json:"gross_income"`
	NetIncome           decimal.Decimal  `json:"net_income"`
	DeductionPercentage *float64         `json:"deduction_percentage,omitempty"`
	TotalIncome         decimal.Decimal  `json:"total_income"`
	Notes               *string          `json:"notes,omitempty"`
	UpdatedAt           string           `json:"updated_at"`
}

type ShiftResponse struct {
	ID                string           `json:"id"`
	EmployerID        *string          `json:"employer_id,omitempty"`
	EmployerName      *string          `json:"employer_name,omitempty"`
	Date              string           `json:"date"`
	StartTime         *string          `json:"start_time,omitempty"`
	EndTime           *string          `json:"end_time,omitempty"`
	ExpectedHours     float64          `json:"expected_hours"`
	EffectiveHours    float64          `json:"effective_hours"`
	HourlyRate        decimal.Decimal  `json:"hourly_rate"`
	LunchBreakMinutes int              `json:"lunch_break_minutes"`
	Status            string           `json:"status"`
	WorkedStatus      string           `json:"worked_status"`
	MissedReason      *string          `json:"missed_reason,omitempty"`
	SalesTarget       *decimal.Decimal `json:"sales_target,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
	Entry             *EntryResponse   `json:"entry,omitempty"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
}

type ListShiftsResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Shifts     []ShiftResponse `json:"shifts"`
}

// Money rounds a float to cents for the wire.
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func moneyPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := Money(*v)
	return &d
}

// ToResponse renders a shift. Wage figures on the entry go through the same
// income rule the dashboard uses.
func ToResponse(s Shift, opts earnings.AggregateOptions) ShiftResponse {
	resp := ShiftResponse{
		ID:                s.ID,
		EmployerID:        s.EmployerID,
		EmployerName:      s.EmployerName,
		Date:              s.Date.Format(earnings.DateLayout),
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		ExpectedHours:     s.ExpectedHours,
		EffectiveHours:    s.EffectiveHours(),
		HourlyRate:        Money(s.HourlyRate),
		LunchBreakMinutes: s.LunchBreakMinutes,
		Status:            string(s.Status),
		WorkedStatus:      string(s.WorkedStatus()),
		SalesTarget:       moneyPtr(s.SalesTarget),
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         s.UpdatedAt.Format(time.RFC3339),
	}
	if s.MissedReason != nil {
		reason := string(*s.MissedReason)
		resp.MissedReason = &reason
	}

	if e := s.Entry; e != nil {
		income := earnings.ResolveIncome(s.Record(), opts)
		resp.Entry = &EntryResponse{
			ActualHours:         e.ActualHours,
			Sales:               Money(e.Sales),
			Tips:                Money(e.Tips),
			CashOut:             Money(e.CashOut),
			Other:               Money(e.Other),
			HourlyRate:          moneyPtr(e.HourlyRate),
			GrossIncome:         Money(income.Gross),
			NetIncome:           Money(income.Net),
			DeductionPercentage: e.DeductionPercentage,
			TotalIncome:         Money(income.Net + e.Tips + e.Other - e.CashOut),
			Notes:               e.Notes,
			UpdatedAt:           e.UpdatedAt.Format(time.RFC3339),
		}
	}

	return resp
}
