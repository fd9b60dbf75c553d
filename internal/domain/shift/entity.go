package shift

import (
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
)

type Shift struct {
	ID                string
	UserID            string
	EmployerID        *string
	EmployerName      *string
	Date              time.Time
	StartTime         *string
	EndTime           *string
	ExpectedHours     float64
	HourlyRate        float64
	LunchBreakMinutes int
	Status            Status
	MissedReason      *MissedReason
	SalesTarget       *float64
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Entry *Entry
}

type Entry struct {
	ID                  string
	ShiftID             string
	UserID              string
	ActualHours         float64
	Sales               float64
	Tips                float64
	CashOut             float64
	Other               float64
	HourlyRate          *float64
	GrossIncome         *float64
	NetIncome           *float64
	DeductionPercentage *float64
	Notes               *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Status string

const (
	StatusPlanned   Status = "planned"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

var StatusValues = []string{
	string(StatusPlanned),
	string(StatusCompleted),
	string(StatusMissed),
}

// WorkedStatus is derived from the entry and status, never stored.
type WorkedStatus string

const (
	WorkedStatusWorked    WorkedStatus = "worked"
	WorkedStatusScheduled WorkedStatus = "scheduled"
	WorkedStatusMissed    WorkedStatus = "missed"
)

func (s Shift) WorkedStatus() WorkedStatus {
	switch {
	case s.Entry != nil:
		return WorkedStatusWorked
	case s.Status == StatusMissed:
		return WorkedStatusMissed
	default:
		return WorkedStatusScheduled
	}
}

// EffectiveHours is the scheduled duration minus the unpaid lunch break.
func (s Shift) EffectiveHours() float64 {
	h := s.ExpectedHours - float64(s.LunchBreakMinutes)/60
	if h < 0 {
		return 0
	}
	return h
}

// Record converts the shift into the aggregator's input shape.
func (s Shift) Record() earnings.Record {
	rate := s.HourlyRate
	r := earnings.Record{
		Date:          s.Date,
		ExpectedHours: s.ExpectedHours,
		HourlyRate:    &rate,
		Missed:        s.WorkedStatus() == WorkedStatusMissed,
	}
	if s.Entry != nil {
		r.Entry = &earnings.Entry{
			ActualHours:         s.Entry.ActualHours,
			Sales:               s.Entry.Sales,
			Tips:                s.Entry.Tips,
			CashOut:             s.Entry.CashOut,
			Other:               s.Entry.Other,
			HourlyRate:          s.Entry.HourlyRate,
			GrossIncome:         s.Entry.GrossIncome,
			NetIncome:           s.Entry.NetIncome,
			DeductionPercentage: s.Entry.DeductionPercentage,
		}
	}
	return r
}

func Records(shifts []Shift) []earnings.Record {
	records := make([]earnings.Record, len(shifts))
	for i, s := range shifts {
		records[i] = s.Record()
	}
	return records
}
