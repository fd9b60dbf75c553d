package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/employer"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/profile"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/database"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/sanitize"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/sse"
)

// ProfileResolver returns a user's settings or the defaults
type ProfileResolver interface {
	Resolve(ctx context.Context, userID string) (profile.Profile, error)
}

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	entryRepo    shift.EntryRepository
	employerRepo employer.EmployerRepository
	profiles     ProfileResolver
	transactor   database.Transactor
	publisher    sse.Publisher
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	entryRepo shift.EntryRepository,
	employerRepo employer.EmployerRepository,
	profiles ProfileResolver,
	transactor database.Transactor,
	publisher sse.Publisher,
) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		entryRepo:    entryRepo,
		employerRepo: employerRepo,
		profiles:     profiles,
		transactor:   transactor,
		publisher:    publisher,
	}
}

func (s *ShiftServiceImpl) announce(userID string, sh shift.Shift, action string) {
	s.publisher.Publish(sse.Event{
		UserID: userID,
		Event:  sse.EventShiftsChanged,
		Data: sse.ShiftsChangedData{
			ShiftID: sh.ID,
			Date:    sh.Date.Format(earnings.DateLayout),
			Action:  action,
		},
	})
}

// activeEmployer loads an employer the user may schedule shifts for.
func (s *ShiftServiceImpl) activeEmployer(ctx context.Context, id, userID string) (employer.Employer, error) {
	e, err := s.employerRepo.GetByID(ctx, id, userID)
	if err != nil {
		return employer.Employer{}, err
	}
	if !e.Active {
		return employer.Employer{}, employer.ErrEmployerInactive
	}
	return e, nil
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	p, err := s.profiles.Resolve(ctx, userID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := earnings.ParseDate(req.Date)
	newShift := shift.Shift{
		UserID:            userID,
		EmployerID:        req.EmployerID,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		ExpectedHours:     req.ExpectedHours,
		HourlyRate:        p.DefaultHourlyRate,
		LunchBreakMinutes: req.LunchBreakMinutes,
		Status:            shift.StatusPlanned,
		Notes:             sanitize.OptionalText(req.Notes),
	}
	if newShift.EmployerID == nil {
		newShift.EmployerID = p.DefaultEmployerID
	}
	if newShift.EmployerID != nil {
		e, err := s.activeEmployer(ctx, *newShift.EmployerID, userID)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		if e.HourlyRate > 0 {
			newShift.HourlyRate = e.HourlyRate
		}
	}
	if req.HourlyRate != nil {
		newShift.HourlyRate = req.HourlyRate.InexactFloat64()
	}
	if req.SalesTarget != nil {
		target := req.SalesTarget.InexactFloat64()
		newShift.SalesTarget = &target
	}

	created, err := s.shiftRepo.Create(ctx, newShift)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	s.announce(userID, created, "created")
	return shift.ToResponse(created, p.AggregateOptions()), nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	found, err := s.shiftRepo.GetByID(ctx, id, userID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.render(ctx, userID, found)
}

func (s *ShiftServiceImpl) render(ctx context.Context, userID string, sh shift.Shift) (shift.ShiftResponse, error) {
	p, err := s.profiles.Resolve(ctx, userID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(sh, p.AggregateOptions()), nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, filter shift.ShiftFilter) (shift.ListShiftsResponse, error) {
	if err := filter.Validate(); err != nil {
		return shift.ListShiftsResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}

	p, err := s.profiles.Resolve(ctx, userID)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}

	shifts, total, err := s.shiftRepo.List(ctx, userID, filter)
	if err != nil {
		return shift.ListShiftsResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	resp := shift.ListShiftsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Shifts:     make([]shift.ShiftResponse, 0, len(shifts)),
	}
	opts := p.AggregateOptions()
	for _, sh := range shifts {
		resp.Shifts = append(resp.Shifts, shift.ToResponse(sh, opts))
	}

	return resp, nil
}

// UpdateShift implements shift.ShiftService. An empty employer_id detaches
// the employer.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID, userID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.EmployerID != nil {
		if *req.EmployerID == "" {
			existing.EmployerID = nil
		} else if existing.EmployerID == nil || *existing.EmployerID != *req.EmployerID {
			if _, err := s.activeEmployer(ctx, *req.EmployerID, userID); err != nil {
				return shift.ShiftResponse{}, err
			}
			id := *req.EmployerID
			existing.EmployerID = &id
		}
	}
	if req.Date != nil {
		existing.Date, _ = earnings.ParseDate(*req.Date)
	}
	if req.StartTime != nil {
		existing.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		existing.EndTime = req.EndTime
	}
	if req.ExpectedHours != nil {
		existing.ExpectedHours = *req.ExpectedHours
	}
	if req.HourlyRate != nil {
		existing.HourlyRate = req.HourlyRate.InexactFloat64()
	}
	if req.LunchBreakMinutes != nil {
		existing.LunchBreakMinutes = *req.LunchBreakMinutes
	}
	if req.SalesTarget != nil {
		target := req.SalesTarget.InexactFloat64()
		existing.SalesTarget = &target
	}
	if req.Notes != nil {
		existing.Notes = sanitize.OptionalText(req.Notes)
	}

	updated, err := s.shiftRepo.Update(ctx, existing)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	s.announce(userID, updated, "updated")
	return s.render(ctx, userID, updated)
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	var deleted shift.Shift
	err = s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		deleted, err = s.shiftRepo.GetByID(ctx, id, userID)
		if err != nil {
			return err
		}
		if deleted.Entry != nil {
			if err := s.entryRepo.DeleteByShiftID(ctx, id, userID); err != nil && !errors.Is(err, shift.ErrEntryNotFound) {
				return err
			}
		}
		return s.shiftRepo.Delete(ctx, id, userID)
	})
	if err != nil {
		return err
	}

	s.announce(userID, deleted, "deleted")
	return nil
}

// RecordEntry implements shift.ShiftService. The wage is snapshotted with the
// rate and deduction in force now, so later settings changes leave past
// income untouched.
func (s *ShiftServiceImpl) RecordEntry(ctx context.Context, req shift.RecordEntryRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	p, err := s.profiles.Resolve(ctx, userID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	var saved shift.Shift
	err = s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.shiftRepo.GetByID(ctx, req.ShiftID, userID)
		if err != nil {
			return err
		}

		entry := shift.Entry{
			ShiftID:     existing.ID,
			UserID:      userID,
			ActualHours: req.ActualHours,
			Sales:       req.Sales.InexactFloat64(),
			Tips:        req.Tips.InexactFloat64(),
			CashOut:     req.CashOut.InexactFloat64(),
			Other:       req.Other.InexactFloat64(),
			Notes:       sanitize.OptionalText(req.Notes),
		}
		snapshotIncome(&entry, existing, p)

		if _, err := s.entryRepo.Upsert(ctx, entry); err != nil {
			return err
		}
		if err := s.shiftRepo.UpdateStatus(ctx, existing.ID, userID, shift.StatusCompleted, nil); err != nil {
			return err
		}

		saved, err = s.shiftRepo.GetByID(ctx, existing.ID, userID)
		return err
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	s.announce(userID, saved, "entry_recorded")
	return shift.ToResponse(saved, p.AggregateOptions()), nil
}

// snapshotIncome fills the wage snapshot on entry from the shift's rate, or
// the profile default when the shift has none.
func snapshotIncome(entry *shift.Entry, sh shift.Shift, p profile.Profile) {
	rate := sh.HourlyRate
	if rate <= 0 {
		rate = p.DefaultHourlyRate
	}
	deduction := p.AverageDeductionPercentage

	income := earnings.ResolveIncome(earnings.Record{
		Entry: &earnings.Entry{
			ActualHours:         entry.ActualHours,
			HourlyRate:          &rate,
			DeductionPercentage: &deduction,
		},
	}, p.AggregateOptions())

	entry.HourlyRate = &rate
	entry.DeductionPercentage = &deduction
	entry.GrossIncome = &income.Gross
	entry.NetIncome = &income.Net
}

// DeleteEntry implements shift.ShiftService. The shift goes back to planned.
func (s *ShiftServiceImpl) DeleteEntry(ctx context.Context, shiftID string) (shift.ShiftResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	var saved shift.Shift
	err = s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.entryRepo.DeleteByShiftID(ctx, shiftID, userID); err != nil {
			return err
		}
		if err := s.shiftRepo.UpdateStatus(ctx, shiftID, userID, shift.StatusPlanned, nil); err != nil {
			return err
		}
		saved, err = s.shiftRepo.GetByID(ctx, shiftID, userID)
		return err
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	s.announce(userID, saved, "entry_deleted")
	return s.render(ctx, userID, saved)
}

// MarkMissed implements shift.ShiftService.
func (s *ShiftServiceImpl) MarkMissed(ctx context.Context, req shift.MarkMissedRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	reason := shift.MissedReason(req.Reason)

	var saved shift.Shift
	err = s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.shiftRepo.GetByID(ctx, req.ShiftID, userID)
		if err != nil {
			return err
		}
		if existing.Entry != nil {
			return shift.ErrShiftAlreadyWorked
		}

		if notes := sanitize.OptionalText(req.Notes); notes != nil {
			existing.Notes = notes
			if _, err := s.shiftRepo.Update(ctx, existing); err != nil {
				return err
			}
		}
		if err := s.shiftRepo.UpdateStatus(ctx, existing.ID, userID, shift.StatusMissed, &reason); err != nil {
			return err
		}

		saved, err = s.shiftRepo.GetByID(ctx, existing.ID, userID)
		return err
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	s.announce(userID, saved, "missed")
	return s.render(ctx, userID, saved)
}

// MarkOverdueShiftsMissed flags every planned shift dated before asOf that
// never got an entry. It returns how many users were affected.
func (s *ShiftServiceImpl) MarkOverdueShiftsMissed(ctx context.Context, asOf time.Time) (int, error) {
	userIDs, err := s.shiftRepo.MarkOverdueMissed(ctx, asOf)
	if err != nil {
		return 0, err
	}

	s.publisher.PublishToUsers(userIDs, sse.EventShiftsChanged, sse.ShiftsChangedData{Action: "missed"})

	if len(userIDs) > 0 {
		slog.Info("Marked overdue shifts missed", "users", len(userIDs), "before", earnings.Day(asOf).Format(earnings.DateLayout))
	}
	return len(userIDs), nil
}
