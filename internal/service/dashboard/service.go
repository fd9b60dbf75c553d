package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/dashboard"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/profile"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const recentShiftsLimit = 5

type DashboardServiceImpl struct {
	shifts   dashboard.ShiftReader
	profiles dashboard.ProfileResolver
	now      func() time.Time
}

func NewDashboardService(shifts dashboard.ShiftReader, profiles dashboard.ProfileResolver) dashboard.DashboardService {
	return &DashboardServiceImpl{
		shifts:   shifts,
		profiles: profiles,
		now:      time.Now,
	}
}

// request is a validated dashboard request resolved against the user's profile
type request struct {
	userID    string
	profile   profile.Profile
	reference time.Time
	period    earnings.Period
	monthView earnings.MonthViewType
	selection earnings.Selection
}

func (s *DashboardServiceImpl) resolve(ctx context.Context, req dashboard.DashboardRequest) (request, error) {
	if err := req.Validate(); err != nil {
		return request{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return request{}, err
	}

	p, err := s.profiles.Resolve(ctx, userID)
	if err != nil {
		return request{}, fmt.Errorf("failed to resolve profile: %w", err)
	}

	reference := earnings.Day(s.now())
	if req.Date != "" {
		reference, _ = earnings.ParseDate(req.Date)
	}

	period := earnings.Period(req.Period)
	monthView := earnings.MonthViewType(req.MonthView)

	return request{
		userID:    userID,
		profile:   p,
		reference: reference,
		period:    period,
		monthView: monthView,
		selection: earnings.Selection{
			Period:       period,
			MonthView:    monthView,
			WeekStartDay: p.WeekStartDay,
			Custom:       req.CustomRange(),
		},
	}, nil
}

func (r request) targets() earnings.Targets {
	return earnings.ResolveTargets(earnings.TargetQuery{
		Period:              r.period,
		MonthView:           r.monthView,
		HasVariableSchedule: r.profile.HasVariableSchedule,
		ReferenceDate:       r.reference,
	}, r.profile.Targets)
}

// GetDashboard loads the current and previous ranges in parallel
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, req dashboard.DashboardRequest) (*dashboard.DashboardResponse, error) {
	r, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	currentRange := r.selection.Range(r.reference)
	previousRange := r.selection.PreviousRange(r.reference)

	var currentShifts, previousShifts []shift.Shift

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		shifts, err := s.shifts.ListByDateRange(gCtx, r.userID, currentRange)
		if err != nil {
			return fmt.Errorf("failed to load current shifts: %w", err)
		}
		currentShifts = shifts
		return nil
	})

	g.Go(func() error {
		shifts, err := s.shifts.ListByDateRange(gCtx, r.userID, previousRange)
		if err != nil {
			return fmt.Errorf("failed to load previous shifts: %w", err)
		}
		previousShifts = shifts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts := r.profile.AggregateOptions()
	current := earnings.Aggregate(shift.Records(currentShifts), opts)
	previous := earnings.Aggregate(shift.Records(previousShifts), opts)
	targets := r.targets()

	return &dashboard.DashboardResponse{
		Period:        string(r.period),
		MonthView:     string(r.monthView),
		ReferenceDate: r.reference.Format(earnings.DateLayout),
		Range:         dashboard.NewDateRangeResponse(currentRange),
		PreviousRange: dashboard.NewDateRangeResponse(previousRange),
		Current:       dashboard.NewStatsResponse(current),
		Previous:      dashboard.NewStatsResponse(previous),
		Changes:       dashboard.NewChangesResponse(earnings.Compare(current, previous)),
		Targets:       dashboard.NewTargetsResponse(targets),
		Performance:   dashboard.NewPerformanceResponse(earnings.Score(current, targets)),
		RecentShifts:  recentWorked(currentShifts, opts),
		HasData:       current.HasData(),
	}, nil
}

// recentWorked returns the latest worked shifts, newest first
func recentWorked(shifts []shift.Shift, opts earnings.AggregateOptions) []shift.ShiftResponse {
	worked := make([]shift.Shift, 0, len(shifts))
	for _, sh := range shifts {
		if sh.WorkedStatus() == shift.WorkedStatusWorked {
			worked = append(worked, sh)
		}
	}

	sort.SliceStable(worked, func(i, j int) bool {
		return worked[i].Date.After(worked[j].Date)
	})
	if len(worked) > recentShiftsLimit {
		worked = worked[:recentShiftsLimit]
	}

	resp := make([]shift.ShiftResponse, 0, len(worked))
	for _, sh := range worked {
		resp = append(resp, shift.ToResponse(sh, opts))
	}
	return resp
}

// GetPeriodSummaries aggregates every fixed period around date concurrently
func (s *DashboardServiceImpl) GetPeriodSummaries(ctx context.Context, date string) (*dashboard.PeriodSummariesResponse, error) {
	if date != "" {
		if _, ok := validator.IsValidDate(date); !ok {
			return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
		}
	}

	r, err := s.resolve(ctx, dashboard.DashboardRequest{Date: date})
	if err != nil {
		return nil, err
	}

	opts := r.profile.AggregateOptions()
	summaries := make([]dashboard.PeriodSummary, len(earnings.Periods))

	g, gCtx := errgroup.WithContext(ctx)
	for i, period := range earnings.Periods {
		g.Go(func() error {
			periodRange := earnings.Selection{Period: period, WeekStartDay: r.profile.WeekStartDay}.Range(r.reference)

			shifts, err := s.shifts.ListByDateRange(gCtx, r.userID, periodRange)
			if err != nil {
				return fmt.Errorf("failed to load %s shifts: %w", period, err)
			}

			summaries[i] = dashboard.PeriodSummary{
				Period: string(period),
				Range:  dashboard.NewDateRangeResponse(periodRange),
				Stats:  dashboard.NewStatsResponse(earnings.Aggregate(shift.Records(shifts), opts)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.PeriodSummariesResponse{
		ReferenceDate: r.reference.Format(earnings.DateLayout),
		Periods:       summaries,
	}, nil
}

// GetPerformance scores the selected period without the comparison
func (s *DashboardServiceImpl) GetPerformance(ctx context.Context, req dashboard.DashboardRequest) (*dashboard.PerformanceOnlyResponse, error) {
	r, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	currentRange := r.selection.Range(r.reference)
	shifts, err := s.shifts.ListByDateRange(ctx, r.userID, currentRange)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	stats := earnings.Aggregate(shift.Records(shifts), r.profile.AggregateOptions())
	targets := r.targets()

	return &dashboard.PerformanceOnlyResponse{
		Period:      string(r.period),
		Range:       dashboard.NewDateRangeResponse(currentRange),
		Targets:     dashboard.NewTargetsResponse(targets),
		Performance: dashboard.NewPerformanceResponse(earnings.Score(stats, targets)),
	}, nil
}
