package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/dashboard"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/profile"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "user-1"

type staticShifts struct {
	shifts []shift.Shift
	err    error
}

func (s staticShifts) ListByDateRange(_ context.Context, user string, r earnings.DateRange) ([]shift.Shift, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []shift.Shift
	for _, sh := range s.shifts {
		if sh.UserID == user && r.Contains(sh.Date) {
			out = append(out, sh)
		}
	}
	return out, nil
}

type staticProfile struct {
	profile profile.Profile
}

func (s staticProfile) Resolve(context.Context, string) (profile.Profile, error) {
	return s.profile, nil
}

func ptr(v float64) *float64 { return &v }

func day(s string) time.Time {
	d, err := earnings.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func worked(date string, hours, sales, tips, cashOut float64) shift.Shift {
	return shift.Shift{
		ID:            "shift-" + date,
		UserID:        userID,
		Date:          day(date),
		ExpectedHours: hours,
		HourlyRate:    15,
		Status:        shift.StatusCompleted,
		Entry: &shift.Entry{
			ActualHours: hours,
			Sales:       sales,
			Tips:        tips,
			CashOut:     cashOut,
		},
	}
}

func fixtureShifts() []shift.Shift {
	snapshot := worked("2024-03-10", 6, 500, 90, 10)
	snapshot.Entry.GrossIncome = ptr(90)
	snapshot.Entry.NetIncome = ptr(72)

	missed := shift.Shift{ID: "missed", UserID: userID, Date: day("2024-03-14"), ExpectedHours: 5, HourlyRate: 15, Status: shift.StatusMissed}
	planned := shift.Shift{ID: "planned", UserID: userID, Date: day("2024-03-16"), ExpectedHours: 5, HourlyRate: 15, Status: shift.StatusPlanned}
	foreign := worked("2024-03-11", 8, 1000, 200, 0)
	foreign.UserID = "someone-else"

	return []shift.Shift{
		snapshot,
		worked("2024-03-12", 5, 400, 70, 0),
		missed,
		planned,
		worked("2024-02-20", 4, 300, 40, 0),
		foreign,
	}
}

func fixtureProfile() profile.Profile {
	p := profile.Default(userID)
	p.AverageDeductionPercentage = 20
	p.Targets = earnings.UserTargets{
		TipPercentage: 16,
		MonthlySales:  1000,
		MonthlyHours:  44,
		WeeklyHours:   11,
	}
	return p
}

func newService(shifts dashboard.ShiftReader, p profile.Profile) *DashboardServiceImpl {
	svc := NewDashboardService(shifts, staticProfile{profile: p}).(*DashboardServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC) }
	return svc
}

func authContext(t *testing.T, user string) context.Context {
	t.Helper()
	svc := jwt.NewJWTService("test-secret", time.Hour, time.Minute)
	tokenString, _, err := svc.GenerateAccessToken(user, "user@example.com")
	require.NoError(t, err)
	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestDashboardService_GetDashboard_Month(t *testing.T) {
	svc := newService(staticShifts{shifts: fixtureShifts()}, fixtureProfile())

	resp, err := svc.GetDashboard(authContext(t, userID), dashboard.DashboardRequest{})
	require.NoError(t, err)

	assert.Equal(t, "month", resp.Period)
	assert.Equal(t, "2024-03-15", resp.ReferenceDate)
	assert.Equal(t, dashboard.DateRangeResponse{Start: "2024-03-01", End: "2024-03-31", Days: 31}, resp.Range)
	assert.Equal(t, dashboard.DateRangeResponse{Start: "2024-02-01", End: "2024-02-29", Days: 29}, resp.PreviousRange)

	cur := resp.Current
	assert.Equal(t, 11.0, cur.Hours)
	assert.True(t, cur.Sales.Equal(decimal.NewFromInt(900)))
	assert.True(t, cur.Tips.Equal(decimal.NewFromInt(160)))
	// 90 snapshot + 5h × 15 = 165 gross; 72 + 60 net
	assert.True(t, cur.GrossIncome.Equal(decimal.NewFromInt(165)), cur.GrossIncome.String())
	assert.True(t, cur.NetIncome.Equal(decimal.NewFromInt(132)), cur.NetIncome.String())
	assert.True(t, cur.TotalRevenue.Equal(decimal.NewFromInt(282)), cur.TotalRevenue.String())
	assert.Equal(t, 17.78, cur.TipPercentage)
	assert.Equal(t, 2, cur.WorkedShifts)
	assert.Equal(t, 1, cur.MissedShifts)
	assert.Equal(t, 1, cur.ScheduledShifts)

	assert.Equal(t, 1, resp.Previous.WorkedShifts)
	assert.Equal(t, 300.0, resp.Changes.Tips)
	assert.Equal(t, 175.0, resp.Changes.Hours)

	assert.Equal(t, 44.0, resp.Targets.Hours)
	assert.True(t, resp.Performance.HasTargets)
	assert.True(t, resp.Performance.HasScore)
	require.Len(t, resp.Performance.Metrics, 3)
	assert.Equal(t, string(earnings.StatusPoor), resp.Performance.Metrics[0].Status)
	assert.Equal(t, string(earnings.StatusWarning), resp.Performance.Metrics[1].Status)
	assert.Equal(t, string(earnings.StatusGood), resp.Performance.Metrics[2].Status)

	require.Len(t, resp.RecentShifts, 2)
	assert.Equal(t, "2024-03-12", resp.RecentShifts[0].Date)
	assert.Equal(t, "2024-03-10", resp.RecentShifts[1].Date)
	assert.True(t, resp.HasData)
}

func TestDashboardService_GetDashboard_FourWeeksPayView(t *testing.T) {
	svc := newService(staticShifts{shifts: fixtureShifts()}, fixtureProfile())

	resp, err := svc.GetDashboard(authContext(t, userID), dashboard.DashboardRequest{
		Period:    "month",
		MonthView: "four_weeks_pay",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-10", resp.Range.Start)
	assert.Equal(t, "2024-04-06", resp.Range.End)
	assert.Equal(t, "2024-02-11", resp.PreviousRange.Start)
	assert.Equal(t, "2024-03-09", resp.PreviousRange.End)
	// weekly hours × 4
	assert.Equal(t, 44.0, resp.Targets.Hours)
}

func TestDashboardService_GetDashboard_EmptyRange(t *testing.T) {
	svc := newService(staticShifts{}, profile.Default(userID))

	resp, err := svc.GetDashboard(authContext(t, userID), dashboard.DashboardRequest{Period: "today"})
	require.NoError(t, err)

	assert.False(t, resp.HasData)
	assert.Equal(t, 0.0, resp.Current.Hours)
	assert.True(t, resp.Current.TotalRevenue.IsZero())
	assert.True(t, resp.Current.EffectiveHourlyRate.IsZero())
	assert.Equal(t, 0.0, resp.Changes.TotalRevenue)
	assert.False(t, resp.Performance.HasTargets)
	assert.Equal(t, string(earnings.StatusNone), resp.Performance.Status)
	assert.Empty(t, resp.RecentShifts)
}

func TestDashboardService_GetDashboard_CustomRange(t *testing.T) {
	svc := newService(staticShifts{shifts: fixtureShifts()}, fixtureProfile())

	resp, err := svc.GetDashboard(authContext(t, userID), dashboard.DashboardRequest{
		Period:    "custom",
		StartDate: "2024-03-11",
		EndDate:   "2024-03-13",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Range.Days)
	assert.Equal(t, "2024-03-08", resp.PreviousRange.Start)
	assert.Equal(t, "2024-03-10", resp.PreviousRange.End)
	assert.Equal(t, 1, resp.Current.WorkedShifts)
	assert.Equal(t, 1, resp.Previous.WorkedShifts)
	assert.False(t, resp.Performance.HasTargets)
}

func TestDashboardService_GetDashboard_InvalidPeriod(t *testing.T) {
	svc := newService(staticShifts{}, fixtureProfile())

	_, err := svc.GetDashboard(authContext(t, userID), dashboard.DashboardRequest{Period: "decade"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "period")
}

func TestDashboardService_GetDashboard_RequiresAuth(t *testing.T) {
	svc := newService(staticShifts{}, fixtureProfile())

	_, err := svc.GetDashboard(context.Background(), dashboard.DashboardRequest{})

	assert.Error(t, err)
}

func TestDashboardService_GetDashboard_StoreError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := newService(staticShifts{err: boom}, fixtureProfile())

	_, err := svc.GetDashboard(authContext(t, userID), dashboard.DashboardRequest{})

	assert.ErrorIs(t, err, boom)
}

func TestDashboardService_GetPeriodSummaries(t *testing.T) {
	svc := newService(staticShifts{shifts: fixtureShifts()}, fixtureProfile())

	resp, err := svc.GetPeriodSummaries(authContext(t, userID), "")
	require.NoError(t, err)

	require.Len(t, resp.Periods, len(earnings.Periods))
	byPeriod := map[string]dashboard.PeriodSummary{}
	for _, p := range resp.Periods {
		byPeriod[p.Period] = p
	}

	assert.Equal(t, 0, byPeriod["today"].Stats.WorkedShifts)
	assert.Equal(t, 2, byPeriod["week"].Stats.WorkedShifts)
	assert.Equal(t, "2024-03-10", byPeriod["week"].Range.Start)
	assert.Equal(t, 2, byPeriod["month"].Stats.WorkedShifts)
	assert.Equal(t, 3, byPeriod["year"].Stats.WorkedShifts)
	assert.Equal(t, 2, byPeriod["four_weeks"].Stats.WorkedShifts)
}

func TestDashboardService_GetPeriodSummaries_InvalidDate(t *testing.T) {
	svc := newService(staticShifts{}, fixtureProfile())

	_, err := svc.GetPeriodSummaries(authContext(t, userID), "15/03/2024")

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestDashboardService_GetPerformance_Year(t *testing.T) {
	svc := newService(staticShifts{shifts: fixtureShifts()}, fixtureProfile())

	resp, err := svc.GetPerformance(authContext(t, userID), dashboard.DashboardRequest{Period: "year"})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", resp.Range.Start)
	// March: monthly targets × 3
	assert.Equal(t, 132.0, resp.Targets.Hours)
	assert.True(t, resp.Targets.Sales.Equal(decimal.NewFromInt(3000)))
	assert.True(t, resp.Performance.HasScore)
}

func TestDashboardService_VariableScheduleUsesDailyTargets(t *testing.T) {
	p := fixtureProfile()
	p.HasVariableSchedule = true
	p.Targets.DailyHours = 6
	svc := newService(staticShifts{shifts: fixtureShifts()}, p)

	resp, err := svc.GetPerformance(authContext(t, userID), dashboard.DashboardRequest{Period: "month"})
	require.NoError(t, err)

	assert.Equal(t, 6.0, resp.Targets.Hours)
	assert.True(t, resp.Targets.Sales.IsZero())
}
