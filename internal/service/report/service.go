package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/dashboard"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/report"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/export"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/format"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
)

// maxExportShifts bounds a single workbook
const maxExportShifts = 5000

type ReportServiceImpl struct {
	shifts   dashboard.ShiftReader
	profiles dashboard.ProfileResolver
	now      func() time.Time
}

func NewReportService(shifts dashboard.ShiftReader, profiles dashboard.ProfileResolver) report.ReportService {
	return &ReportServiceImpl{
		shifts:   shifts,
		profiles: profiles,
		now:      time.Now,
	}
}

var statusLabels = map[shift.WorkedStatus]string{
	shift.WorkedStatusWorked:    format.LabelWorked,
	shift.WorkedStatusScheduled: format.LabelScheduled,
	shift.WorkedStatusMissed:    format.LabelMissed,
}

// ExportEarnings implements report.ReportService.
func (s *ReportServiceImpl) ExportEarnings(ctx context.Context, req report.EarningsReportRequest) (report.File, error) {
	if err := req.Validate(); err != nil {
		return report.File{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return report.File{}, err
	}

	p, err := s.profiles.Resolve(ctx, userID)
	if err != nil {
		return report.File{}, fmt.Errorf("failed to resolve profile: %w", err)
	}

	reference := earnings.Day(s.now())
	if req.Date != "" {
		reference, _ = earnings.ParseDate(req.Date)
	}
	selection := earnings.Selection{
		Period:       earnings.Period(req.Period),
		MonthView:    earnings.MonthViewType(req.MonthView),
		WeekStartDay: p.WeekStartDay,
		Custom:       req.CustomRange(),
	}
	dateRange := selection.Range(reference)

	shifts, err := s.shifts.ListByDateRange(ctx, userID, dateRange)
	if err != nil {
		return report.File{}, fmt.Errorf("failed to load shifts: %w", err)
	}
	if len(shifts) > maxExportShifts {
		return report.File{}, report.ErrTooManyShifts
	}
	sort.SliceStable(shifts, func(i, j int) bool { return shifts[i].Date.Before(shifts[j].Date) })

	opts := p.AggregateOptions()
	rows := make([]export.ShiftRow, 0, len(shifts))
	for _, sh := range shifts {
		rows = append(rows, toRow(sh, opts))
	}

	lang := p.PreferredLanguage
	if req.Language != "" {
		lang = req.Language
	}

	buf, err := export.EarningsXLSX(export.EarningsWorkbook{
		Period: earnings.Period(req.Period),
		Range:  dateRange,
		Rows:   rows,
		Stats:  earnings.Aggregate(shift.Records(shifts), opts),
	}, format.New(lang))
	if err != nil {
		return report.File{}, fmt.Errorf("failed to build workbook: %w", err)
	}

	return report.File{
		Filename: fmt.Sprintf("earnings_%s_%s.xlsx",
			dateRange.Start.Format(earnings.DateLayout), dateRange.End.Format(earnings.DateLayout)),
		ContentType: export.ContentTypeXLSX,
		Content:     buf.Bytes(),
	}, nil
}

func toRow(sh shift.Shift, opts earnings.AggregateOptions) export.ShiftRow {
	row := export.ShiftRow{
		Date:        sh.Date.Format(earnings.DateLayout),
		StatusLabel: statusLabels[sh.WorkedStatus()],
	}
	if sh.EmployerName != nil {
		row.Employer = *sh.EmployerName
	}
	if sh.Notes != nil {
		row.Notes = *sh.Notes
	}
	if sh.MissedReason != nil && row.Notes == "" {
		row.Notes = string(*sh.MissedReason)
	}

	if e := sh.Entry; e != nil {
		income := earnings.ResolveIncome(sh.Record(), opts)
		row.Hours = e.ActualHours
		row.Sales = e.Sales
		row.Tips = e.Tips
		row.TipOut = e.CashOut
		row.Other = e.Other
		row.GrossIncome = income.Gross
		row.NetIncome = income.Net
		row.TakeHome = income.Net + e.Tips + e.Other - e.CashOut
	}
	return row
}
