// Package export renders earnings data as spreadsheet files.
package export

import (
	"bytes"
	"fmt"

	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/format"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the media type of the generated workbook.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ShiftRow is one line of the shifts sheet. StatusLabel is a format label key.
type ShiftRow struct {
	Date        string
	Employer    string
	StatusLabel string
	Hours       float64
	Sales       float64
	Tips        float64
	TipOut      float64
	Other       float64
	GrossIncome float64
	NetIncome   float64
	TakeHome    float64
	Notes       string
}

type EarningsWorkbook struct {
	Period earnings.Period
	Range  earnings.DateRange
	Rows   []ShiftRow
	Stats  earnings.Stats
}

var shiftHeaders = []string{
	format.LabelDate,
	format.LabelEmployer,
	format.LabelStatus,
	format.LabelHours,
	format.LabelSales,
	format.LabelTips,
	format.LabelTipOut,
	format.LabelOther,
	format.LabelWages,
	format.LabelNetWages,
	format.LabelTotalRevenue,
	format.LabelNotes,
}

// EarningsXLSX builds a workbook with a Shifts sheet and a Summary sheet,
// labelled in the formatter's language.
func EarningsXLSX(wb EarningsWorkbook, f *format.Formatter) (*bytes.Buffer, error) {
	x := excelize.NewFile()
	defer x.Close()

	shiftsSheet := f.Label(format.LabelShifts)
	summarySheet := f.Label(format.LabelSummary)

	if err := x.SetSheetName("Sheet1", shiftsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := x.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	moneyStyle, err := x.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("failed to create number style: %w", err)
	}

	for i, key := range shiftHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := x.SetCellValue(shiftsSheet, cell, f.Label(key)); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(shiftHeaders), 1)
	if err := x.SetCellStyle(shiftsSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, row := range wb.Rows {
		r := i + 2
		values := []interface{}{
			row.Date,
			row.Employer,
			f.Label(row.StatusLabel),
			row.Hours,
			row.Sales,
			row.Tips,
			row.TipOut,
			row.Other,
			row.GrossIncome,
			row.NetIncome,
			row.TakeHome,
			row.Notes,
		}
		start, _ := excelize.CoordinatesToCellName(1, r)
		if err := x.SetSheetRow(shiftsSheet, start, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r, err)
		}
	}
	if len(wb.Rows) > 0 {
		last := len(wb.Rows) + 1
		if err := x.SetCellStyle(shiftsSheet, "E2", fmt.Sprintf("K%d", last), moneyStyle); err != nil {
			return nil, err
		}
	}
	_ = x.SetColWidth(shiftsSheet, "A", "A", 12)
	_ = x.SetColWidth(shiftsSheet, "B", "B", 20)
	_ = x.SetColWidth(shiftsSheet, "L", "L", 40)

	if _, err := x.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	s := wb.Stats
	summary := [][]interface{}{
		{f.Label(format.LabelPeriod), f.Label(format.PeriodLabel(wb.Period))},
		{f.Label(format.LabelDate), wb.Range.String()},
		{f.Label(format.LabelHours), s.Hours},
		{f.Label(format.LabelSales), s.Sales},
		{f.Label(format.LabelTips), s.Tips},
		{f.Label(format.LabelTipOut), s.TipOut},
		{f.Label(format.LabelOther), s.Other},
		{f.Label(format.LabelWages), s.GrossIncome},
		{f.Label(format.LabelNetWages), s.NetIncome},
		{f.Label(format.LabelTotalRevenue), s.TotalRevenue},
		{f.Label(format.LabelTipPercentage), f.Percent(s.TipPercentage)},
		{f.Label(format.LabelHourlyRate), f.Currency(s.EffectiveHourlyRate)},
		{f.Label(format.LabelWorkedShifts), s.WorkedShifts},
		{f.Label(format.LabelMissedShifts), s.MissedShifts},
	}
	for i, line := range summary {
		start, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := x.SetSheetRow(summarySheet, start, &line); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}
	_ = x.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(summary)), headerStyle)
	_ = x.SetColWidth(summarySheet, "A", "A", 24)

	buf, err := x.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
