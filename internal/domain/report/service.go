package report

import "context"

type ReportService interface {
	// ExportEarnings renders the selected period's shifts and totals as XLSX.
	ExportEarnings(ctx context.Context, req EarningsReportRequest) (File, error)
}
