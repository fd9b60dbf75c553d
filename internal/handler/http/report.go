package http

import (
	"net/http"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/report"
	"github.com/DeFacto365/Protip365-sub004/internal/handler/http/response"
)

type ReportHandler interface {
	// ExportEarnings handles GET /reports/earnings.xlsx
	ExportEarnings(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) ExportEarnings(w http.ResponseWriter, r *http.Request) {
	req := report.EarningsReportRequest{
		DashboardRequest: dashboardRequestFromQuery(r),
		Language:         r.URL.Query().Get("lang"),
	}

	file, err := h.reportService.ExportEarnings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}
