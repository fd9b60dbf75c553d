package http

import (
	"net/http"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/dashboard"
	"github.com/DeFacto365/Protip365-sub004/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns stats, comparison and performance for a period
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetSummaries returns stats for every fixed period around a date
	GetSummaries(w http.ResponseWriter, r *http.Request)
	// GetPerformance returns targets and the performance score only
	GetPerformance(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// dashboardRequestFromQuery reads period, month_view, date, start_date and end_date.
func dashboardRequestFromQuery(r *http.Request) dashboard.DashboardRequest {
	q := r.URL.Query()
	return dashboard.DashboardRequest{
		Period:    q.Get("period"),
		MonthView: q.Get("month_view"),
		Date:      q.Get("date"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context(), dashboardRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSummaries handles GET /dashboard/summary
func (h *dashboardHandlerImpl) GetSummaries(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	result, err := h.dashboardService.GetPeriodSummaries(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPerformance handles GET /dashboard/performance
func (h *dashboardHandlerImpl) GetPerformance(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetPerformance(r.Context(), dashboardRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
