package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns stats for the selected period and the one before it,
	// with targets, performance and the most recent worked shifts
	GetDashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)

	// GetPeriodSummaries returns stats for every fixed period around a date
	GetPeriodSummaries(ctx context.Context, date string) (*PeriodSummariesResponse, error)

	// GetPerformance returns resolved targets and the performance score only
	GetPerformance(ctx context.Context, req DashboardRequest) (*PerformanceOnlyResponse, error)
}
