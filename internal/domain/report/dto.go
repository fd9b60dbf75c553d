package report

import (
	"github.com/DeFacto365/Protip365-sub004/internal/domain/dashboard"
)

// EarningsReportRequest selects the shifts to export, the same way the
// dashboard selects a period.
type EarningsReportRequest struct {
	dashboard.DashboardRequest
	// Language overrides the profile's preferred language for labels.
	Language string `json:"language"`
}

func (r *EarningsReportRequest) Validate() error {
	return r.DashboardRequest.Validate()
}

// File is a generated download.
type File struct {
	Filename    string
	ContentType string
	Content     []byte
}
