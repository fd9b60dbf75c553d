package dashboard

import (
	"errors"
	"testing"

	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRequest_ValidateDefaults(t *testing.T) {
	req := DashboardRequest{}
	require.NoError(t, req.Validate())
	assert.Equal(t, "month", req.Period)
	assert.Equal(t, "calendar_month", req.MonthView)
	assert.Nil(t, req.CustomRange())
}

func TestDashboardRequest_ValidateCustomRangeLength(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"single day", "2024-03-10", "2024-03-10", false},
		{"full leap year", "2024-01-01", "2024-12-31", false},
		{"one day over", "2024-01-01", "2025-01-01", true},
		{"end before start", "2024-03-10", "2024-03-09", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DashboardRequest{Period: "custom", StartDate: tt.start, EndDate: tt.end}
			err := req.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				assert.LessOrEqual(t, req.CustomRange().Days(), MaxCustomRangeDays)
				return
			}

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Contains(t, errs.ToMap(), "end_date")
		})
	}
}

func TestDashboardRequest_ValidateRejectsUnknownPeriod(t *testing.T) {
	req := DashboardRequest{Period: "fortnight", MonthView: "biweekly"}

	var errs validator.ValidationErrors
	require.True(t, errors.As(req.Validate(), &errs))
	assert.Contains(t, errs.ToMap(), "period")
	assert.Contains(t, errs.ToMap(), "month_view")
}
