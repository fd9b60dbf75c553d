package dashboard

import (
	"context"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/profile"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
)

// ShiftReader is the slice of the shift store the dashboard reads from
type ShiftReader interface {
	// ListByDateRange returns the user's shifts, entries joined, ordered by date
	ListByDateRange(ctx context.Context, userID string, dateRange earnings.DateRange) ([]shift.Shift, error)
}

// ProfileResolver returns a user's settings, falling back to defaults
type ProfileResolver interface {
	Resolve(ctx context.Context, userID string) (profile.Profile, error)
}
