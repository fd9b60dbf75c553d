package shift

import (
	"context"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
)

// ShiftRepository reads always join the entry and employer name.
type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id, userID string) (Shift, error)
	List(ctx context.Context, userID string, filter ShiftFilter) ([]Shift, int64, error)
	ListByDateRange(ctx context.Context, userID string, dateRange earnings.DateRange) ([]Shift, error)
	Update(ctx context.Context, shift Shift) (Shift, error)
	UpdateStatus(ctx context.Context, id, userID string, status Status, reason *MissedReason) error
	Delete(ctx context.Context, id, userID string) error

	// MarkOverdueMissed flags planned shifts dated before the given day that
	// have no entry, and returns the distinct owners that changed.
	MarkOverdueMissed(ctx context.Context, before time.Time) ([]string, error)
}

type EntryRepository interface {
	Upsert(ctx context.Context, entry Entry) (Entry, error)
	GetByShiftID(ctx context.Context, shiftID, userID string) (Entry, error)
	DeleteByShiftID(ctx context.Context, shiftID, userID string) error
}
