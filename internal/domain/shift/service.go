package shift

import (
	"context"
	"time"
)

type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context, filter ShiftFilter) (ListShiftsResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error

	// Entry
	RecordEntry(ctx context.Context, req RecordEntryRequest) (ShiftResponse, error)
	DeleteEntry(ctx context.Context, shiftID string) (ShiftResponse, error)

	// Missed shifts
	MarkMissed(ctx context.Context, req MarkMissedRequest) (ShiftResponse, error)
	MarkOverdueShiftsMissed(ctx context.Context, asOf time.Time) (int, error)
}
