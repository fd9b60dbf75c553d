package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrEntryNotFound      = errors.New("shift entry not found")
	ErrShiftAlreadyWorked = errors.New("shift already has an entry and cannot be marked missed")
	ErrInvalidDateRange   = errors.New("end_date must not be before start_date")
	ErrDateRangeTooLong   = errors.New("date range must not exceed 366 days")
)
