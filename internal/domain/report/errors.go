package report

import "errors"

var (
	ErrTooManyShifts = errors.New("too many shifts in range, narrow the period")
)
