package cron

import (
	"context"
	"log/slog"
	"time"
)

// OverdueShiftMarker is the slice of the shift service the sweep needs.
type OverdueShiftMarker interface {
	MarkOverdueShiftsMissed(ctx context.Context, asOf time.Time) (int, error)
}

type ShiftJobs struct {
	shifts   OverdueShiftMarker
	interval time.Duration
	now      func() time.Time
}

func NewShiftJobs(shifts OverdueShiftMarker, interval time.Duration) *ShiftJobs {
	return &ShiftJobs{
		shifts:   shifts,
		interval: interval,
		now:      time.Now,
	}
}

func (j *ShiftJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:     "mark_overdue_shifts_missed",
		Interval: j.interval,
		Timeout:  5 * time.Minute,
		Fn:       j.MarkOverdueShiftsMissed,
	})
}

// MarkOverdueShiftsMissed flips planned shifts dated before today, with no
// entry, to missed.
func (j *ShiftJobs) MarkOverdueShiftsMissed(ctx context.Context) error {
	users, err := j.shifts.MarkOverdueShiftsMissed(ctx, j.now())
	if err != nil {
		return err
	}
	if users > 0 {
		slog.Info("Cron: Marked overdue shifts missed", "users", users)
	}
	return nil
}
