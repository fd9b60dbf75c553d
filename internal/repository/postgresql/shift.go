package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/database"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// shiftColumns is shared by every read so scanShift sees one layout.
const shiftColumns = `
	s.id, s.user_id, s.employer_id, em.name, s.shift_date,
	to_char(s.start_time, 'HH24:MI'), to_char(s.end_time, 'HH24:MI'),
	s.expected_hours, s.hourly_rate, s.lunch_break_minutes, s.status, s.missed_reason,
	s.sales_target, s.notes, s.created_at, s.updated_at,
	e.id, e.actual_hours, e.sales, e.tips, e.cash_out, e.other,
	e.hourly_rate, e.gross_income, e.net_income, e.deduction_percentage,
	e.notes, e.created_at, e.updated_at`

const shiftFrom = `
	FROM shifts s
	LEFT JOIN shift_entries e ON e.shift_id = s.id
	LEFT JOIN employers em ON em.id = s.employer_id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShift(row rowScanner) (shift.Shift, error) {
	var s shift.Shift
	var status string
	var missedReason *string

	var (
		entryID                                 *string
		actualHours, sales, tips, cashOut, other *float64
		entryCreatedAt, entryUpdatedAt          *time.Time
		entry                                   shift.Entry
	)

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.EmployerID,
		&s.EmployerName,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.ExpectedHours,
		&s.HourlyRate,
		&s.LunchBreakMinutes,
		&status,
		&missedReason,
		&s.SalesTarget,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
		&entryID,
		&actualHours,
		&sales,
		&tips,
		&cashOut,
		&other,
		&entry.HourlyRate,
		&entry.GrossIncome,
		&entry.NetIncome,
		&entry.DeductionPercentage,
		&entry.Notes,
		&entryCreatedAt,
		&entryUpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	s.Date = earnings.Day(s.Date)
	s.Status = shift.Status(status)
	if missedReason != nil {
		reason := shift.MissedReason(*missedReason)
		s.MissedReason = &reason
	}
	s.AdoptLegacyMissedReason()

	if entryID != nil {
		entry.ID = *entryID
		entry.ShiftID = s.ID
		entry.UserID = s.UserID
		entry.ActualHours = deref(actualHours)
		entry.Sales = deref(sales)
		entry.Tips = deref(tips)
		entry.CashOut = deref(cashOut)
		entry.Other = deref(other)
		if entryCreatedAt != nil {
			entry.CreatedAt = *entryCreatedAt
		}
		if entryUpdatedAt != nil {
			entry.UpdatedAt = *entryUpdatedAt
		}
		s.Entry = &entry
	}

	return s, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func missedReasonArg(r *shift.MissedReason) *string {
	if r == nil {
		return nil
	}
	v := string(*r)
	return &v
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO shifts (
			id, user_id, employer_id, shift_date, start_time, end_time,
			expected_hours, hourly_rate, lunch_break_minutes, status, missed_reason,
			sales_target, notes
		)
		VALUES ($1, $2, $3, $4, $5::time, $6::time, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := q.Exec(ctx, query,
		s.ID,
		s.UserID,
		s.EmployerID,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.ExpectedHours,
		s.HourlyRate,
		s.LunchBreakMinutes,
		string(s.Status),
		missedReasonArg(s.MissedReason),
		s.SalesTarget,
		s.Notes,
	)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return r.GetByID(ctx, s.ID, s.UserID)
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id, userID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.id = $1 AND s.user_id = $2
	`

	s, err := scanShift(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	return s, nil
}

func (r *shiftRepositoryImpl) List(ctx context.Context, userID string, filter shift.ShiftFilter) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "s.user_id = $1"
	args := []interface{}{userID}
	argIndex := 2

	if filter.StartDate != nil {
		start, err := earnings.ParseDate(*filter.StartDate)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid start_date: %w", err)
		}
		whereClause += fmt.Sprintf(" AND s.shift_date >= $%d", argIndex)
		args = append(args, start)
		argIndex++
	}
	if filter.EndDate != nil {
		end, err := earnings.ParseDate(*filter.EndDate)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid end_date: %w", err)
		}
		whereClause += fmt.Sprintf(" AND s.shift_date <= $%d", argIndex)
		args = append(args, end)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND s.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.EmployerID != nil {
		whereClause += fmt.Sprintf(" AND s.employer_id = $%d", argIndex)
		args = append(args, *filter.EmployerID)
		argIndex++
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM shifts s WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s
		WHERE %s
		ORDER BY s.shift_date DESC, s.start_time DESC NULLS LAST, s.created_at DESC
		LIMIT $%d OFFSET $%d
	`, shiftColumns, shiftFrom, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	shifts, err := r.queryShifts(ctx, q, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return shifts, total, nil
}

func (r *shiftRepositoryImpl) ListByDateRange(ctx context.Context, userID string, dateRange earnings.DateRange) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.user_id = $1 AND s.shift_date BETWEEN $2 AND $3
		ORDER BY s.shift_date ASC, s.start_time ASC NULLS LAST
	`

	return r.queryShifts(ctx, q, query, userID, dateRange.Start, dateRange.End)
}

func (r *shiftRepositoryImpl) queryShifts(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]shift.Shift, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	shifts := []shift.Shift{}
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			employer_id = $3,
			shift_date = $4,
			start_time = $5::time,
			end_time = $6::time,
			expected_hours = $7,
			hourly_rate = $8,
			lunch_break_minutes = $9,
			sales_target = $10,
			notes = $11,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	tag, err := q.Exec(ctx, query,
		s.ID,
		s.UserID,
		s.EmployerID,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.ExpectedHours,
		s.HourlyRate,
		s.LunchBreakMinutes,
		s.SalesTarget,
		s.Notes,
	)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.Shift{}, shift.ErrShiftNotFound
	}

	return r.GetByID(ctx, s.ID, s.UserID)
}

func (r *shiftRepositoryImpl) UpdateStatus(ctx context.Context, id, userID string, status shift.Status, reason *shift.MissedReason) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = $3, missed_reason = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	tag, err := q.Exec(ctx, query, id, userID, string(status), missedReasonArg(reason))
	if err != nil {
		return fmt.Errorf("failed to update shift status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepositoryImpl) MarkOverdueMissed(ctx context.Context, before time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE shifts s
			SET status = 'missed', updated_at = NOW()
			WHERE s.status = 'planned'
				AND s.shift_date < $1
				AND NOT EXISTS (SELECT 1 FROM shift_entries e WHERE e.shift_id = s.id)
			RETURNING s.user_id
		)
		SELECT DISTINCT user_id FROM updated
	`

	rows, err := q.Query(ctx, query, earnings.Day(before))
	if err != nil {
		return nil, fmt.Errorf("failed to mark overdue shifts missed: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	return userIDs, rows.Err()
}
