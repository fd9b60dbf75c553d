package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type entryRepositoryImpl struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) shift.EntryRepository {
	return &entryRepositoryImpl{db: db}
}

const entryColumns = `
	id, shift_id, user_id, actual_hours, sales, tips, cash_out, other,
	hourly_rate, gross_income, net_income, deduction_percentage,
	notes, created_at, updated_at`

func scanEntry(row rowScanner) (shift.Entry, error) {
	var e shift.Entry
	err := row.Scan(
		&e.ID,
		&e.ShiftID,
		&e.UserID,
		&e.ActualHours,
		&e.Sales,
		&e.Tips,
		&e.CashOut,
		&e.Other,
		&e.HourlyRate,
		&e.GrossIncome,
		&e.NetIncome,
		&e.DeductionPercentage,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Upsert keeps one entry per shift; a second save replaces the figures.
func (r *entryRepositoryImpl) Upsert(ctx context.Context, e shift.Entry) (shift.Entry, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO shift_entries (
			id, shift_id, user_id, actual_hours, sales, tips, cash_out, other,
			hourly_rate, gross_income, net_income, deduction_percentage, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (shift_id) DO UPDATE SET
			actual_hours = EXCLUDED.actual_hours,
			sales = EXCLUDED.sales,
			tips = EXCLUDED.tips,
			cash_out = EXCLUDED.cash_out,
			other = EXCLUDED.other,
			hourly_rate = EXCLUDED.hourly_rate,
			gross_income = EXCLUDED.gross_income,
			net_income = EXCLUDED.net_income,
			deduction_percentage = EXCLUDED.deduction_percentage,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		WHERE shift_entries.user_id = EXCLUDED.user_id
		RETURNING ` + entryColumns

	saved, err := scanEntry(q.QueryRow(ctx, query,
		e.ID,
		e.ShiftID,
		e.UserID,
		e.ActualHours,
		e.Sales,
		e.Tips,
		e.CashOut,
		e.Other,
		e.HourlyRate,
		e.GrossIncome,
		e.NetIncome,
		e.DeductionPercentage,
		e.Notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Entry{}, shift.ErrShiftNotFound
		}
		return shift.Entry{}, fmt.Errorf("failed to save shift entry: %w", err)
	}

	return saved, nil
}

func (r *entryRepositoryImpl) GetByShiftID(ctx context.Context, shiftID, userID string) (shift.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM shift_entries WHERE shift_id = $1 AND user_id = $2`

	e, err := scanEntry(q.QueryRow(ctx, query, shiftID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Entry{}, shift.ErrEntryNotFound
		}
		return shift.Entry{}, fmt.Errorf("failed to get shift entry: %w", err)
	}

	return e, nil
}

func (r *entryRepositoryImpl) DeleteByShiftID(ctx context.Context, shiftID, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_entries WHERE shift_id = $1 AND user_id = $2`, shiftID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete shift entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrEntryNotFound
	}

	return nil
}
