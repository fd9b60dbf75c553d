package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/profile"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `
	user_id, name, preferred_language, week_start_day, has_variable_schedule,
	default_hourly_rate, average_deduction_percentage, default_employer_id,
	target_tip_percentage, target_sales_daily, target_sales_weekly, target_sales_monthly,
	target_hours_daily, target_hours_weekly, target_hours_monthly,
	target_income_daily, target_income_weekly, target_income_monthly,
	created_at, updated_at`

func scanProfile(row rowScanner) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.UserID,
		&p.Name,
		&p.PreferredLanguage,
		&p.WeekStartDay,
		&p.HasVariableSchedule,
		&p.DefaultHourlyRate,
		&p.AverageDeductionPercentage,
		&p.DefaultEmployerID,
		&p.Targets.TipPercentage,
		&p.Targets.DailySales,
		&p.Targets.WeeklySales,
		&p.Targets.MonthlySales,
		&p.Targets.DailyHours,
		&p.Targets.WeeklyHours,
		&p.Targets.MonthlyHours,
		&p.Targets.DailyIncome,
		&p.Targets.WeeklyIncome,
		&p.Targets.MonthlyIncome,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *profileRepositoryImpl) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	p, err := scanProfile(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (r *profileRepositoryImpl) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO profiles (
			user_id, name, preferred_language, week_start_day, has_variable_schedule,
			default_hourly_rate, average_deduction_percentage, default_employer_id,
			target_tip_percentage, target_sales_daily, target_sales_weekly, target_sales_monthly,
			target_hours_daily, target_hours_weekly, target_hours_monthly,
			target_income_daily, target_income_weekly, target_income_monthly
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			preferred_language = EXCLUDED.preferred_language,
			week_start_day = EXCLUDED.week_start_day,
			has_variable_schedule = EXCLUDED.has_variable_schedule,
			default_hourly_rate = EXCLUDED.default_hourly_rate,
			average_deduction_percentage = EXCLUDED.average_deduction_percentage,
			default_employer_id = EXCLUDED.default_employer_id,
			target_tip_percentage = EXCLUDED.target_tip_percentage,
			target_sales_daily = EXCLUDED.target_sales_daily,
			target_sales_weekly = EXCLUDED.target_sales_weekly,
			target_sales_monthly = EXCLUDED.target_sales_monthly,
			target_hours_daily = EXCLUDED.target_hours_daily,
			target_hours_weekly = EXCLUDED.target_hours_weekly,
			target_hours_monthly = EXCLUDED.target_hours_monthly,
			target_income_daily = EXCLUDED.target_income_daily,
			target_income_weekly = EXCLUDED.target_income_weekly,
			target_income_monthly = EXCLUDED.target_income_monthly,
			updated_at = NOW()
		RETURNING ` + profileColumns

	saved, err := scanProfile(q.QueryRow(ctx, query,
		p.UserID,
		p.Name,
		p.PreferredLanguage,
		p.WeekStartDay,
		p.HasVariableSchedule,
		p.DefaultHourlyRate,
		p.AverageDeductionPercentage,
		p.DefaultEmployerID,
		p.Targets.TipPercentage,
		p.Targets.DailySales,
		p.Targets.WeeklySales,
		p.Targets.MonthlySales,
		p.Targets.DailyHours,
		p.Targets.WeeklyHours,
		p.Targets.MonthlyHours,
		p.Targets.DailyIncome,
		p.Targets.WeeklyIncome,
		p.Targets.MonthlyIncome,
	))
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return saved, nil
}
