package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/employer"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employerRepositoryImpl struct {
	db *database.DB
}

func NewEmployerRepository(db *database.DB) employer.EmployerRepository {
	return &employerRepositoryImpl{db: db}
}

const employerColumns = `id, user_id, name, hourly_rate, active, created_at, updated_at`

func scanEmployer(row rowScanner) (employer.Employer, error) {
	var e employer.Employer
	err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.HourlyRate, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *employerRepositoryImpl) Create(ctx context.Context, e employer.Employer) (employer.Employer, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employers (id, user_id, name, hourly_rate, active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING ` + employerColumns

	created, err := scanEmployer(q.QueryRow(ctx, query, e.ID, e.UserID, e.Name, e.HourlyRate))
	if err != nil {
		return employer.Employer{}, fmt.Errorf("failed to create employer: %w", err)
	}

	return created, nil
}

func (r *employerRepositoryImpl) GetByID(ctx context.Context, id, userID string) (employer.Employer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employerColumns + ` FROM employers WHERE id = $1 AND user_id = $2`

	e, err := scanEmployer(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employer.Employer{}, employer.ErrEmployerNotFound
		}
		return employer.Employer{}, fmt.Errorf("failed to get employer by ID: %w", err)
	}

	return e, nil
}

func (r *employerRepositoryImpl) List(ctx context.Context, userID string, activeOnly bool) ([]employer.Employer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employerColumns + ` FROM employers WHERE user_id = $1`
	if activeOnly {
		query += ` AND active`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employers: %w", err)
	}
	defer rows.Close()

	employers := []employer.Employer{}
	for rows.Next() {
		e, err := scanEmployer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employer: %w", err)
		}
		employers = append(employers, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employers: %w", err)
	}

	return employers, nil
}

func (r *employerRepositoryImpl) Update(ctx context.Context, e employer.Employer) (employer.Employer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employers
		SET name = $3, hourly_rate = $4, active = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + employerColumns

	updated, err := scanEmployer(q.QueryRow(ctx, query, e.ID, e.UserID, e.Name, e.HourlyRate, e.Active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employer.Employer{}, employer.ErrEmployerNotFound
		}
		return employer.Employer{}, fmt.Errorf("failed to update employer: %w", err)
	}

	return updated, nil
}

func (r *employerRepositoryImpl) SetActive(ctx context.Context, id, userID string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employers SET active = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`, id, userID, active)
	if err != nil {
		return fmt.Errorf("failed to update employer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employer.ErrEmployerNotFound
	}

	return nil
}
