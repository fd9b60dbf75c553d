package employer

import (
	"context"
	"errors"
	"fmt"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/employer"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/sanitize"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmployerServiceImpl struct {
	employer.EmployerRepository
}

func NewEmployerService(employerRepo employer.EmployerRepository) employer.EmployerService {
	return &EmployerServiceImpl{
		EmployerRepository: employerRepo,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateEmployer implements employer.EmployerService.
func (s *EmployerServiceImpl) CreateEmployer(ctx context.Context, req employer.CreateEmployerRequest) (employer.EmployerResponse, error) {
	if err := req.Validate(); err != nil {
		return employer.EmployerResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return employer.EmployerResponse{}, err
	}

	created, err := s.EmployerRepository.Create(ctx, employer.Employer{
		UserID:     userID,
		Name:       sanitize.Text(req.Name),
		HourlyRate: req.HourlyRate.InexactFloat64(),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return employer.EmployerResponse{}, employer.ErrEmployerNameExists
		}
		return employer.EmployerResponse{}, fmt.Errorf("failed to create employer: %w", err)
	}

	return employer.ToResponse(created), nil
}

// GetEmployer implements employer.EmployerService.
func (s *EmployerServiceImpl) GetEmployer(ctx context.Context, id string) (employer.EmployerResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return employer.EmployerResponse{}, err
	}

	e, err := s.EmployerRepository.GetByID(ctx, id, userID)
	if err != nil {
		return employer.EmployerResponse{}, err
	}
	return employer.ToResponse(e), nil
}

// ListEmployers implements employer.EmployerService.
func (s *EmployerServiceImpl) ListEmployers(ctx context.Context, activeOnly bool) ([]employer.EmployerResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employers, err := s.EmployerRepository.List(ctx, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employers: %w", err)
	}

	resp := make([]employer.EmployerResponse, 0, len(employers))
	for _, e := range employers {
		resp = append(resp, employer.ToResponse(e))
	}
	return resp, nil
}

// UpdateEmployer implements employer.EmployerService.
func (s *EmployerServiceImpl) UpdateEmployer(ctx context.Context, req employer.UpdateEmployerRequest) (employer.EmployerResponse, error) {
	if err := req.Validate(); err != nil {
		return employer.EmployerResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return employer.EmployerResponse{}, err
	}

	e, err := s.EmployerRepository.GetByID(ctx, req.ID, userID)
	if err != nil {
		return employer.EmployerResponse{}, err
	}

	if req.Name != nil {
		e.Name = sanitize.Text(*req.Name)
	}
	if req.HourlyRate != nil {
		e.HourlyRate = req.HourlyRate.InexactFloat64()
	}
	if req.Active != nil {
		e.Active = *req.Active
	}

	updated, err := s.EmployerRepository.Update(ctx, e)
	if err != nil {
		if isUniqueViolation(err) {
			return employer.EmployerResponse{}, employer.ErrEmployerNameExists
		}
		return employer.EmployerResponse{}, err
	}

	return employer.ToResponse(updated), nil
}

// DeactivateEmployer implements employer.EmployerService. Past shifts keep
// pointing at the employer.
func (s *EmployerServiceImpl) DeactivateEmployer(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.EmployerRepository.SetActive(ctx, id, userID, false)
}
