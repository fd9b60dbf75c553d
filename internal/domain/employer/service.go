package employer

import "context"

type EmployerService interface {
	CreateEmployer(ctx context.Context, req CreateEmployerRequest) (EmployerResponse, error)
	GetEmployer(ctx context.Context, id string) (EmployerResponse, error)
	ListEmployers(ctx context.Context, activeOnly bool) ([]EmployerResponse, error)
	UpdateEmployer(ctx context.Context, req UpdateEmployerRequest) (EmployerResponse, error)
	DeactivateEmployer(ctx context.Context, id string) error
}
