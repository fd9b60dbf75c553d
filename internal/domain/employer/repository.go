package employer

import "context"

type EmployerRepository interface {
	Create(ctx context.Context, employer Employer) (Employer, error)
	GetByID(ctx context.Context, id, userID string) (Employer, error)
	List(ctx context.Context, userID string, activeOnly bool) ([]Employer, error)
	Update(ctx context.Context, employer Employer) (Employer, error)
	SetActive(ctx context.Context, id, userID string, active bool) error
}
