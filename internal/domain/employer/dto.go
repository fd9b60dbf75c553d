package employer

import (
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployerRequest struct {
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

func (r *CreateEmployerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployerRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	Active     *bool            `json:"active,omitempty"`
}

func (r *UpdateEmployerRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}
	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployerResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Active     bool            `json:"active"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

func ToResponse(e Employer) EmployerResponse {
	return EmployerResponse{
		ID:         e.ID,
		Name:       e.Name,
		HourlyRate: decimal.NewFromFloat(e.HourlyRate).Round(2),
		Active:     e.Active,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
}
