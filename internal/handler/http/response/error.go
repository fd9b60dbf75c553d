package response

import (
	"errors"
	"net/http"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/employer"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/profile"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/report"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, jwt.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrEntryNotFound):
		NotFound(w, "Shift entry not found")
	case errors.Is(err, shift.ErrShiftAlreadyWorked):
		Conflict(w, "Shift already has an entry and cannot be marked missed")
	case errors.Is(err, shift.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrDateRangeTooLong):
		BadRequest(w, err.Error(), nil)

	// Employer domain errors
	case errors.Is(err, employer.ErrEmployerNotFound):
		NotFound(w, "Employer not found")
	case errors.Is(err, employer.ErrEmployerNameExists):
		Conflict(w, "Employer with this name already exists")
	case errors.Is(err, employer.ErrEmployerInactive):
		BadRequest(w, "Employer is inactive", nil)

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")

	// Report errors
	case errors.Is(err, report.ErrTooManyShifts):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
