package response

import (
	"errors"
	"net/http"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/attendance"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/employee"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/payroll"
	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/validator"
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
	// Ledger domain errors
	case errors.Is(err, ledger.ErrInvalidMonthKey):
		BadRequest(w, "Invalid month key, expected YYYY_MM", nil)
	case errors.Is(err, ledger.ErrRowNotFound):
		NotFound(w, "Ledger row not found")
	case errors.Is(err, ledger.ErrNoUpdatableFields):
		BadRequest(w, "No updatable fields provided", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeBlocked):
		Conflict(w, "Employee is blocked from payroll")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrMissingBaseSalary):
		Conflict(w, "Employee has no base salary configured")

	// Upstream errors
	case errors.Is(err, attendance.ErrPunchSourceUnavailable):
		BadGateway(w, "Punch source unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
