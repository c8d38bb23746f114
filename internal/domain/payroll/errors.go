package payroll

import "errors"

// Payroll domain errors
var (
	ErrMissingBaseSalary = errors.New("employee has no base salary configured")
	ErrAdvanceNotFound   = errors.New("advance not found")
)
