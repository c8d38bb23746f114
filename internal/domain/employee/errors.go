package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeBlocked  = errors.New("employee is blocked from payroll")
)
