package employee

import "context"

// EmployeeRepository is the read-only view onto the employee directory.
type EmployeeRepository interface {
	// ListActive retrieves every non-blocked employee.
	ListActive(ctx context.Context) ([]Employee, error)

	// GetByID retrieves one employee, blocked or not.
	GetByID(ctx context.Context, id string) (Employee, error)
}
