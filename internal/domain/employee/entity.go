package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is owned by the external employee directory; this service only
// reads it. Blocked employees are excluded from every payroll aggregation.
type Employee struct {
	ID         string
	FullName   string
	Department *string
	Role       string
	BaseSalary *decimal.Decimal
	Blocked    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DepartmentOther buckets employees without a department in grouped views.
const DepartmentOther = "Other"

// DepartmentName returns the department or the fallback bucket.
func (e Employee) DepartmentName() string {
	if e.Department == nil || *e.Department == "" {
		return DepartmentOther
	}
	return *e.Department
}
