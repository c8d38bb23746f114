package placement

// PlacedEmployee is one employee inside a shift bucket.
type PlacedEmployee struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	DoubleShift bool   `json:"double_shift"`
}

// DepartmentPlacement groups one department's employees by shift bucket for a
// single day. A double-shift employee appears in both the morning and the
// evening bucket; that is the intended meaning of "works both shifts", not a
// data error. Unconfigured days are bucketed apart from rest days.
type DepartmentPlacement struct {
	Department   string           `json:"department"`
	Morning      []PlacedEmployee `json:"morning"`
	Evening      []PlacedEmployee `json:"evening"`
	RestDay      []PlacedEmployee `json:"rest_day"`
	Unconfigured []PlacedEmployee `json:"unconfigured"`
}

// DayPlacement is the derived shift placement view for one day.
type DayPlacement struct {
	Date        string                `json:"date"`
	Departments []DepartmentPlacement `json:"departments"`
}
