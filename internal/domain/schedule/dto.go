package schedule

import (
	"time"

	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/validator"
)

var dayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekRequest is the wire form of a whole-week replace. All seven days must
// be present and carry a recognized shift value.
type WeekRequest struct {
	Days map[string]string `json:"days"`
}

// Validate checks the request and converts it to the seven-slot array.
func (r WeekRequest) Validate() ([7]Shift, error) {
	var errs validator.ValidationErrors
	var days [7]Shift

	for i, name := range dayNames {
		value, ok := r.Days[name]
		if !ok {
			errs = append(errs, validator.ValidationError{Field: name, Message: "day is required"})
			continue
		}
		if !validator.IsInSlice(value, ShiftValues) {
			errs = append(errs, validator.ValidationError{Field: name, Message: "unrecognized shift value"})
			continue
		}
		days[i] = Shift(value)
	}

	for name := range r.Days {
		if !validator.IsInSlice(name, dayNames[:]) {
			errs = append(errs, validator.ValidationError{Field: name, Message: "unknown day"})
		}
	}

	if len(errs) > 0 {
		return days, errs
	}
	return days, nil
}

// WeekResponse is the wire form of an employee's week.
type WeekResponse struct {
	EmployeeID string            `json:"employee_id"`
	Days       map[string]string `json:"days"`
	UpdatedAt  *string           `json:"updated_at,omitempty"`
}

func ToWeekResponse(week Week) WeekResponse {
	days := make(map[string]string, 7)
	for i, name := range dayNames {
		days[name] = string(week.Days[i])
	}
	resp := WeekResponse{
		EmployeeID: week.EmployeeID,
		Days:       days,
	}
	if !week.UpdatedAt.IsZero() {
		s := week.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &s
	}
	return resp
}
