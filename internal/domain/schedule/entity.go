package schedule

import "time"

// Shift is one slot of the weekly shift calendar.
type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
	// ShiftDouble means the employee works both the morning and the evening
	// shift that day; placement views count them in both buckets.
	ShiftDouble Shift = "double"
	ShiftRest   Shift = "rest"
	// ShiftUnset means the day was never configured. Distinct from ShiftRest.
	ShiftUnset Shift = "unset"
)

var ShiftValues = []string{
	string(ShiftMorning),
	string(ShiftEvening),
	string(ShiftDouble),
	string(ShiftRest),
	string(ShiftUnset),
}

// Week is the recurring weekly shift assignment of one employee: exactly
// seven slots, indexed by time.Weekday (Sunday = 0). A Week is only ever
// replaced wholesale; there is no per-day patch operation.
type Week struct {
	EmployeeID string
	Days       [7]Shift
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ShiftOn returns the slot for the given weekday.
func (w Week) ShiftOn(day time.Weekday) Shift {
	return w.Days[int(day)]
}

// DefaultDays is the week a newly assigned employee gets: weekdays morning,
// Saturday and Sunday rest.
func DefaultDays() [7]Shift {
	return [7]Shift{
		time.Sunday:    ShiftRest,
		time.Monday:    ShiftMorning,
		time.Tuesday:   ShiftMorning,
		time.Wednesday: ShiftMorning,
		time.Thursday:  ShiftMorning,
		time.Friday:    ShiftMorning,
		time.Saturday:  ShiftRest,
	}
}

// Worked reports whether the shift involves actual work (morning, evening or
// double). Rest and unset days carry no expected clock-in.
func (s Shift) Worked() bool {
	return s == ShiftMorning || s == ShiftEvening || s == ShiftDouble
}
