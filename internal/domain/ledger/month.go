package ledger

import (
	"fmt"
	"time"

	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/validator"
)

// LogicalDayStartHour is the hour at which a business day begins. A timestamp
// before 04:00 still belongs to the previous calendar day, so night-shift
// punches land on the day the shift started.
const LogicalDayStartHour = 4

// Month identifies one ledger partition. Persisted-state keys use the
// "2006_01" form (underscore-separated), which is also the physical table
// suffix.
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(key string) (Month, error) {
	if !validator.IsValidMonthKey(key) {
		return Month{}, ErrInvalidMonthKey
	}
	t, err := time.Parse("2006_01", key)
	if err != nil {
		return Month{}, ErrInvalidMonthKey
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month the given date belongs to.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Key() string {
	return fmt.Sprintf("%04d_%02d", m.Year, int(m.Month))
}

// Days returns the calendar length of the month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Dates returns every calendar date of the month, midnight UTC.
func (m Month) Dates() []time.Time {
	days := m.Days()
	dates := make([]time.Time, 0, days)
	for d := 1; d <= days; d++ {
		dates = append(dates, time.Date(m.Year, m.Month, d, 0, 0, 0, 0, time.UTC))
	}
	return dates
}

func (m Month) Contains(date time.Time) bool {
	return date.Year() == m.Year && date.Month() == m.Month
}

// LogicalDate maps a timestamp to its business date: anything before
// LogicalDayStartHour counts as the previous calendar day. The result is the
// date at midnight UTC, comparable with Month.Dates.
func LogicalDate(t time.Time) time.Time {
	shifted := t.Add(-LogicalDayStartHour * time.Hour)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}
