package holiday

import "time"

const (
	NameSunday         = "Weekly Off (Sunday)"
	NameSecondSaturday = "Second Saturday"
)

// IsHoliday reports whether the given calendar date is a non-working day.
// Every Sunday is a holiday; a Saturday is a holiday only when it is the
// second Saturday of its month. The rule is pure and depends only on the
// date components, never on persisted state.
func IsHoliday(t time.Time) bool {
	switch t.Weekday() {
	case time.Sunday:
		return true
	case time.Saturday:
		return saturdayOrdinal(t) == 2
	default:
		return false
	}
}

// HolidayName returns the display name for a holiday date. The second
// return value is false when the date is a working day.
func HolidayName(t time.Time) (string, bool) {
	switch {
	case t.Weekday() == time.Sunday:
		return NameSunday, true
	case t.Weekday() == time.Saturday && saturdayOrdinal(t) == 2:
		return NameSecondSaturday, true
	default:
		return "", false
	}
}

// saturdayOrdinal counts Saturdays from day 1 of the month up to and
// including t.
func saturdayOrdinal(t time.Time) int {
	count := 0
	for day := 1; day <= t.Day(); day++ {
		d := time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, t.Location())
		if d.Weekday() == time.Saturday {
			count++
		}
	}
	return count
}

// MonthHolidays lists every holiday date in the given month.
func MonthHolidays(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var days []time.Time
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if IsHoliday(d) {
			days = append(days, d)
		}
	}
	return days
}
