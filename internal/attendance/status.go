package attendance

import "time"

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
	StatusLeave   = "LEAVE"
)

const (
	lateCutoffHour   = 10
	lateCutoffMinute = 30

	fullDayHours = 8.0
)

// ValidStatus reports whether s is one of the closed attendance statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusLeave:
		return true
	default:
		return false
	}
}

// ClassifyStatus derives the attendance status for a day.
//
// Short working hours win over lateness: an employee who checked in late
// and worked under 8 hours is HALF_DAY, not LATE. workingHours is nil at
// check-in time, so only the lateness rule can fire then; the caller
// reclassifies at check-out once the hours are known.
func ClassifyStatus(checkIn time.Time, workingHours *float64) string {
	if workingHours != nil && *workingHours < fullDayHours {
		return StatusHalfDay
	}
	if checkIn.Hour() > lateCutoffHour ||
		(checkIn.Hour() == lateCutoffHour && checkIn.Minute() > lateCutoffMinute) {
		return StatusLate
	}
	return StatusPresent
}

// hoursBetween returns the elapsed time between check-in and check-out in
// fractional hours.
func hoursBetween(checkIn, checkOut time.Time) float64 {
	return checkOut.Sub(checkIn).Hours()
}

// dayKey collapses a timestamp to its UTC calendar date. This single
// derivation is authoritative for "one record per employee per day".
func dayKey(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
