package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 5, hour, minute, 0, 0, time.UTC)
}

func TestClassifyStatus_OnTime(t *testing.T) {
	assert.Equal(t, StatusPresent, ClassifyStatus(at(9, 0), nil))
	assert.Equal(t, StatusPresent, ClassifyStatus(at(10, 30), nil))
}

func TestClassifyStatus_Late(t *testing.T) {
	assert.Equal(t, StatusLate, ClassifyStatus(at(10, 31), nil))
	assert.Equal(t, StatusLate, ClassifyStatus(at(10, 45), nil))
	assert.Equal(t, StatusLate, ClassifyStatus(at(11, 0), nil))
}

func TestClassifyStatus_HalfDayOverridesLateness(t *testing.T) {
	short := 6.5
	assert.Equal(t, StatusHalfDay, ClassifyStatus(at(9, 0), &short))

	// Checked in late and worked short hours: the half-day rule wins.
	assert.Equal(t, StatusHalfDay, ClassifyStatus(at(12, 0), &short))
}

func TestClassifyStatus_FullHours(t *testing.T) {
	full := 8.0
	assert.Equal(t, StatusPresent, ClassifyStatus(at(9, 0), &full))

	long := 9.25
	assert.Equal(t, StatusLate, ClassifyStatus(at(11, 0), &long))
}

func TestHoursBetween(t *testing.T) {
	in := at(9, 0)
	out := at(17, 30)
	assert.InDelta(t, 8.5, hoursBetween(in, out), 1e-9)
}

func TestDayKey_SingleDerivation(t *testing.T) {
	morning := time.Date(2024, time.March, 5, 0, 5, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 5, 23, 55, 0, 0, time.UTC)
	assert.Equal(t, dayKey(morning), dayKey(evening))
	assert.NotEqual(t, dayKey(morning), dayKey(evening.Add(time.Hour)))
}
