package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsHoliday_Sundays(t *testing.T) {
	assert.True(t, IsHoliday(date(2024, time.January, 7)))
	assert.True(t, IsHoliday(date(2024, time.January, 14)))
	assert.True(t, IsHoliday(date(2024, time.December, 29)))
}

func TestIsHoliday_SecondSaturdayOnly(t *testing.T) {
	// January 2024 Saturdays: 6, 13, 20, 27
	assert.False(t, IsHoliday(date(2024, time.January, 6)))
	assert.True(t, IsHoliday(date(2024, time.January, 13)))
	assert.False(t, IsHoliday(date(2024, time.January, 20)))
	assert.False(t, IsHoliday(date(2024, time.January, 27)))

	// June 2024 Saturdays: 1, 8, 15, 22, 29
	assert.False(t, IsHoliday(date(2024, time.June, 1)))
	assert.True(t, IsHoliday(date(2024, time.June, 8)))
	assert.False(t, IsHoliday(date(2024, time.June, 29)))
}

func TestIsHoliday_Weekdays(t *testing.T) {
	for day := 8; day <= 12; day++ {
		assert.False(t, IsHoliday(date(2024, time.January, day)), "day %d", day)
	}
}

func TestHolidayName(t *testing.T) {
	name, ok := HolidayName(date(2024, time.January, 14))
	assert.True(t, ok)
	assert.Equal(t, NameSunday, name)

	name, ok = HolidayName(date(2024, time.January, 13))
	assert.True(t, ok)
	assert.Equal(t, NameSecondSaturday, name)

	_, ok = HolidayName(date(2024, time.January, 15))
	assert.False(t, ok)
}

func TestMonthHolidays(t *testing.T) {
	days := MonthHolidays(2024, time.January)

	// 4 Sundays (7, 14, 21, 28) + second Saturday (13)
	assert.Len(t, days, 5)
	for _, d := range days {
		assert.True(t, IsHoliday(d))
	}
}
