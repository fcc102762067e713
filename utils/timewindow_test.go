package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 3, 13, 15, 30, 45, 0, time.UTC) // 周三

func TestDailyWindow(t *testing.T) {
	w := DailyWindow(now)
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 13, 23, 59, 59, 999999999, time.UTC), w.End)
}

func TestWeeklyWindowStartsSunday(t *testing.T) {
	w := WeeklyWindow(now)
	assert.Equal(t, time.Sunday, w.Start.Weekday())
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Saturday, w.End.Weekday())
	assert.Equal(t, time.Date(2024, 3, 16, 23, 59, 59, 999999999, time.UTC), w.End)
}

func TestWeeklyWindowOnSunday(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	w := WeeklyWindow(sunday)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), w.Start)
}

func TestMonthlyWindow(t *testing.T) {
	w := MonthlyWindow(now)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC), w.End)
}

// 相邻窗口必须无缝衔接且互不重叠
func TestWindowsContiguous(t *testing.T) {
	today := DailyWindow(now)
	tomorrow := DailyWindow(now.AddDate(0, 0, 1))
	assert.Equal(t, time.Nanosecond, tomorrow.Start.Sub(today.End))

	thisWeek := WeeklyWindow(now)
	nextWeek := WeeklyWindow(now.AddDate(0, 0, 7))
	assert.Equal(t, time.Nanosecond, nextWeek.Start.Sub(thisWeek.End))

	thisMonth := MonthlyWindow(now)
	nextMonth := MonthlyWindow(now.AddDate(0, 1, 0))
	assert.Equal(t, time.Nanosecond, nextMonth.Start.Sub(thisMonth.End))
}

func TestWindowForPeriod(t *testing.T) {
	assert.Equal(t, DailyWindow(now), WindowForPeriod("daily", now))
	assert.Equal(t, WeeklyWindow(now), WindowForPeriod("weekly", now))
	assert.Equal(t, MonthlyWindow(now), WindowForPeriod("monthly", now))
}

func TestWindowConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	local := time.Date(2024, 3, 14, 2, 0, 0, 0, loc) // UTC是3月13日18点
	w := DailyWindow(local)
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), w.Start)
}
