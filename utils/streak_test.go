package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCurrentStreakEndingToday(t *testing.T) {
	dates := []time.Time{day("2024-03-08"), day("2024-03-09"), day("2024-03-10")}
	assert.Equal(t, 3, CurrentStreak(dates, day("2024-03-10")))
}

func TestCurrentStreakEndingYesterday(t *testing.T) {
	dates := []time.Time{day("2024-03-08"), day("2024-03-09")}
	assert.Equal(t, 2, CurrentStreak(dates, day("2024-03-10")))
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	// 3/6之后断了一天，连续段只数到3/08
	dates := []time.Time{day("2024-03-05"), day("2024-03-06"), day("2024-03-08"), day("2024-03-09"), day("2024-03-10")}
	assert.Equal(t, 3, CurrentStreak(dates, day("2024-03-10")))
}

func TestCurrentStreakStaleDates(t *testing.T) {
	// 最近一次打卡在前天，连续中断
	dates := []time.Time{day("2024-03-07"), day("2024-03-08")}
	assert.Equal(t, 0, CurrentStreak(dates, day("2024-03-10")))
}

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, day("2024-03-10")))
}

func TestCurrentStreakDuplicateDays(t *testing.T) {
	// 同一天多条记录只算一天
	dates := []time.Time{day("2024-03-10"), day("2024-03-10"), day("2024-03-09")}
	assert.Equal(t, 2, CurrentStreak(dates, day("2024-03-10")))
}

func TestCurrentStreakSingleDayToday(t *testing.T) {
	dates := []time.Time{day("2024-03-10")}
	assert.Equal(t, 1, CurrentStreak(dates, day("2024-03-10")))
}
