package utils

import "time"

// CurrentStreak 计算当前连续打卡天数。
// 规则：以今天或昨天为终点，向前数连续的自然日（UTC）；
// 终点既不是今天也不是昨天时连续中断，返回0。
func CurrentStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	// 按天去重
	days := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		days[truncateToDay(d)] = true
	}

	today = truncateToDay(today)
	yesterday := today.AddDate(0, 0, -1)

	// 确定连续段的终点
	var cursor time.Time
	switch {
	case days[today]:
		cursor = today
	case days[yesterday]:
		cursor = yesterday
	default:
		return 0
	}

	streak := 0
	for days[cursor] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
