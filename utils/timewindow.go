package utils

import "time"

// 时间窗口统一按UTC计算，避免本地时区带来的边界歧义。

// TimeWindow 表示一个左闭右闭的报告时间窗口
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// DailyWindow 返回 now 所在自然日的窗口 [00:00:00, 23:59:59.999999999]
func DailyWindow(now time.Time) TimeWindow {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return TimeWindow{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
}

// WeeklyWindow 返回 now 所在周的窗口，周日为一周的起点
func WeeklyWindow(now time.Time) TimeWindow {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return TimeWindow{
		Start: start,
		End:   start.AddDate(0, 0, 7).Add(-time.Nanosecond),
	}
}

// MonthlyWindow 返回 now 所在自然月的窗口
func MonthlyWindow(now time.Time) TimeWindow {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return TimeWindow{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// WindowForPeriod 按周期名称返回时间窗口
func WindowForPeriod(period string, now time.Time) TimeWindow {
	switch period {
	case "weekly":
		return WeeklyWindow(now)
	case "monthly":
		return MonthlyWindow(now)
	default:
		return DailyWindow(now)
	}
}
