package utils

import (
	"math"
	"time"
)

// FormatDate 将时间格式化为 YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekStart 返回给定时刻所在自然周的周一 00:00:00（本地时区）
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// IsAfterSundayDeadline 判断给定时刻是否已过周日21点的结算截止线
func IsAfterSundayDeadline(t time.Time) bool {
	return t.Weekday() == time.Sunday && t.Hour() >= 21
}

// Round2 金额四舍五入保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
