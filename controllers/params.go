package controllers

import "time"

// parseTimeParam 解析时间参数，兼容 RFC3339 和 YYYY-MM-DD 两种格式
func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}
