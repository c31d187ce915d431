package utils

import (
	"testing"
	"time"
)

// TestWeekStart 周起点应为所在自然周的周一零点
func TestWeekStart(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "周三中午",
			input: time.Date(2025, 6, 18, 12, 30, 0, 0, time.Local), // 周三
			want:  time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "周一零点",
			input: time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local),
			want:  time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "周日深夜",
			input: time.Date(2025, 6, 22, 23, 59, 0, 0, time.Local),
			want:  time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "跨月的周一",
			input: time.Date(2025, 7, 2, 8, 0, 0, 0, time.Local), // 周三
			want:  time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestIsAfterSundayDeadline 周日21点后进入结算截止
func TestIsAfterSundayDeadline(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"周日20点59分", time.Date(2025, 6, 22, 20, 59, 0, 0, time.Local), false},
		{"周日21点整", time.Date(2025, 6, 22, 21, 0, 0, 0, time.Local), true},
		{"周日23点", time.Date(2025, 6, 22, 23, 0, 0, 0, time.Local), true},
		{"周一21点", time.Date(2025, 6, 23, 21, 0, 0, 0, time.Local), false},
		{"周六22点", time.Date(2025, 6, 21, 22, 0, 0, 0, time.Local), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAfterSundayDeadline(tt.input); got != tt.want {
				t.Errorf("IsAfterSundayDeadline(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestRound2 金额保留两位小数
func TestRound2(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{14.004, 14.0},
		{14.006, 14.01},
		{9.9, 9.9},
		{0.1 + 0.2, 0.3},
		{-5.554, -5.55},
	}

	for _, tt := range tests {
		if got := Round2(tt.input); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestFormatDate 日期格式化
func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 6, 16, 15, 4, 5, 0, time.Local)
	if got := FormatDate(d); got != "2025-06-16" {
		t.Errorf("FormatDate = %q, want %q", got, "2025-06-16")
	}
}
