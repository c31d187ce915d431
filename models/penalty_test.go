package models

import (
	"testing"
	"time"
)

// TestPenaltyEffectiveTime 惩罚生效时间优先用创建时间，缺失时回退业务日期
func TestPenaltyEffectiveTime(t *testing.T) {
	created := time.Date(2025, 6, 18, 10, 0, 0, 0, time.Local)

	p := Penalty{CreatedAt: created, Date: "2025-06-01"}
	if got := p.EffectiveTime(); !got.Equal(created) {
		t.Errorf("EffectiveTime = %v, want %v", got, created)
	}

	p2 := Penalty{Date: "2025-06-01"}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	if got := p2.EffectiveTime(); !got.Equal(want) {
		t.Errorf("EffectiveTime = %v, want %v", got, want)
	}

	p3 := Penalty{Date: "bad-date"}
	if got := p3.EffectiveTime(); !got.IsZero() {
		t.Errorf("EffectiveTime = %v, want zero", got)
	}
}
