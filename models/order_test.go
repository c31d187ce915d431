package models

import (
	"encoding/json"
	"testing"
)

// TestIsDisapproved nil视为历史已通过，显式false才是驳回
func TestIsDisapproved(t *testing.T) {
	approved := true
	disapproved := false

	tests := []struct {
		name  string
		order Order
		want  bool
	}{
		{"未设置审核状态", Order{}, false},
		{"已通过", Order{Approved: &approved}, false},
		{"已驳回", Order{Approved: &disapproved}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.IsDisapproved(); got != tt.want {
				t.Errorf("IsDisapproved() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestValidOrderType 订单类型校验
func TestValidOrderType(t *testing.T) {
	valid := []string{"normal", "gift", "monthly", "prepaid", "deduct_prepaid", "bonus"}
	for _, v := range valid {
		if !ValidOrderType(v) {
			t.Errorf("ValidOrderType(%q) = false, want true", v)
		}
	}

	invalid := []string{"", "refund", "NORMAL", "monthly_card"}
	for _, v := range invalid {
		if ValidOrderType(v) {
			t.Errorf("ValidOrderType(%q) = true, want false", v)
		}
	}
}

// TestAmountAllowed 金额档位校验
func TestAmountAllowed(t *testing.T) {
	if !AmountAllowed(119, AllowedNormalAmounts) {
		t.Error("119 应在正常单允许金额内")
	}
	if AmountAllowed(120, AllowedNormalAmounts) {
		t.Error("120 不应在正常单允许金额内")
	}
	if !AmountAllowed(680, AllowedDeductAmounts) {
		t.Error("680 应在扣除存单允许金额内")
	}
	if AmountAllowed(0, AllowedDeductAmounts) {
		t.Error("0 不应在扣除存单允许金额内")
	}
}

// TestOrderJSONFields 订单序列化字段名应为snake_case且审核状态可为null
func TestOrderJSONFields(t *testing.T) {
	approved := true
	order := Order{
		ID:             1,
		ReceptionistID: 2,
		BossName:       "老板A",
		DivinerID:      "虎虎",
		Type:           OrderTypeNormal,
		Amount:         119,
		Approved:       &approved,
		Date:           "2025-06-18",
	}

	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}

	for _, key := range []string{"receptionist_id", "boss_name", "diviner_id", "type", "amount", "approved", "date"} {
		if _, ok := m[key]; !ok {
			t.Errorf("序列化结果缺少字段 %q", key)
		}
	}

	// 往返后审核状态保持不变
	var back Order
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("反序列化订单失败: %v", err)
	}
	if back.Approved == nil || !*back.Approved {
		t.Error("审核状态在序列化往返后丢失")
	}
}
