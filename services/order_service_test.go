package services

import (
	"testing"

	"github.com/killingrose3/taluo/models"
)

// TestCalculateBossBalance 老板余额 = 预存之和 - 扣除之和，驳回订单不计
func TestCalculateBossBalance(t *testing.T) {
	orders := []models.Order{
		{BossName: "老板A", Type: models.OrderTypePrepaid, Amount: 500, Approved: boolPtr(true)},
		{BossName: "老板A", Type: models.OrderTypePrepaid, Amount: 300, Approved: boolPtr(false)}, // 驳回
		{BossName: "老板A", Type: models.OrderTypeDeductPrepaid, Amount: 200, Approved: boolPtr(true)},
		{BossName: "老板A", Type: models.OrderTypeNormal, Amount: 119, Approved: boolPtr(true)}, // 非预存类型不影响余额
		{BossName: "老板B", Type: models.OrderTypePrepaid, Amount: 1000},                        // 其他老板
	}

	if got := CalculateBossBalance("老板A", orders); got != 300 {
		t.Errorf("CalculateBossBalance(老板A) = %v, want 300", got)
	}
	if got := CalculateBossBalance("老板B", orders); got != 1000 {
		t.Errorf("CalculateBossBalance(老板B) = %v, want 1000", got)
	}
	if got := CalculateBossBalance("老板C", orders); got != 0 {
		t.Errorf("CalculateBossBalance(老板C) = %v, want 0", got)
	}
}

// TestCalculateBossBalance_LegacyApproved nil审核状态视为历史已通过数据
func TestCalculateBossBalance_LegacyApproved(t *testing.T) {
	orders := []models.Order{
		{BossName: "老板A", Type: models.OrderTypePrepaid, Amount: 500},
		{BossName: "老板A", Type: models.OrderTypeDeductPrepaid, Amount: 198},
	}

	if got := CalculateBossBalance("老板A", orders); got != 302 {
		t.Errorf("CalculateBossBalance = %v, want 302", got)
	}
}
