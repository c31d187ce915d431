package services

import (
	"testing"
	"time"

	"github.com/killingrose3/taluo/models"
)

// 测试用时间基准：2025-06-18 周三 12:00
var testNow = time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

// TestCalculateCommission 提成规则：月卡/扣除不计提成，奖金全额，
// 自定义比例有效期内优先，否则礼物10%、其他5%
func TestCalculateCommission(t *testing.T) {
	activeExpiry := timePtr(testNow.Add(24 * time.Hour))
	expiredExpiry := timePtr(testNow.Add(-24 * time.Hour))

	tests := []struct {
		name         string
		order        models.Order
		receptionist models.Receptionist
		want         float64
	}{
		{
			name:         "正常单默认5%",
			order:        models.Order{Type: models.OrderTypeNormal, Amount: 100},
			receptionist: models.Receptionist{CommissionRate: 5},
			want:         5,
		},
		{
			name:         "礼物单无自定义比例时10%",
			order:        models.Order{Type: models.OrderTypeGift, Amount: 100},
			receptionist: models.Receptionist{CommissionRate: 5},
			want:         10,
		},
		{
			name:         "自定义比例有效期内生效",
			order:        models.Order{Type: models.OrderTypeNormal, Amount: 200},
			receptionist: models.Receptionist{CommissionRate: 7, CommissionExpiry: activeExpiry},
			want:         14,
		},
		{
			name:         "自定义比例覆盖礼物单默认10%",
			order:        models.Order{Type: models.OrderTypeGift, Amount: 100},
			receptionist: models.Receptionist{CommissionRate: 7, CommissionExpiry: activeExpiry},
			want:         7,
		},
		{
			name:         "自定义比例过期后回退默认",
			order:        models.Order{Type: models.OrderTypeNormal, Amount: 200},
			receptionist: models.Receptionist{CommissionRate: 7, CommissionExpiry: expiredExpiry},
			want:         10,
		},
		{
			name:         "月卡单不计提成",
			order:        models.Order{Type: models.OrderTypeMonthly, Amount: 100},
			receptionist: models.Receptionist{CommissionRate: 7, CommissionExpiry: activeExpiry},
			want:         0,
		},
		{
			name:         "扣除存单不计提成",
			order:        models.Order{Type: models.OrderTypeDeductPrepaid, Amount: 198},
			receptionist: models.Receptionist{CommissionRate: 5},
			want:         0,
		},
		{
			name:         "奖金全额发放",
			order:        models.Order{Type: models.OrderTypeBonus, Amount: 66},
			receptionist: models.Receptionist{CommissionRate: 5},
			want:         66,
		},
		{
			name:         "预存单按比例提成",
			order:        models.Order{Type: models.OrderTypePrepaid, Amount: 500},
			receptionist: models.Receptionist{CommissionRate: 5},
			want:         25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCommission(&tt.order, &tt.receptionist, testNow)
			if got != tt.want {
				t.Errorf("CalculateCommission = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCalculateStudioIncome 工作室抽成规则：正常/预存25%，礼物10%，
// 月卡固定9.9，扣除/奖金不计，保留占卜师接单不抽成
func TestCalculateStudioIncome(t *testing.T) {
	const reserved = "虎虎"

	tests := []struct {
		name  string
		order models.Order
		want  float64
	}{
		{"正常单25%", models.Order{Type: models.OrderTypeNormal, Amount: 100}, 25},
		{"礼物单10%", models.Order{Type: models.OrderTypeGift, Amount: 100}, 10},
		{"月卡单固定9.9", models.Order{Type: models.OrderTypeMonthly, Amount: 120}, 9.9},
		{"预存单25%", models.Order{Type: models.OrderTypePrepaid, Amount: 400}, 100},
		{"扣除存单不计", models.Order{Type: models.OrderTypeDeductPrepaid, Amount: 198}, 0},
		{"奖金不计", models.Order{Type: models.OrderTypeBonus, Amount: 66}, 0},
		{"保留占卜师不抽成", models.Order{Type: models.OrderTypeNormal, Amount: 100, DivinerID: reserved}, 0},
		{"保留占卜师月卡也不抽成", models.Order{Type: models.OrderTypeMonthly, Amount: 120, DivinerID: reserved}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStudioIncome(&tt.order, reserved)
			if got != tt.want {
				t.Errorf("CalculateStudioIncome = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCalculateTotalStudioIncome 汇总时跳过被驳回的订单
func TestCalculateTotalStudioIncome(t *testing.T) {
	orders := []models.Order{
		{Type: models.OrderTypeNormal, Amount: 100, Approved: boolPtr(true)},  // 25
		{Type: models.OrderTypeNormal, Amount: 100, Approved: boolPtr(false)}, // 驳回，不计
		{Type: models.OrderTypeMonthly, Amount: 120},                          // nil视为通过，9.9
		{Type: models.OrderTypeGift, Amount: 200, Approved: boolPtr(true)},    // 20
	}

	got := CalculateTotalStudioIncome(orders, "虎虎")
	want := 54.9
	if got != want {
		t.Errorf("CalculateTotalStudioIncome = %v, want %v", got, want)
	}
}

// TestComputeBalance_TaskCompleted 完成周任务后发放底薪
func TestComputeBalance_TaskCompleted(t *testing.T) {
	weekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)

	receptionist := models.Receptionist{
		ID:             1,
		IsIntern:       false,
		CommissionRate: 5,
	}

	// 本周3笔月卡单完成任务，外加1笔正常单
	orders := []models.Order{
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(10 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(20 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(30 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeNormal, Amount: 100, CreatedAt: weekStart.Add(40 * time.Hour)},
	}

	result := ComputeBalance(&receptionist, orders, nil, testNow)

	// 提成5 + 正式底薪40
	if result.Amount != 45 {
		t.Errorf("Amount = %v, want 45", result.Amount)
	}
	if result.TaskFailed {
		t.Error("TaskFailed = true, want false")
	}
}

// TestComputeBalance_InternBaseSalary 实习生底薪为20
func TestComputeBalance_InternBaseSalary(t *testing.T) {
	weekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)

	receptionist := models.Receptionist{ID: 1, IsIntern: true, CommissionRate: 5}
	orders := []models.Order{
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(1 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(2 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(3 * time.Hour)},
	}

	result := ComputeBalance(&receptionist, orders, nil, testNow)
	if result.Amount != 20 {
		t.Errorf("Amount = %v, want 20", result.Amount)
	}
}

// TestComputeBalance_DeadlineFailure 周日21点后任务未完成，余额清零
func TestComputeBalance_DeadlineFailure(t *testing.T) {
	sundayNight := time.Date(2025, 6, 22, 21, 30, 0, 0, time.Local)
	weekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)

	receptionist := models.Receptionist{ID: 1, IsIntern: false, CommissionRate: 5}

	// 只有2笔月卡单，但有可观的提成收入
	orders := []models.Order{
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(1 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(2 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeNormal, Amount: 680, CreatedAt: weekStart.Add(3 * time.Hour)},
	}

	result := ComputeBalance(&receptionist, orders, nil, sundayNight)
	if result.Amount != 0 {
		t.Errorf("Amount = %v, want 0", result.Amount)
	}
	if !result.TaskFailed {
		t.Error("TaskFailed = false, want true")
	}
}

// TestComputeBalance_DeadlineWithTaskDone 周日21点后但任务已完成，正常发放
func TestComputeBalance_DeadlineWithTaskDone(t *testing.T) {
	sundayNight := time.Date(2025, 6, 22, 22, 0, 0, 0, time.Local)
	weekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)

	receptionist := models.Receptionist{ID: 1, IsIntern: false, CommissionRate: 5}
	orders := []models.Order{
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(1 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(2 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(3 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeNormal, Amount: 100, CreatedAt: weekStart.Add(4 * time.Hour)},
	}

	result := ComputeBalance(&receptionist, orders, nil, sundayNight)
	if result.Amount != 45 {
		t.Errorf("Amount = %v, want 45", result.Amount)
	}
	if result.TaskFailed {
		t.Error("TaskFailed = true, want false")
	}
}

// TestComputeBalance_SettlementWindow 上次结算时间之前的订单和惩罚不计入
func TestComputeBalance_SettlementWindow(t *testing.T) {
	weekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)
	lastSettlement := weekStart.Add(24 * time.Hour) // 周二零点结算过

	receptionist := models.Receptionist{
		ID:                 1,
		IsIntern:           false,
		CommissionRate:     5,
		LastSettlementDate: timePtr(lastSettlement),
	}

	orders := []models.Order{
		// 结算前的订单，不计
		{ReceptionistID: 1, Type: models.OrderTypeNormal, Amount: 680, CreatedAt: weekStart.Add(1 * time.Hour)},
		// 结算后的订单
		{ReceptionistID: 1, Type: models.OrderTypeNormal, Amount: 100, CreatedAt: lastSettlement.Add(1 * time.Hour)},
	}

	penalties := []models.Penalty{
		// 结算前的惩罚，不计
		{ReceptionistID: 1, Amount: 50, CreatedAt: weekStart.Add(2 * time.Hour)},
		// 结算后的惩罚
		{ReceptionistID: 1, Amount: 2, CreatedAt: lastSettlement.Add(2 * time.Hour)},
	}

	result := ComputeBalance(&receptionist, orders, penalties, testNow)

	// 提成5 - 惩罚2，任务未完成无底薪（非周日截止前不清零）
	if result.Amount != 3 {
		t.Errorf("Amount = %v, want 3", result.Amount)
	}
	if result.TaskFailed {
		t.Error("TaskFailed = true, want false")
	}
}

// TestComputeBalance_DisapprovedExcluded 被驳回的订单不参与余额和周任务
func TestComputeBalance_DisapprovedExcluded(t *testing.T) {
	weekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)

	receptionist := models.Receptionist{ID: 1, IsIntern: false, CommissionRate: 5}
	orders := []models.Order{
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(1 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(2 * time.Hour)},
		// 第3笔月卡被驳回，周任务未完成
		{ReceptionistID: 1, Type: models.OrderTypeMonthly, Amount: 120, CreatedAt: weekStart.Add(3 * time.Hour), Approved: boolPtr(false)},
		// 被驳回的正常单不计提成
		{ReceptionistID: 1, Type: models.OrderTypeNormal, Amount: 100, CreatedAt: weekStart.Add(4 * time.Hour), Approved: boolPtr(false)},
		{ReceptionistID: 1, Type: models.OrderTypeNormal, Amount: 100, CreatedAt: weekStart.Add(5 * time.Hour), Approved: boolPtr(true)},
	}

	result := ComputeBalance(&receptionist, orders, nil, testNow)
	if result.Amount != 5 {
		t.Errorf("Amount = %v, want 5", result.Amount)
	}
}

// TestComputeBalance_OtherReceptionistExcluded 其他接待员的订单不计入
func TestComputeBalance_OtherReceptionistExcluded(t *testing.T) {
	weekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)

	receptionist := models.Receptionist{ID: 1, IsIntern: false, CommissionRate: 5}
	orders := []models.Order{
		{ReceptionistID: 2, Type: models.OrderTypeNormal, Amount: 680, CreatedAt: weekStart.Add(1 * time.Hour)},
		{ReceptionistID: 1, Type: models.OrderTypeBonus, Amount: 66, CreatedAt: weekStart.Add(2 * time.Hour)},
	}

	result := ComputeBalance(&receptionist, orders, nil, testNow)
	if result.Amount != 66 {
		t.Errorf("Amount = %v, want 66", result.Amount)
	}
}
