package models

import (
	"time"
)

// 订单类型
const (
	OrderTypeNormal        = "normal"         // 正常单
	OrderTypeGift          = "gift"           // 礼物单
	OrderTypeMonthly       = "monthly"        // 月卡单
	OrderTypePrepaid       = "prepaid"        // 预存单
	OrderTypeDeductPrepaid = "deduct_prepaid" // 扣除存单
	OrderTypeBonus         = "bonus"          // 奖金
)

// Order 表示客户订单
type Order struct {
	ID              uint      `gorm:"primaryKey;unique" json:"id"`
	ReceptionistID  uint      `gorm:"index;not null" json:"receptionist_id"`
	BossName        string    `gorm:"type:varchar(50);index;not null" json:"boss_name"`
	DivinerID       string    `gorm:"type:varchar(50)" json:"diviner_id"` // 占卜师名称，可为空
	Type            string    `gorm:"type:varchar(20);not null" json:"type"`
	Amount          float64   `gorm:"type:decimal(10,2);not null;default:0" json:"amount"`
	QuestionContent string    `gorm:"type:text" json:"question_content"`
	BonusType       string    `gorm:"type:varchar(20)" json:"bonus_type"`
	Approved        *bool     `json:"approved"` // nil 视为已通过（历史数据），显式 false 不计入任何收入
	Date            string    `gorm:"type:varchar(10)" json:"date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsDisapproved 订单是否被显式驳回
func (o *Order) IsDisapproved() bool {
	return o.Approved != nil && !*o.Approved
}

// 正常单允许的金额列表
var AllowedNormalAmounts = []float64{119, 165, 198, 99, 98, 135, 388, 350, 310, 680, 190, 223, 253}

// 扣除存单允许的金额列表
var AllowedDeductAmounts = []float64{98, 99, 119, 135, 165, 190, 198, 223, 253, 310, 350, 388, 680}

// AmountAllowed 检查金额是否在允许列表中
func AmountAllowed(amount float64, allowed []float64) bool {
	for _, a := range allowed {
		if a == amount {
			return true
		}
	}
	return false
}

// ValidOrderType 检查订单类型是否合法
func ValidOrderType(t string) bool {
	switch t {
	case OrderTypeNormal, OrderTypeGift, OrderTypeMonthly,
		OrderTypePrepaid, OrderTypeDeductPrepaid, OrderTypeBonus:
		return true
	}
	return false
}
