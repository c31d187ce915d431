package models

import "time"

// WeeklySettlement 表示接待员每周结算状态，(receptionist_id, week_start) 唯一，
// 唯一索引同时充当结算的并发保护：同一周内重复结算会命中已结算行。
type WeeklySettlement struct {
	ID             uint       `gorm:"primaryKey;unique" json:"id"`
	ReceptionistID uint       `gorm:"uniqueIndex:idx_receptionist_week;not null" json:"receptionist_id"`
	WeekStart      string     `gorm:"type:varchar(10);uniqueIndex:idx_receptionist_week;not null" json:"week_start"` // 周一日期 YYYY-MM-DD
	IsSettled      bool       `gorm:"default:false" json:"is_settled"`
	SettledAt      *time.Time `json:"settled_at"`
	SettlementNo   string     `gorm:"type:varchar(40)" json:"settlement_no"` // 结算流水号
	Amount         float64    `gorm:"type:decimal(10,2);default:0" json:"amount"`
	TaskFailed     bool       `gorm:"default:false" json:"task_failed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
