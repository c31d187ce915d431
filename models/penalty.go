package models

import "time"

// Penalty 表示对接待员的惩罚记录，创建后除删除外不可变
type Penalty struct {
	ID             uint      `gorm:"primaryKey;unique" json:"id"`
	ReceptionistID uint      `gorm:"index;not null" json:"receptionist_id"`
	Amount         float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Reason         string    `gorm:"type:text" json:"reason"`
	Date           string    `gorm:"type:varchar(10)" json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// EffectiveTime 惩罚的生效时间，缺少创建时间时回退到业务日期
func (p *Penalty) EffectiveTime() time.Time {
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt
	}
	t, err := time.ParseInLocation("2006-01-02", p.Date, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
