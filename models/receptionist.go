package models

import (
	"time"

	"gorm.io/gorm"
)

// 接待员角色
const (
	RoleManager      = "manager"
	RoleReceptionist = "receptionist"
)

// Receptionist 表示工作室接待员
type Receptionist struct {
	ID                   uint       `gorm:"primaryKey;unique" json:"id"`
	Name                 string     `gorm:"type:varchar(50);unique;not null" json:"name"`
	Emoji                string     `gorm:"type:varchar(20)" json:"emoji"`
	Role                 string     `gorm:"type:varchar(20);not null;default:'receptionist'" json:"role"` // manager, receptionist
	Password             string     `gorm:"type:varchar(100);not null" json:"-"`                          // Password not exposed in JSON
	IsIntern             bool       `gorm:"default:true" json:"is_intern"`
	CommissionRate       float64    `gorm:"type:decimal(5,2);default:5" json:"commission_rate"` // 自定义提成比例（百分数）
	CommissionExpiry     *time.Time `json:"commission_expiry"`                                  // 自定义提成比例有效期，过期后回退默认比例
	IsDeleted            bool       `gorm:"default:false" json:"is_deleted"`
	LastSettlementDate   *time.Time `json:"last_settlement_date"`
	BackupSettlementDate *time.Time `json:"backup_settlement_date"` // 撤销结算时用于回退
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// BeforeCreate 是一个GORM钩子，在创建新记录前运行
func (r *Receptionist) BeforeCreate(tx *gorm.DB) error {
	// 如果提供了密码，对其进行哈希处理
	if r.Password != "" {
		hashedPassword, err := HashPassword(r.Password)
		if err != nil {
			return err
		}
		r.Password = hashedPassword
	}
	return nil
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (r *Receptionist) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if r.Password != "" && len(r.Password) < 60 {
		hashedPassword, err := HashPassword(r.Password)
		if err != nil {
			return err
		}
		r.Password = hashedPassword
	}
	return nil
}

// HasActiveCommissionRate 判断接待员的自定义提成比例在给定时刻是否有效
func (r *Receptionist) HasActiveCommissionRate(now time.Time) bool {
	return r.CommissionExpiry != nil && r.CommissionExpiry.After(now)
}
