package models

import "time"

// Announcement 表示系统公告
type Announcement struct {
	ID        uint      `gorm:"primaryKey;unique" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// AnnouncementRead 表示用户已读公告记录，(user_id, announcement_id) 唯一
type AnnouncementRead struct {
	ID             uint      `gorm:"primaryKey;unique" json:"id"`
	UserID         uint      `gorm:"uniqueIndex:idx_user_announcement;not null" json:"user_id"`
	AnnouncementID uint      `gorm:"uniqueIndex:idx_user_announcement;not null" json:"announcement_id"`
	CreatedAt      time.Time `json:"created_at"`
}
