package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/killingrose3/taluo/config"
	"github.com/killingrose3/taluo/models"
)

// InterfaceAnnouncementService 定义公告服务接口
type InterfaceAnnouncementService interface {
	GetAllAnnouncements() ([]models.Announcement, error)
	CreateAnnouncement(content string) (*models.Announcement, error)
	DeleteAnnouncement(id uint) error
	GetReadIDs(userID uint) ([]uint, error)
	MarkRead(userID uint, announcementID uint) error
}

// AnnouncementService 提供公告及已读记录相关的服务
type AnnouncementService struct {
	DB     *gorm.DB
	Config *config.Config
	Notify InterfaceNotifyService
}

// NewAnnouncementService 创建一个新的公告服务
func NewAnnouncementService(db *gorm.DB, cfg *config.Config, notifyService InterfaceNotifyService) InterfaceAnnouncementService {
	return &AnnouncementService{
		DB:     db,
		Config: cfg,
		Notify: notifyService,
	}
}

// 1 GetAllAnnouncements 获取所有公告，按创建时间倒序
func (s *AnnouncementService) GetAllAnnouncements() ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := s.DB.Order("created_at DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// 2 CreateAnnouncement 发布新公告并推送MQTT事件
func (s *AnnouncementService) CreateAnnouncement(content string) (*models.Announcement, error) {
	if content == "" {
		return nil, errors.New("公告内容不能为空")
	}

	announcement := models.Announcement{Content: content}
	if err := s.DB.Create(&announcement).Error; err != nil {
		return nil, err
	}

	if s.Notify != nil {
		if err := s.Notify.PublishAnnouncement(announcement.ID, announcement.Content); err != nil {
			config.Warning("推送公告事件失败: %v", err)
		}
	}

	return &announcement, nil
}

// 3 DeleteAnnouncement 删除公告及其已读记录
func (s *AnnouncementService) DeleteAnnouncement(id uint) error {
	var announcement models.Announcement
	if err := s.DB.First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("公告不存在")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("announcement_id = ?", id).Delete(&models.AnnouncementRead{}).Error; err != nil {
			return err
		}
		return tx.Delete(&announcement).Error
	})
}

// 4 GetReadIDs 获取用户已读的公告ID列表
func (s *AnnouncementService) GetReadIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := s.DB.Model(&models.AnnouncementRead{}).
		Where("user_id = ?", userID).
		Pluck("announcement_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// 5 MarkRead 标记公告已读，同一 (user, announcement) 组合幂等
func (s *AnnouncementService) MarkRead(userID uint, announcementID uint) error {
	read := models.AnnouncementRead{
		UserID:         userID,
		AnnouncementID: announcementID,
	}
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&read).Error
}
