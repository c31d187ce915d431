package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/killingrose3/taluo/config"
	"github.com/killingrose3/taluo/models"
)

// InterfacePenaltyService 定义惩罚服务接口
type InterfacePenaltyService interface {
	GetAllPenalties(page int, pageSize int) ([]models.Penalty, int64, error)
	GetPenaltiesByReceptionist(receptionistID uint) ([]models.Penalty, error)
	CreatePenalty(penalty *models.Penalty) error
	DeletePenalty(id uint) error
}

// PenaltyService 提供惩罚记录相关的服务
type PenaltyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPenaltyService 创建一个新的惩罚服务
func NewPenaltyService(db *gorm.DB, cfg *config.Config) InterfacePenaltyService {
	return &PenaltyService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllPenalties 获取所有惩罚记录
func (s *PenaltyService) GetAllPenalties(page int, pageSize int) ([]models.Penalty, int64, error) {
	var penalties []models.Penalty
	var total int64
	if err := s.DB.Model(&models.Penalty{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&penalties).Error; err != nil {
		return nil, 0, err
	}
	return penalties, total, nil
}

// 2 GetPenaltiesByReceptionist 获取指定接待员的惩罚记录
func (s *PenaltyService) GetPenaltiesByReceptionist(receptionistID uint) ([]models.Penalty, error) {
	var penalties []models.Penalty
	if err := s.DB.Where("receptionist_id = ?", receptionistID).Order("created_at DESC").Find(&penalties).Error; err != nil {
		return nil, err
	}
	return penalties, nil
}

// 3 CreatePenalty 创建惩罚记录（管理者操作）
func (s *PenaltyService) CreatePenalty(penalty *models.Penalty) error {
	// 验证接待员是否存在
	var receptionist models.Receptionist
	if err := s.DB.First(&receptionist, penalty.ReceptionistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("接待员不存在")
		}
		return err
	}

	if penalty.Amount <= 0 {
		return errors.New("惩罚金额必须大于0")
	}

	return s.DB.Create(penalty).Error
}

// 4 DeletePenalty 删除惩罚记录
func (s *PenaltyService) DeletePenalty(id uint) error {
	var penalty models.Penalty
	if err := s.DB.First(&penalty, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("惩罚记录不存在")
		}
		return err
	}
	return s.DB.Delete(&penalty).Error
}
