package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/killingrose3/taluo/config"
	"github.com/killingrose3/taluo/models"
)

// InterfaceReceptionistService 定义接待员服务接口
type InterfaceReceptionistService interface {
	GetAllReceptionists(page int, pageSize int, includeDeleted bool) ([]models.Receptionist, int64, error)
	GetReceptionistByID(id uint) (*models.Receptionist, error)
	Register(name, emoji, password string) (*models.Receptionist, error)
	Login(name, password string) (*models.Receptionist, error)
	UpdateReceptionist(id uint, updates map[string]interface{}) (*models.Receptionist, error)
	DeleteReceptionist(id uint, keepOrders bool) error
}

// ReceptionistService 提供接待员相关的服务
type ReceptionistService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReceptionistService 创建一个新的接待员服务
func NewReceptionistService(db *gorm.DB, cfg *config.Config) InterfaceReceptionistService {
	return &ReceptionistService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllReceptionists 获取所有接待员
func (s *ReceptionistService) GetAllReceptionists(page int, pageSize int, includeDeleted bool) ([]models.Receptionist, int64, error) {
	var receptionists []models.Receptionist
	var total int64

	query := s.DB.Model(&models.Receptionist{})
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at ASC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&receptionists).Error; err != nil {
		return nil, 0, err
	}
	return receptionists, total, nil
}

// 2 GetReceptionistByID 根据ID获取接待员
func (s *ReceptionistService) GetReceptionistByID(id uint) (*models.Receptionist, error) {
	var receptionist models.Receptionist
	if err := s.DB.First(&receptionist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("接待员不存在")
		}
		return nil, err
	}
	return &receptionist, nil
}

// 3 Register 注册新接待员，名称唯一；新人默认实习、默认5%提成且无自定义有效期
func (s *ReceptionistService) Register(name, emoji, password string) (*models.Receptionist, error) {
	var count int64
	if err := s.DB.Model(&models.Receptionist{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("该名称已被注册哦～")
	}

	receptionist := models.Receptionist{
		Name:           name,
		Emoji:          emoji,
		Password:       password,
		Role:           models.RoleReceptionist,
		IsIntern:       true,
		CommissionRate: 5,
		IsDeleted:      false,
	}

	if err := s.DB.Create(&receptionist).Error; err != nil {
		return nil, err
	}
	return &receptionist, nil
}

// 4 Login 登录校验：管理者不受软删除限制，其余用户必须未被删除
func (s *ReceptionistService) Login(name, password string) (*models.Receptionist, error) {
	var receptionist models.Receptionist
	err := s.DB.Where("name = ? AND (role = ? OR is_deleted = ?)", name, models.RoleManager, false).
		First(&receptionist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("未注册名字，请先注册哦宝宝。")
		}
		return nil, err
	}

	if !models.CheckPasswordHash(password, receptionist.Password) {
		return nil, errors.New("密码不正确宝宝qnq 请重新输入。忘记密码请联系运营。")
	}

	return &receptionist, nil
}

// 5 UpdateReceptionist 更新接待员信息（提成比例、有效期、实习标记等）
func (s *ReceptionistService) UpdateReceptionist(id uint, updates map[string]interface{}) (*models.Receptionist, error) {
	receptionist, err := s.GetReceptionistByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新名称，需要检查唯一性
	if name, ok := updates["name"].(string); ok && name != receptionist.Name {
		var count int64
		if err := s.DB.Model(&models.Receptionist{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("该名称已被其他接待员使用")
		}
	}

	// 密码走模型钩子哈希，不能进 updates map
	if password, ok := updates["password"].(string); ok {
		delete(updates, "password")
		receptionist.Password = password
		if err := s.DB.Save(receptionist).Error; err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(receptionist).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// 重新获取更新后的接待员信息
	return s.GetReceptionistByID(id)
}

// 6 DeleteReceptionist 删除接待员：keepOrders=true 时软删除，否则硬删除并级联删除其订单
func (s *ReceptionistService) DeleteReceptionist(id uint, keepOrders bool) error {
	receptionist, err := s.GetReceptionistByID(id)
	if err != nil {
		return err
	}

	if keepOrders {
		return s.DB.Model(receptionist).Update("is_deleted", true).Error
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("receptionist_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(receptionist).Error
	})
}
