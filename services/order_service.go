package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/killingrose3/taluo/config"
	"github.com/killingrose3/taluo/models"
)

// OrderFilter 订单列表查询条件
type OrderFilter struct {
	ReceptionistID uint
	BossName       string
	Type           string
	Approved       *bool
}

// InterfaceOrderService 定义订单服务接口
type InterfaceOrderService interface {
	GetAllOrders(filter OrderFilter, page int, pageSize int) ([]models.Order, int64, error)
	GetOrderByID(id uint) (*models.Order, error)
	CreateOrder(order *models.Order) error
	UpdateOrder(id uint, updates map[string]interface{}) (*models.Order, error)
	ApproveOrder(id uint) (*models.Order, error)
	DeleteOrder(id uint) error
	GetBossBalance(bossName string) (float64, error)
	IsBossInSystem(bossName string) (bool, error)
}

// OrderService 提供订单相关的服务
type OrderService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
}

// NewOrderService 创建一个新的订单服务
func NewOrderService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceOrderService {
	return &OrderService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// CalculateBossBalance 老板预存余额 = 已通过预存单之和 - 已通过扣除存单之和。
// 显式驳回的订单永远不计入。
func CalculateBossBalance(bossName string, orders []models.Order) float64 {
	var totalPrepaid, totalDeducted float64
	for i := range orders {
		o := &orders[i]
		if o.BossName != bossName || o.IsDisapproved() {
			continue
		}
		switch o.Type {
		case models.OrderTypePrepaid:
			totalPrepaid += o.Amount
		case models.OrderTypeDeductPrepaid:
			totalDeducted += o.Amount
		}
	}
	return totalPrepaid - totalDeducted
}

// 1 GetAllOrders 获取订单列表，支持按接待员、老板、类型、审核状态过滤
func (s *OrderService) GetAllOrders(filter OrderFilter, page int, pageSize int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := s.DB.Model(&models.Order{})
	if filter.ReceptionistID != 0 {
		query = query.Where("receptionist_id = ?", filter.ReceptionistID)
	}
	if filter.BossName != "" {
		query = query.Where("boss_name = ?", filter.BossName)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Approved != nil {
		query = query.Where("approved = ?", *filter.Approved)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// 2 GetOrderByID 根据ID获取订单
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("订单不存在")
		}
		return nil, err
	}
	return &order, nil
}

// 3 CreateOrder 创建新订单，新订单默认未审核
func (s *OrderService) CreateOrder(order *models.Order) error {
	if !models.ValidOrderType(order.Type) {
		return errors.New("订单类型无效")
	}
	if order.Amount < 0 {
		return errors.New("订单金额不能为负")
	}

	// 正常单和扣除存单只允许固定档位金额
	if order.Type == models.OrderTypeNormal && !models.AmountAllowed(order.Amount, models.AllowedNormalAmounts) {
		return errors.New("订单金额不在允许范围")
	}
	if order.Type == models.OrderTypeDeductPrepaid && !models.AmountAllowed(order.Amount, models.AllowedDeductAmounts) {
		return errors.New("订单金额不在允许范围")
	}

	// 验证接待员是否存在
	var receptionist models.Receptionist
	if err := s.DB.First(&receptionist, order.ReceptionistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("接待员不存在")
		}
		return err
	}

	if order.Approved == nil {
		approved := false
		order.Approved = &approved
	}
	if order.Date == "" {
		order.Date = time.Now().Format("2006-01-02")
	}

	if err := s.DB.Create(order).Error; err != nil {
		return err
	}

	s.invalidateCaches(order)
	return nil
}

// 4 UpdateOrder 更新订单（审核或编辑）
func (s *OrderService) UpdateOrder(id uint, updates map[string]interface{}) (*models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(order).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.invalidateCaches(order)
	return s.GetOrderByID(id)
}

// 5 ApproveOrder 审核通过订单
func (s *OrderService) ApproveOrder(id uint) (*models.Order, error) {
	return s.UpdateOrder(id, map[string]interface{}{"approved": true})
}

// 6 DeleteOrder 删除订单
func (s *OrderService) DeleteOrder(id uint) error {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(order).Error; err != nil {
		return err
	}
	s.invalidateCaches(order)
	return nil
}

// 7 GetBossBalance 获取老板预存余额，优先读缓存
func (s *OrderService) GetBossBalance(bossName string) (float64, error) {
	if s.Redis != nil {
		if balance, err := s.Redis.GetBossBalance(bossName); err == nil {
			return balance, nil
		}
	}

	var orders []models.Order
	if err := s.DB.Where("boss_name = ?", bossName).Find(&orders).Error; err != nil {
		return 0, err
	}

	balance := CalculateBossBalance(bossName, orders)

	if s.Redis != nil {
		if err := s.Redis.CacheBossBalance(bossName, balance, 5*time.Minute); err != nil {
			config.Warning("缓存老板余额失败: %v", err)
		}
	}
	return balance, nil
}

// 8 IsBossInSystem 老板是否已在系统中（存在其名下的预存单）
func (s *OrderService) IsBossInSystem(bossName string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Order{}).
		Where("type = ? AND boss_name = ?", models.OrderTypePrepaid, bossName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// invalidateCaches 订单写入后使相关缓存失效
func (s *OrderService) invalidateCaches(order *models.Order) {
	if s.Redis == nil {
		return
	}
	if order.Type == models.OrderTypePrepaid || order.Type == models.OrderTypeDeductPrepaid {
		if err := s.Redis.InvalidateBossBalance(order.BossName); err != nil {
			config.Warning("清除老板余额缓存失败: %v", err)
		}
	}
	if err := s.Redis.InvalidateStudioIncome(); err != nil {
		config.Warning("清除工作室收入缓存失败: %v", err)
	}
}
