package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/killingrose3/taluo/config"
	"github.com/killingrose3/taluo/models"
	"github.com/killingrose3/taluo/utils"
)

// 周任务规则：每周至少3笔月卡单，完成后发放底薪
const (
	WeeklyTaskTarget  = 3
	BaseSalaryIntern  = 20
	BaseSalaryRegular = 40
)

// 月卡单固定订阅费，工作室收入与金额无关
const MonthlyStudioFee = 9.9

// BalanceResult 余额计算结果
type BalanceResult struct {
	Amount     float64 `json:"amount"`
	TaskFailed bool    `json:"task_failed"`
}

// InterfaceSettlementService 定义结算服务接口
type InterfaceSettlementService interface {
	CalculateBalance(receptionistID uint) BalanceResult
	SettleReceptionist(receptionistID uint) (*models.WeeklySettlement, error)
	UnsettleReceptionist(receptionistID uint) error
	GetSettledIDs() ([]uint, error)
	GetStudioIncomeSummary() (float64, error)
}

// SettlementService 提供周结算与提成计算相关的服务
type SettlementService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
	Notify InterfaceNotifyService
	Now    func() time.Time // 可注入时钟，结算规则依赖本地时间
}

// NewSettlementService 创建一个新的结算服务
func NewSettlementService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService, notifyService InterfaceNotifyService) InterfaceSettlementService {
	return &SettlementService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
		Notify: notifyService,
		Now:    time.Now,
	}
}

// CalculateCommission 计算单笔订单的接待员提成。
// 月卡单和扣除存单不计提成，奖金单全额发放；
// 其余类型在自定义比例有效期内用自定义比例，否则礼物单10%、其他5%。
func CalculateCommission(order *models.Order, receptionist *models.Receptionist, now time.Time) float64 {
	switch order.Type {
	case models.OrderTypeMonthly, models.OrderTypeDeductPrepaid:
		return 0
	case models.OrderTypeBonus:
		return order.Amount
	}

	rate := 5.0
	if receptionist.HasActiveCommissionRate(now) {
		rate = receptionist.CommissionRate
	} else if order.Type == models.OrderTypeGift {
		rate = 10
	}

	return order.Amount * rate / 100
}

// CalculateStudioIncome 计算单笔订单的工作室收入。
// 保留占卜师接单时工作室不抽成。
func CalculateStudioIncome(order *models.Order, reservedDiviner string) float64 {
	if reservedDiviner != "" && order.DivinerID == reservedDiviner {
		return 0
	}

	switch order.Type {
	case models.OrderTypeNormal:
		return order.Amount * 0.25
	case models.OrderTypeGift:
		return order.Amount * 0.10
	case models.OrderTypeMonthly:
		return MonthlyStudioFee
	case models.OrderTypePrepaid:
		return order.Amount * 0.25
	case models.OrderTypeDeductPrepaid, models.OrderTypeBonus:
		return 0
	default:
		return 0
	}
}

// CalculateTotalStudioIncome 汇总工作室总收入，显式驳回的订单不计入
func CalculateTotalStudioIncome(orders []models.Order, reservedDiviner string) float64 {
	var total float64
	for i := range orders {
		if orders[i].IsDisapproved() {
			continue
		}
		total += CalculateStudioIncome(&orders[i], reservedDiviner)
	}
	return total
}

// ComputeBalance 基于已取回的数据计算接待员当前余额和周任务状态。
// 结算窗口为上次结算时间之后；从未结算过则窗口从零点起算。
func ComputeBalance(receptionist *models.Receptionist, orders []models.Order, penalties []models.Penalty, now time.Time) BalanceResult {
	var lastSettlement time.Time
	if receptionist.LastSettlementDate != nil {
		lastSettlement = *receptionist.LastSettlementDate
	}

	var userOrders []*models.Order
	for i := range orders {
		o := &orders[i]
		if o.ReceptionistID != receptionist.ID || o.IsDisapproved() || !o.CreatedAt.After(lastSettlement) {
			continue
		}
		userOrders = append(userOrders, o)
	}

	var balance float64
	for _, o := range userOrders {
		switch o.Type {
		case models.OrderTypeBonus:
			balance += o.Amount
		case models.OrderTypeMonthly:
			// 月卡单不进余额，只参与周任务计数
		default:
			balance += CalculateCommission(o, receptionist, now)
		}
	}

	// 减去结算窗口内的惩罚
	for i := range penalties {
		p := &penalties[i]
		if p.ReceptionistID == receptionist.ID && p.EffectiveTime().After(lastSettlement) {
			balance -= p.Amount
		}
	}

	// 周任务检查：本周周一或上次结算时间（取较晚者）之后的月卡单数量
	taskStart := utils.WeekStart(now)
	if lastSettlement.After(taskStart) {
		taskStart = lastSettlement
	}

	var monthlyCount int
	for _, o := range userOrders {
		if o.Type == models.OrderTypeMonthly && !o.CreatedAt.Before(taskStart) {
			monthlyCount++
		}
	}
	taskCompleted := monthlyCount >= WeeklyTaskTarget

	// 周日21点后任务未完成，余额清零并标记失败
	if utils.IsAfterSundayDeadline(now) && !taskCompleted {
		return BalanceResult{Amount: 0, TaskFailed: true}
	}

	if taskCompleted {
		if receptionist.IsIntern {
			balance += BaseSalaryIntern
		} else {
			balance += BaseSalaryRegular
		}
	}

	return BalanceResult{Amount: utils.Round2(balance), TaskFailed: false}
}

// 1 CalculateBalance 计算接待员当前余额。
// 接待员不存在或数据取回失败时退化为零余额，不报错。
func (s *SettlementService) CalculateBalance(receptionistID uint) BalanceResult {
	var receptionist models.Receptionist
	if err := s.DB.First(&receptionist, receptionistID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			config.Error("查询接待员失败: %v", err)
		}
		return BalanceResult{Amount: 0, TaskFailed: false}
	}

	var orders []models.Order
	if err := s.DB.Where("receptionist_id = ?", receptionistID).Find(&orders).Error; err != nil {
		config.Error("查询订单失败: %v", err)
		orders = nil
	}

	var penalties []models.Penalty
	if err := s.DB.Where("receptionist_id = ?", receptionistID).Find(&penalties).Error; err != nil {
		config.Error("查询惩罚记录失败: %v", err)
		penalties = nil
	}

	return ComputeBalance(&receptionist, orders, penalties, s.Now())
}

// 2 SettleReceptionist 结算指定接待员本周余额。
// (receptionist_id, week_start) 唯一行在事务内加锁读取，同一周重复结算会被拒绝。
func (s *SettlementService) SettleReceptionist(receptionistID uint) (*models.WeeklySettlement, error) {
	result := s.CalculateBalance(receptionistID)
	now := s.Now()
	weekStart := utils.FormatDate(utils.WeekStart(now))

	var settlement models.WeeklySettlement
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var receptionist models.Receptionist
		if err := tx.First(&receptionist, receptionistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("接待员不存在")
			}
			return err
		}

		// 加锁读取本周结算行，防止并发重复结算
		var existing models.WeeklySettlement
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("receptionist_id = ? AND week_start = ?", receptionistID, weekStart).
			First(&existing).Error
		if err == nil && existing.IsSettled {
			return errors.New("本周已结算，请勿重复操作")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		settledAt := now
		settlement = models.WeeklySettlement{
			ReceptionistID: receptionistID,
			WeekStart:      weekStart,
			IsSettled:      true,
			SettledAt:      &settledAt,
			SettlementNo:   uuid.New().String(),
			Amount:         result.Amount,
			TaskFailed:     result.TaskFailed,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "receptionist_id"}, {Name: "week_start"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_settled", "settled_at", "settlement_no", "amount", "task_failed"}),
		}).Create(&settlement).Error; err != nil {
			return err
		}

		// 备份旧结算时间以支持撤销，然后推进结算窗口
		updates := map[string]interface{}{
			"backup_settlement_date": receptionist.LastSettlementDate,
			"last_settlement_date":   now,
		}
		return tx.Model(&receptionist).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	if s.Notify != nil {
		if err := s.Notify.PublishSettlement(receptionistID, settlement.SettlementNo, settlement.Amount, settlement.TaskFailed); err != nil {
			config.Warning("推送结算事件失败: %v", err)
		}
	}

	return &settlement, nil
}

// 3 UnsettleReceptionist 撤销本周结算，结算窗口回退到备份时间
func (s *SettlementService) UnsettleReceptionist(receptionistID uint) error {
	now := s.Now()
	weekStart := utils.FormatDate(utils.WeekStart(now))

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var receptionist models.Receptionist
		if err := tx.First(&receptionist, receptionistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("接待员不存在")
			}
			return err
		}

		var settlement models.WeeklySettlement
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("receptionist_id = ? AND week_start = ?", receptionistID, weekStart).
			First(&settlement).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("本周尚未结算")
			}
			return err
		}
		if !settlement.IsSettled {
			return errors.New("本周尚未结算")
		}

		if err := tx.Model(&settlement).Updates(map[string]interface{}{
			"is_settled": false,
			"settled_at": nil,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&receptionist).Updates(map[string]interface{}{
			"last_settlement_date":   receptionist.BackupSettlementDate,
			"backup_settlement_date": nil,
		}).Error
	})
}

// 4 GetSettledIDs 获取本周已结算的接待员ID列表
func (s *SettlementService) GetSettledIDs() ([]uint, error) {
	weekStart := utils.FormatDate(utils.WeekStart(s.Now()))

	var ids []uint
	err := s.DB.Model(&models.WeeklySettlement{}).
		Where("week_start = ? AND is_settled = ?", weekStart, true).
		Pluck("receptionist_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// 5 GetStudioIncomeSummary 汇总工作室总收入，短暂缓存
func (s *SettlementService) GetStudioIncomeSummary() (float64, error) {
	if s.Redis != nil {
		if total, err := s.Redis.GetStudioIncome(); err == nil {
			return total, nil
		}
	}

	var orders []models.Order
	if err := s.DB.Find(&orders).Error; err != nil {
		return 0, err
	}

	total := utils.Round2(CalculateTotalStudioIncome(orders, s.Config.ReservedDivinerName))

	if s.Redis != nil {
		if err := s.Redis.CacheStudioIncome(total, time.Minute); err != nil {
			config.Warning("缓存工作室收入失败: %v", err)
		}
	}
	return total, nil
}
