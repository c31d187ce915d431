package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/killingrose3/taluo/config"
	"github.com/killingrose3/taluo/services"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// MQTT通知服务
	notifyService services.InterfaceNotifyService

	// 业务服务
	receptionistService services.InterfaceReceptionistService
	orderService        services.InterfaceOrderService
	penaltyService      services.InterfacePenaltyService
	announcementService services.InterfaceAnnouncementService
	settlementService   services.InterfaceSettlementService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)

	// 初始化MQTT通知服务
	c.notifyService = services.NewNotifyService(c.config)
	if err := c.notifyService.Connect(); err != nil {
		log.Printf("MQTT服务连接失败: %v", err)
	}

	// 初始化业务服务
	c.receptionistService = services.NewReceptionistService(c.db, c.config)
	c.orderService = services.NewOrderService(c.db, c.config, c.redisService)
	c.penaltyService = services.NewPenaltyService(c.db, c.config)
	c.announcementService = services.NewAnnouncementService(c.db, c.config, c.notifyService)
	c.settlementService = services.NewSettlementService(c.db, c.config, c.redisService, c.notifyService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "notify":
		return c.notifyService
	case "receptionist":
		return c.receptionistService
	case "order":
		return c.orderService
	case "penalty":
		return c.penaltyService
	case "announcement":
		return c.announcementService
	case "settlement":
		return c.settlementService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
