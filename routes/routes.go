package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/killingrose3/taluo/config"
	"github.com/killingrose3/taluo/controllers"
	_ "github.com/killingrose3/taluo/docs"
	"github.com/killingrose3/taluo/middleware"
	"github.com/killingrose3/taluo/services/container"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要登录的路由
	registerUserRoutes(api, container)
	// 注册管理者路由
	registerManagerRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))
	api.POST("/auth/register", controllers.HandleJWTFunc(container, "register"))
}

// registerUserRoutes 注册任意已登录用户可访问的路由
func registerUserRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	user := api.Group("/")
	user.Use(middleware.AuthenticateUser())

	// 接待员路由
	user.Group("/receptionists").GET("", controllers.HandleReceptionistFunc(container, "getAllReceptionists"))
	user.Group("/receptionists").GET("/:id", controllers.HandleReceptionistFunc(container, "getReceptionistByID"))
	user.Group("/receptionists").GET("/:id/penalties", controllers.HandlePenaltyFunc(container, "getPenaltiesByReceptionist"))
	user.Group("/receptionists").GET("/:id/balance", controllers.HandleSettlementFunc(container, "getBalance"))

	// 订单路由
	user.Group("/orders").GET("", controllers.HandleOrderFunc(container, "getAllOrders"))
	user.Group("/orders").GET("/boss-balance", controllers.HandleOrderFunc(container, "getBossBalance"))
	user.Group("/orders").GET("/boss-exists", controllers.HandleOrderFunc(container, "checkBossExists"))
	user.Group("/orders").GET("/:id", controllers.HandleOrderFunc(container, "getOrderByID"))
	user.Group("/orders").POST("", controllers.HandleOrderFunc(container, "createOrder"))

	// 惩罚路由
	user.Group("/penalties").GET("", controllers.HandlePenaltyFunc(container, "getAllPenalties"))

	// 公告路由，列表走短时响应缓存
	user.Group("/announcements").GET("", middleware.Cache(30*time.Second), controllers.HandleAnnouncementFunc(container, "getAllAnnouncements"))
	user.Group("/announcements").GET("/read", controllers.HandleAnnouncementFunc(container, "getReadIDs"))
	user.Group("/announcements").POST("/:id/read", controllers.HandleAnnouncementFunc(container, "markRead"))

	// 结算查询路由
	user.Group("/settlements").GET("/settled", controllers.HandleSettlementFunc(container, "getSettledIDs"))
}

// registerManagerRoutes 注册仅管理者可访问的路由
func registerManagerRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	manager := api.Group("/")
	manager.Use(middleware.AuthenticateManager())

	// 接待员管理路由
	manager.Group("/receptionists").PUT("/:id", controllers.HandleReceptionistFunc(container, "updateReceptionist"))
	manager.Group("/receptionists").DELETE("/:id", controllers.HandleReceptionistFunc(container, "deleteReceptionist"))

	// 订单管理路由
	manager.Group("/orders").PUT("/:id", controllers.HandleOrderFunc(container, "updateOrder"))
	manager.Group("/orders").POST("/:id/approve", controllers.HandleOrderFunc(container, "approveOrder"))
	manager.Group("/orders").DELETE("/:id", controllers.HandleOrderFunc(container, "deleteOrder"))

	// 惩罚管理路由
	manager.Group("/penalties").POST("", controllers.HandlePenaltyFunc(container, "createPenalty"))
	manager.Group("/penalties").DELETE("/:id", controllers.HandlePenaltyFunc(container, "deletePenalty"))

	// 公告管理路由
	manager.Group("/announcements").POST("", controllers.HandleAnnouncementFunc(container, "createAnnouncement"))
	manager.Group("/announcements").DELETE("/:id", controllers.HandleAnnouncementFunc(container, "deleteAnnouncement"))

	// 结算管理路由
	manager.Group("/receptionists").POST("/:id/settle", controllers.HandleSettlementFunc(container, "settleReceptionist"))
	manager.Group("/receptionists").POST("/:id/unsettle", controllers.HandleSettlementFunc(container, "unsettleReceptionist"))
	manager.Group("/settlements").GET("/studio-income", middleware.Cache(30*time.Second), controllers.HandleSettlementFunc(container, "getStudioIncomeSummary"))
}
