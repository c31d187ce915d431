package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killingrose3/taluo/internal/error/code"
	"github.com/killingrose3/taluo/internal/error/response"
	"github.com/killingrose3/taluo/models"
	"github.com/killingrose3/taluo/services"
	"github.com/killingrose3/taluo/services/container"
)

// InterfaceOrderController 定义订单控制器接口
type InterfaceOrderController interface {
	GetAllOrders()
	GetOrderByID()
	CreateOrder()
	UpdateOrder()
	ApproveOrder()
	DeleteOrder()
	GetBossBalance()
	CheckBossExists()
}

// OrderController 处理订单相关的请求
type OrderController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOrderController 创建一个新的订单控制器
func NewOrderController(ctx *gin.Context, container *container.ServiceContainer) *OrderController {
	return &OrderController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateOrderRequest 表示创建订单的请求
type CreateOrderRequest struct {
	ReceptionistID  uint    `json:"receptionist_id" binding:"required"`
	BossName        string  `json:"boss_name" binding:"required"`
	DivinerID       string  `json:"diviner_id"`
	Type            string  `json:"type" binding:"required"`
	Amount          float64 `json:"amount"`
	QuestionContent string  `json:"question_content"`
	BonusType       string  `json:"bonus_type"`
	Date            string  `json:"date"`
}

// UpdateOrderRequest 表示更新订单的请求
type UpdateOrderRequest struct {
	BossName        *string  `json:"boss_name"`
	DivinerID       *string  `json:"diviner_id"`
	Type            *string  `json:"type"`
	Amount          *float64 `json:"amount"`
	QuestionContent *string  `json:"question_content"`
	BonusType       *string  `json:"bonus_type"`
	Date            *string  `json:"date"`
	Approved        *bool    `json:"approved"`
}

// HandleOrderFunc 返回一个处理订单请求的Gin处理函数
func HandleOrderFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOrderController(ctx, container)

		switch method {
		case "getAllOrders":
			controller.GetAllOrders()
		case "getOrderByID":
			controller.GetOrderByID()
		case "createOrder":
			controller.CreateOrder()
		case "updateOrder":
			controller.UpdateOrder()
		case "approveOrder":
			controller.ApproveOrder()
		case "deleteOrder":
			controller.DeleteOrder()
		case "getBossBalance":
			controller.GetBossBalance()
		case "checkBossExists":
			controller.CheckBossExists()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetAllOrders 获取订单列表
// @Summary      获取订单列表
// @Description  分页获取订单，支持按接待员、老板、类型、审核状态过滤
// @Tags         Order
// @Produce      json
// @Param        pageNum         query  int     false  "页码，默认1"
// @Param        pageSize        query  int     false  "每页数量，默认20"
// @Param        receptionistId  query  int     false  "接待员ID"
// @Param        bossName        query  string  false  "老板名称"
// @Param        type            query  string  false  "订单类型"
// @Param        approved        query  bool    false  "审核状态"
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /orders [get]
func (c *OrderController) GetAllOrders() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("pageNum", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}

	filter := services.OrderFilter{
		BossName: c.Ctx.Query("bossName"),
		Type:     c.Ctx.Query("type"),
	}
	if v := c.Ctx.Query("receptionistId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			filter.ReceptionistID = uint(id)
		}
	}
	if v := c.Ctx.Query("approved"); v != "" {
		approved := v == "true"
		filter.Approved = &approved
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	orders, total, err := orderService.GetAllOrders(filter, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取订单列表失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"list":       orders,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// GetOrderByID 根据ID获取订单
// @Summary      获取订单详情
// @Tags         Order
// @Produce      json
// @Param        id  path  int  true  "订单ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (c *OrderController) GetOrderByID() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的订单ID")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	order, err := orderService.GetOrderByID(uint(id))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrOrderNotFound, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, order)
}

// CreateOrder 创建新订单
// @Summary      创建订单
// @Description  接待员提交新订单，默认未审核；正常单和扣除存单金额必须在允许档位内
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        request  body  CreateOrderRequest  true  "订单参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /orders [post]
func (c *OrderController) CreateOrder() {
	var req CreateOrderRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数: "+err.Error())
		return
	}

	order := models.Order{
		ReceptionistID:  req.ReceptionistID,
		BossName:        req.BossName,
		DivinerID:       req.DivinerID,
		Type:            req.Type,
		Amount:          req.Amount,
		QuestionContent: req.QuestionContent,
		BonusType:       req.BonusType,
		Date:            req.Date,
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	if err := orderService.CreateOrder(&order); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrOrderAmountInvalid, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, order)
}

// UpdateOrder 更新订单
// @Summary      更新订单
// @Description  管理者编辑订单字段或修改审核状态
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        id       path  int                 true  "订单ID"
// @Param        request  body  UpdateOrderRequest  true  "更新字段"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [put]
func (c *OrderController) UpdateOrder() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的订单ID")
		return
	}

	var req UpdateOrderRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.BossName != nil {
		updates["boss_name"] = *req.BossName
	}
	if req.DivinerID != nil {
		updates["diviner_id"] = *req.DivinerID
	}
	if req.Type != nil {
		if !models.ValidOrderType(*req.Type) {
			response.Fail(c.Ctx, code.ErrOrderTypeInvalid, nil)
			return
		}
		updates["type"] = *req.Type
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.QuestionContent != nil {
		updates["question_content"] = *req.QuestionContent
	}
	if req.BonusType != nil {
		updates["bonus_type"] = *req.BonusType
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Approved != nil {
		updates["approved"] = *req.Approved
	}

	if len(updates) == 0 {
		response.ParamError(c.Ctx, "没有需要更新的字段")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	order, err := orderService.UpdateOrder(uint(id), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrOrderNotFound, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, order)
}

// ApproveOrder 审核通过订单
// @Summary      审核订单
// @Description  管理者将订单标记为已通过，使其计入提成和收入
// @Tags         Order
// @Produce      json
// @Param        id  path  int  true  "订单ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id}/approve [post]
func (c *OrderController) ApproveOrder() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的订单ID")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	order, err := orderService.ApproveOrder(uint(id))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrOrderNotFound, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, order)
}

// DeleteOrder 删除订单
// @Summary      删除订单
// @Tags         Order
// @Produce      json
// @Param        id  path  int  true  "订单ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [delete]
func (c *OrderController) DeleteOrder() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的订单ID")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	if err := orderService.DeleteOrder(uint(id)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrOrderNotFound, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "删除成功"})
}

// GetBossBalance 获取老板预存余额
// @Summary      查询老板预存余额
// @Description  余额 = 已通过预存单之和 - 已通过扣除存单之和
// @Tags         Order
// @Produce      json
// @Param        bossName  query  string  true  "老板名称"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /orders/boss-balance [get]
func (c *OrderController) GetBossBalance() {
	bossName := c.Ctx.Query("bossName")
	if bossName == "" {
		response.ParamError(c.Ctx, "老板名称不能为空")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	balance, err := orderService.GetBossBalance(bossName)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询余额失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"boss_name": bossName,
		"balance":   balance,
	})
}

// CheckBossExists 检查老板是否已在系统中
// @Summary      检查老板是否存在
// @Description  存在其名下的预存单即视为已在系统中
// @Tags         Order
// @Produce      json
// @Param        bossName  query  string  true  "老板名称"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /orders/boss-exists [get]
func (c *OrderController) CheckBossExists() {
	bossName := c.Ctx.Query("bossName")
	if bossName == "" {
		response.ParamError(c.Ctx, "老板名称不能为空")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	exists, err := orderService.IsBossInSystem(bossName)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"boss_name": bossName,
		"exists":    exists,
	})
}
