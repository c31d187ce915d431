package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killingrose3/taluo/internal/error/code"
	"github.com/killingrose3/taluo/internal/error/response"
	"github.com/killingrose3/taluo/services"
	"github.com/killingrose3/taluo/services/container"
)

// InterfaceSettlementController 定义结算控制器接口
type InterfaceSettlementController interface {
	GetBalance()
	SettleReceptionist()
	UnsettleReceptionist()
	GetSettledIDs()
	GetStudioIncomeSummary()
}

// SettlementController 处理周结算相关的请求
type SettlementController struct {
	BaseControllerImpl
}

// NewSettlementController 创建一个新的结算控制器
func (f *ControllerFactory) NewSettlementController(ctx *gin.Context) *SettlementController {
	return &SettlementController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleSettlementFunc 返回一个处理结算请求的Gin处理函数
func HandleSettlementFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewSettlementController(ctx)

		switch method {
		case "getBalance":
			controller.GetBalance()
		case "settleReceptionist":
			controller.SettleReceptionist()
		case "unsettleReceptionist":
			controller.UnsettleReceptionist()
		case "getSettledIDs":
			controller.GetSettledIDs()
		case "getStudioIncomeSummary":
			controller.GetStudioIncomeSummary()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetBalance 计算接待员当前余额
// @Summary      查询接待员余额
// @Description  基于结算窗口内的订单、惩罚和周任务状态实时计算，不落库
// @Tags         Settlement
// @Produce      json
// @Param        id  path  int  true  "接待员ID"
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /receptionists/{id}/balance [get]
func (c *SettlementController) GetBalance() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "无效的接待员ID")
		return
	}

	settlementService := c.Container.GetService("settlement").(services.InterfaceSettlementService)
	result := settlementService.CalculateBalance(uint(id))

	response.Success(c.Context, result)
}

// SettleReceptionist 结算接待员本周余额
// @Summary      结算接待员
// @Description  管理者发起周结算，同一周重复结算会被拒绝
// @Tags         Settlement
// @Produce      json
// @Param        id  path  int  true  "接待员ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /receptionists/{id}/settle [post]
func (c *SettlementController) SettleReceptionist() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "无效的接待员ID")
		return
	}

	settlementService := c.Container.GetService("settlement").(services.InterfaceSettlementService)
	settlement, err := settlementService.SettleReceptionist(uint(id))
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrAlreadySettled, err.Error(), nil)
		return
	}

	response.Success(c.Context, settlement)
}

// UnsettleReceptionist 撤销本周结算
// @Summary      撤销结算
// @Description  撤销本周结算，结算窗口回退到备份时间
// @Tags         Settlement
// @Produce      json
// @Param        id  path  int  true  "接待员ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /receptionists/{id}/unsettle [post]
func (c *SettlementController) UnsettleReceptionist() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "无效的接待员ID")
		return
	}

	settlementService := c.Container.GetService("settlement").(services.InterfaceSettlementService)
	if err := settlementService.UnsettleReceptionist(uint(id)); err != nil {
		response.FailWithMessage(c.Context, code.ErrNotSettled, err.Error(), nil)
		return
	}

	response.Success(c.Context, gin.H{"message": "已撤销本周结算"})
}

// GetSettledIDs 获取本周已结算的接待员ID列表
// @Summary      获取本周已结算ID
// @Tags         Settlement
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /settlements/settled [get]
func (c *SettlementController) GetSettledIDs() {
	settlementService := c.Container.GetService("settlement").(services.InterfaceSettlementService)
	ids, err := settlementService.GetSettledIDs()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "获取结算列表失败", nil)
		return
	}

	response.Success(c.Context, gin.H{"settled_ids": ids})
}

// GetStudioIncomeSummary 汇总工作室总收入
// @Summary      工作室收入汇总
// @Description  按订单类型抽成规则汇总全部订单的工作室收入
// @Tags         Settlement
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /settlements/studio-income [get]
func (c *SettlementController) GetStudioIncomeSummary() {
	settlementService := c.Container.GetService("settlement").(services.InterfaceSettlementService)
	total, err := settlementService.GetStudioIncomeSummary()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "汇总工作室收入失败", nil)
		return
	}

	response.Success(c.Context, gin.H{"total_income": total})
}
