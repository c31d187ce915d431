package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killingrose3/taluo/internal/error/code"
	"github.com/killingrose3/taluo/internal/error/response"
	"github.com/killingrose3/taluo/models"
	"github.com/killingrose3/taluo/services"
	"github.com/killingrose3/taluo/services/container"
)

// InterfacePenaltyController 定义惩罚控制器接口
type InterfacePenaltyController interface {
	GetAllPenalties()
	GetPenaltiesByReceptionist()
	CreatePenalty()
	DeletePenalty()
}

// PenaltyController 处理惩罚记录相关的请求
type PenaltyController struct {
	BaseControllerImpl
}

// NewPenaltyController 创建一个新的惩罚控制器
func (f *ControllerFactory) NewPenaltyController(ctx *gin.Context) *PenaltyController {
	return &PenaltyController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// CreatePenaltyRequest 表示创建惩罚记录的请求
type CreatePenaltyRequest struct {
	ReceptionistID uint    `json:"receptionist_id" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	Reason         string  `json:"reason"`
	Date           string  `json:"date"`
}

// HandlePenaltyFunc 返回一个处理惩罚请求的Gin处理函数
func HandlePenaltyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewPenaltyController(ctx)

		switch method {
		case "getAllPenalties":
			controller.GetAllPenalties()
		case "getPenaltiesByReceptionist":
			controller.GetPenaltiesByReceptionist()
		case "createPenalty":
			controller.CreatePenalty()
		case "deletePenalty":
			controller.DeletePenalty()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetAllPenalties 获取所有惩罚记录
// @Summary      获取惩罚列表
// @Tags         Penalty
// @Produce      json
// @Param        pageNum   query  int  false  "页码，默认1"
// @Param        pageSize  query  int  false  "每页数量，默认20"
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /penalties [get]
func (c *PenaltyController) GetAllPenalties() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("pageNum", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	penaltyService := c.Container.GetService("penalty").(services.InterfacePenaltyService)
	penalties, total, err := penaltyService.GetAllPenalties(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "获取惩罚列表失败", nil)
		return
	}

	response.Success(c.Context, gin.H{
		"list":       penalties,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// GetPenaltiesByReceptionist 获取指定接待员的惩罚记录
// @Summary      获取接待员惩罚记录
// @Tags         Penalty
// @Produce      json
// @Param        id  path  int  true  "接待员ID"
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /receptionists/{id}/penalties [get]
func (c *PenaltyController) GetPenaltiesByReceptionist() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "无效的接待员ID")
		return
	}

	penaltyService := c.Container.GetService("penalty").(services.InterfacePenaltyService)
	penalties, err := penaltyService.GetPenaltiesByReceptionist(uint(id))
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "获取惩罚记录失败", nil)
		return
	}

	response.Success(c.Context, penalties)
}

// CreatePenalty 创建惩罚记录
// @Summary      创建惩罚
// @Description  管理者对接待员记一笔惩罚，金额在下次结算时从余额中扣除
// @Tags         Penalty
// @Accept       json
// @Produce      json
// @Param        request  body  CreatePenaltyRequest  true  "惩罚参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /penalties [post]
func (c *PenaltyController) CreatePenalty() {
	var req CreatePenaltyRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "无效的请求参数: "+err.Error())
		return
	}

	penalty := models.Penalty{
		ReceptionistID: req.ReceptionistID,
		Amount:         req.Amount,
		Reason:         req.Reason,
		Date:           req.Date,
	}
	if penalty.Date == "" {
		penalty.Date = time.Now().Format("2006-01-02")
	}

	penaltyService := c.Container.GetService("penalty").(services.InterfacePenaltyService)
	if err := penaltyService.CreatePenalty(&penalty); err != nil {
		response.FailWithMessage(c.Context, code.ErrValidation, err.Error(), nil)
		return
	}

	response.Success(c.Context, penalty)
}

// DeletePenalty 删除惩罚记录
// @Summary      删除惩罚
// @Tags         Penalty
// @Produce      json
// @Param        id  path  int  true  "惩罚ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /penalties/{id} [delete]
func (c *PenaltyController) DeletePenalty() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "无效的惩罚ID")
		return
	}

	penaltyService := c.Container.GetService("penalty").(services.InterfacePenaltyService)
	if err := penaltyService.DeletePenalty(uint(id)); err != nil {
		response.FailWithMessage(c.Context, code.ErrPenaltyNotFound, err.Error(), nil)
		return
	}

	response.Success(c.Context, gin.H{"message": "删除成功"})
}
