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

// InterfaceReceptionistController 定义接待员控制器接口
type InterfaceReceptionistController interface {
	GetAllReceptionists()
	GetReceptionistByID()
	UpdateReceptionist()
	DeleteReceptionist()
}

// ReceptionistController 处理接待员相关的请求
type ReceptionistController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReceptionistController 创建一个新的接待员控制器
func NewReceptionistController(ctx *gin.Context, container *container.ServiceContainer) *ReceptionistController {
	return &ReceptionistController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateReceptionistRequest 表示更新接待员的请求
type UpdateReceptionistRequest struct {
	Name             *string  `json:"name"`
	Emoji            *string  `json:"emoji"`
	Password         *string  `json:"password"`
	IsIntern         *bool    `json:"is_intern"`
	CommissionRate   *float64 `json:"commission_rate"`
	CommissionExpiry *string  `json:"commission_expiry"` // RFC3339，空串表示清除
	IsDeleted        *bool    `json:"is_deleted"`
}

// HandleReceptionistFunc 返回一个处理接待员请求的Gin处理函数
func HandleReceptionistFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReceptionistController(ctx, container)

		switch method {
		case "getAllReceptionists":
			controller.GetAllReceptionists()
		case "getReceptionistByID":
			controller.GetReceptionistByID()
		case "updateReceptionist":
			controller.UpdateReceptionist()
		case "deleteReceptionist":
			controller.DeleteReceptionist()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetAllReceptionists 获取所有接待员
// @Summary      获取接待员列表
// @Description  分页获取接待员列表，默认不含软删除的接待员
// @Tags         Receptionist
// @Produce      json
// @Param        pageNum         query  int   false  "页码，默认1"
// @Param        pageSize        query  int   false  "每页数量，默认20"
// @Param        includeDeleted  query  bool  false  "是否包含已删除接待员"
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /receptionists [get]
func (c *ReceptionistController) GetAllReceptionists() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("pageNum", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("pageSize", "20"))
	includeDeleted := c.Ctx.Query("includeDeleted") == "true"

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	receptionistService := c.Container.GetService("receptionist").(services.InterfaceReceptionistService)
	receptionists, total, err := receptionistService.GetAllReceptionists(page, pageSize, includeDeleted)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取接待员列表失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"list":       receptionists,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// GetReceptionistByID 根据ID获取接待员
// @Summary      获取接待员详情
// @Tags         Receptionist
// @Produce      json
// @Param        id  path  int  true  "接待员ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /receptionists/{id} [get]
func (c *ReceptionistController) GetReceptionistByID() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的接待员ID")
		return
	}

	receptionistService := c.Container.GetService("receptionist").(services.InterfaceReceptionistService)
	receptionist, err := receptionistService.GetReceptionistByID(uint(id))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrReceptionistNotFound, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, receptionist)
}

// UpdateReceptionist 更新接待员信息
// @Summary      更新接待员
// @Description  管理者更新接待员信息：名称、提成比例、有效期、实习标记、软删除恢复等
// @Tags         Receptionist
// @Accept       json
// @Produce      json
// @Param        id       path  int                        true  "接待员ID"
// @Param        request  body  UpdateReceptionistRequest  true  "更新字段"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /receptionists/{id} [put]
func (c *ReceptionistController) UpdateReceptionist() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的接待员ID")
		return
	}

	var req UpdateReceptionistRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Emoji != nil {
		updates["emoji"] = *req.Emoji
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}
	if req.IsIntern != nil {
		updates["is_intern"] = *req.IsIntern
	}
	if req.CommissionRate != nil {
		updates["commission_rate"] = *req.CommissionRate
	}
	if req.CommissionExpiry != nil {
		if *req.CommissionExpiry == "" {
			updates["commission_expiry"] = nil
		} else {
			expiry, perr := parseTimeParam(*req.CommissionExpiry)
			if perr != nil {
				response.ParamError(c.Ctx, "无效的有效期格式，应为RFC3339或YYYY-MM-DD")
				return
			}
			updates["commission_expiry"] = expiry
		}
	}
	if req.IsDeleted != nil {
		updates["is_deleted"] = *req.IsDeleted
	}

	if len(updates) == 0 {
		response.ParamError(c.Ctx, "没有需要更新的字段")
		return
	}

	receptionistService := c.Container.GetService("receptionist").(services.InterfaceReceptionistService)
	receptionist, err := receptionistService.UpdateReceptionist(uint(id), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrReceptionistAlreadyExist, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, receptionist)
}

// DeleteReceptionist 删除接待员
// @Summary      删除接待员
// @Description  keepOrders=true 时软删除并保留订单，否则硬删除并级联删除订单
// @Tags         Receptionist
// @Produce      json
// @Param        id          path   int   true   "接待员ID"
// @Param        keepOrders  query  bool  false  "是否保留订单，默认true"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /receptionists/{id} [delete]
func (c *ReceptionistController) DeleteReceptionist() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的接待员ID")
		return
	}

	keepOrders := c.Ctx.DefaultQuery("keepOrders", "true") != "false"

	receptionistService := c.Container.GetService("receptionist").(services.InterfaceReceptionistService)
	if err := receptionistService.DeleteReceptionist(uint(id), keepOrders); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrReceptionistNotFound, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "删除成功"})
}
