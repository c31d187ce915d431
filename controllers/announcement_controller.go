package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killingrose3/taluo/internal/error/code"
	"github.com/killingrose3/taluo/internal/error/response"
	"github.com/killingrose3/taluo/middleware"
	"github.com/killingrose3/taluo/services"
	"github.com/killingrose3/taluo/services/container"
)

// InterfaceAnnouncementController 定义公告控制器接口
type InterfaceAnnouncementController interface {
	GetAllAnnouncements()
	CreateAnnouncement()
	DeleteAnnouncement()
	GetReadIDs()
	MarkRead()
}

// AnnouncementController 处理公告相关的请求
type AnnouncementController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAnnouncementController 创建一个新的公告控制器
func NewAnnouncementController(ctx *gin.Context, container *container.ServiceContainer) *AnnouncementController {
	return &AnnouncementController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateAnnouncementRequest 表示发布公告的请求
type CreateAnnouncementRequest struct {
	Content string `json:"content" binding:"required"`
}

// HandleAnnouncementFunc 返回一个处理公告请求的Gin处理函数
func HandleAnnouncementFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAnnouncementController(ctx, container)

		switch method {
		case "getAllAnnouncements":
			controller.GetAllAnnouncements()
		case "createAnnouncement":
			controller.CreateAnnouncement()
		case "deleteAnnouncement":
			controller.DeleteAnnouncement()
		case "getReadIDs":
			controller.GetReadIDs()
		case "markRead":
			controller.MarkRead()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetAllAnnouncements 获取所有公告
// @Summary      获取公告列表
// @Description  按创建时间倒序返回全部公告
// @Tags         Announcement
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /announcements [get]
func (c *AnnouncementController) GetAllAnnouncements() {
	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	announcements, err := announcementService.GetAllAnnouncements()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取公告列表失败", nil)
		return
	}

	response.Success(c.Ctx, announcements)
}

// CreateAnnouncement 发布新公告
// @Summary      发布公告
// @Description  管理者发布公告，同时推送MQTT事件通知在线客户端
// @Tags         Announcement
// @Accept       json
// @Produce      json
// @Param        request  body  CreateAnnouncementRequest  true  "公告内容"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /announcements [post]
func (c *AnnouncementController) CreateAnnouncement() {
	var req CreateAnnouncementRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数: "+err.Error())
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	announcement, err := announcementService.CreateAnnouncement(req.Content)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	// 公告列表有响应缓存，发布后立即清除
	middleware.PurgeCache()

	response.Success(c.Ctx, announcement)
}

// DeleteAnnouncement 删除公告
// @Summary      删除公告
// @Description  删除公告及其全部已读记录
// @Tags         Announcement
// @Produce      json
// @Param        id  path  int  true  "公告ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的公告ID")
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	if err := announcementService.DeleteAnnouncement(uint(id)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrAnnouncementNotFound, err.Error(), nil)
		return
	}

	middleware.PurgeCache()

	response.Success(c.Ctx, gin.H{"message": "删除成功"})
}

// GetReadIDs 获取当前用户已读的公告ID列表
// @Summary      获取已读公告ID
// @Tags         Announcement
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /announcements/read [get]
func (c *AnnouncementController) GetReadIDs() {
	userID := middleware.CurrentUserID(c.Ctx)
	if userID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	ids, err := announcementService.GetReadIDs(userID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取已读记录失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{"read_ids": ids})
}

// MarkRead 标记公告已读
// @Summary      标记公告已读
// @Description  同一用户重复标记同一公告是幂等操作
// @Tags         Announcement
// @Produce      json
// @Param        id  path  int  true  "公告ID"
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /announcements/{id}/read [post]
func (c *AnnouncementController) MarkRead() {
	userID := middleware.CurrentUserID(c.Ctx)
	if userID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的公告ID")
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	if err := announcementService.MarkRead(userID, uint(id)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "标记已读失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "已标记为已读"})
}
