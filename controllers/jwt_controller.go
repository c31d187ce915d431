package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killingrose3/taluo/internal/error/code"
	"github.com/killingrose3/taluo/internal/error/response"
	"github.com/killingrose3/taluo/services"
	"github.com/killingrose3/taluo/services/container"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
	Register()
}

// JWTController 处理登录注册请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Name     string `json:"name" binding:"required" example:"小月"`
	Password string `json:"password" binding:"required" example:"Nyx@12345"`
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"小月"`
	Emoji    string `json:"emoji" example:"🌙"`
	Password string `json:"password" binding:"required" example:"Nyx@12345"`
}

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"Invalid name or password"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc 返回一个处理认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// Login 处理用户登录
// @Summary      用户登录
// @Description  校验名称和密码，返回JWT令牌；管理者不受软删除限制
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录请求参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数: "+err.Error())
		return
	}

	receptionistService := c.Container.GetService("receptionist").(services.InterfaceReceptionistService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	user, err := receptionistService.Login(req.Name, req.Password)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrPasswordIncorrect, err.Error(), nil)
		return
	}

	token, err := jwtService.GenerateToken(user.ID, user.Role, user.Name)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "生成令牌失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token":     token,
		"user_id":   user.ID,
		"role":      user.Role,
		"name":      user.Name,
		"emoji":     user.Emoji,
		"is_intern": user.IsIntern,
	})
}

// Register 处理接待员注册
// @Summary      接待员注册
// @Description  注册新接待员并直接登录，新人默认实习身份
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册请求参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/register [post]
func (c *JWTController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数: "+err.Error())
		return
	}

	receptionistService := c.Container.GetService("receptionist").(services.InterfaceReceptionistService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	user, err := receptionistService.Register(req.Name, req.Emoji, req.Password)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrReceptionistAlreadyExist, err.Error(), nil)
		return
	}

	// 注册成功即登录
	token, err := jwtService.GenerateToken(user.ID, user.Role, user.Name)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "生成令牌失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token":     token,
		"user_id":   user.ID,
		"role":      user.Role,
		"name":      user.Name,
		"emoji":     user.Emoji,
		"is_intern": user.IsIntern,
	})
}
