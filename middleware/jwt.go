package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/killingrose3/taluo/config"
	"github.com/killingrose3/taluo/models"
	"github.com/killingrose3/taluo/services"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// validateRequest 校验请求令牌，成功时返回claims
func validateRequest(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Authorization header is required",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	tokenString := extractToken(authHeader)
	token, err := jwtService.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid or expired token",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid token claims",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	return claims, true
}

// AuthenticateManager 验证管理者权限
func AuthenticateManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := validateRequest(c)
		if !ok {
			return
		}

		// 检查是否是管理者
		if role, exists := claims["role"].(string); !exists || role != models.RoleManager {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires manager role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		// 存储claims到上下文
		c.Set("userID", claims["user_id"])
		c.Set("role", claims["role"])
		c.Set("claims", claims)
		c.Next()
	}
}

// AuthenticateUser 验证任意已登录用户权限
func AuthenticateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := validateRequest(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		if !exists || (role != models.RoleManager && role != models.RoleReceptionist) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires valid user role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", claims["user_id"])
		c.Set("role", role)
		c.Set("claims", claims)
		c.Next()
	}
}

// CurrentUserID 从上下文中取出当前登录用户ID
func CurrentUserID(c *gin.Context) uint {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(float64); ok {
			return uint(id)
		}
	}
	return 0
}
