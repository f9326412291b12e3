package middlewares

import (
	"net/http"
	"strings"

	"vtube/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware JWT认证中间件
// required 为 true 时缺少令牌直接拒绝；为 false 时允许匿名继续（用于可选登录的接口）
// 令牌有效时把解析出的用户和原始令牌写入上下文，供后续处理函数使用
func AuthMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从请求头获取Authorization字段
		// 标准格式：Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
			if required {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "缺少认证令牌",
				})
				c.Abort() // 终止请求处理
				return
			}
			// 匿名访问，继续处理请求
			c.Next()
			return
		}

		// 提取令牌
		token := parts[1]

		// 检查 token 是否在黑名单中（已登出）
		if utils.IsBlacklisted(token) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "令牌已失效，请重新登录",
			})
			c.Abort()
			return
		}

		// 验证JWT令牌（签名无效或已过期都会失败）
		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "无效的认证令牌",
			})
			c.Abort()
			return
		}

		// 解析令牌中的用户ID
		// 令牌有效但用户已不存在时同样拒绝，不允许携带空身份继续
		user, err := utils.GetUserByID(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "无效的认证令牌",
			})
			c.Abort()
			return
		}

		// 将用户和 token 存入上下文
		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Set("token", token)

		// 继续处理请求
		c.Next()
	}
}
