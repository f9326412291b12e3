package controllers

import (
	"net/http"
	"strconv"

	"vtube/services"

	"github.com/gin-gonic/gin"
)

// 创建用户服务实例
var userService = services.UserService{}

// 创建订阅服务实例
var subscriptionService = services.SubscriptionService{}

// Register 注册API
// 请求：POST /api/v1/users
// Body: {"username": "alice", "email": "a@x.com", "password": "secret"}
// 返回：注册成功的用户信息和JWT令牌
func Register(c *gin.Context) {
	var req services.RegisterRequest

	// 绑定并验证JSON数据
	// ShouldBindJSON会自动验证binding标签中的规则
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的输入: " + err.Error(),
		})
		return
	}

	// 调用服务层注册用户
	user, err := userService.Register(req)
	if err != nil {
		fail(c, err)
		return
	}

	// 返回成功响应
	c.JSON(http.StatusCreated, gin.H{
		"user": user,
	})
}

// Login 登录API
// 请求：POST /api/v1/users/login
// Body: {"email": "a@x.com", "password": "secret"}
// 返回：用户信息和JWT令牌
func Login(c *gin.Context) {
	var req services.LoginRequest

	// 绑定并验证JSON数据
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的输入: " + err.Error(),
		})
		return
	}

	// 调用服务层登录
	user, err := userService.Login(req)
	if err != nil {
		fail(c, err)
		return
	}

	// 返回成功响应
	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}

// GetCurrentUser 获取当前用户信息API（需要JWT认证）
// 请求：GET /api/v1/user
// Header: Authorization: Bearer <token>
func GetCurrentUser(c *gin.Context) {
	// 从上下文中获取用户（由JWT中间件在验证令牌后设置）
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	token, _ := c.Get("token")

	c.JSON(http.StatusOK, gin.H{
		"user": userService.GetCurrentUser(user, token.(string)),
	})
}

// UpdateCurrentUser 更新当前用户资料API（需要JWT认证）
// 请求：PUT /api/v1/user
// Body: {email?, password?, username?, channelDescription?, avatar?}
func UpdateCurrentUser(c *gin.Context) {
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的输入: " + err.Error(),
		})
		return
	}

	updated, err := userService.Update(user, req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": updated,
	})
}

// Logout 登出API（需要JWT认证）
// 请求：POST /api/v1/logout
// 把当前令牌加入黑名单直到其自然过期
func Logout(c *gin.Context) {
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	token, _ := c.Get("token")

	if err := userService.Logout(user.ID, token.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "登出失败",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "登出成功",
	})
}

// Subscribe 订阅频道API（需要JWT认证）
// 请求：POST /api/v1/users/:userId/subscribe
func Subscribe(c *gin.Context) {
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	channelID, err := parseIDParam(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的用户ID",
		})
		return
	}

	channel, err := subscriptionService.Subscribe(user.ID, channelID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": channel,
	})
}

// Unsubscribe 取消订阅API（需要JWT认证）
// 请求：POST /api/v1/users/:userId/unsubscribe
func Unsubscribe(c *gin.Context) {
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	channelID, err := parseIDParam(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的用户ID",
		})
		return
	}

	channel, err := subscriptionService.Unsubscribe(user.ID, channelID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": channel,
	})
}

// GetUser 获取用户（频道）资料API
// 请求：GET /api/v1/users/:userId
// Header: Authorization: Bearer <token>（可选，提供时返回订阅状态）
func GetUser(c *gin.Context) {
	channelID, err := parseIDParam(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的用户ID",
		})
		return
	}

	channel, err := subscriptionService.GetChannel(currentUserID(c), channelID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": channel,
	})
}

// GetSubscriptions 获取用户订阅的频道列表API
// 请求：GET /api/v1/users/:userId/subscriptions
func GetSubscriptions(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的用户ID",
		})
		return
	}

	subscriptions, err := subscriptionService.GetSubscriptions(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscriptions": subscriptions,
	})
}

// parseIDParam 解析路径中的数字ID参数
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
