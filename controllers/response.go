package controllers

import (
	"errors"
	"net/http"

	"vtube/models"
	"vtube/services"

	"github.com/gin-gonic/gin"
)

// currentUser 从上下文取出认证中间件解析好的当前用户
func currentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// currentUserID 取当前用户ID，匿名请求返回0
func currentUserID(c *gin.Context) uint {
	v, exists := c.Get("userID")
	if !exists {
		return 0
	}
	id, _ := v.(uint)
	return id
}

// fail 把业务错误映射为HTTP状态码并返回统一的错误响应
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrVideoNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrSelfSubscribe),
		errors.Is(err, services.ErrLoginNotFound),
		errors.Is(err, services.ErrWrongPassword):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}
