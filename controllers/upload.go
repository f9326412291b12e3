package controllers

import (
	"net/http"

	"vtube/services"

	"github.com/gin-gonic/gin"
)

// 创建上传服务实例
var uploadService = services.UploadService{}

// GetUploadURL 获取图片上传URL API（需要JWT认证）
// 请求：POST /api/v1/upload-url
// Body: {"filename": "avatar.png", "filesize": 102400}
// 返回：{"uploadUrl": "...", "fileUrl": "..."}
// 客户端用预签名URL直传对象存储，再把 fileUrl 填进资料或视频的头像/封面字段
func GetUploadURL(c *gin.Context) {
	_, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	var req services.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的请求参数: " + err.Error(),
		})
		return
	}

	resp, err := uploadService.GetUploadURL(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
