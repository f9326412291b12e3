package controllers

import (
	"net/http"

	"vtube/services"

	"github.com/gin-gonic/gin"
)

// 创建评论服务实例
var commentService = services.CommentService{}

// AddComment 添加评论API（需要JWT认证）
// 请求：POST /api/v1/videos/:videoId/comments
// Body: {"content": "评论内容"}
func AddComment(c *gin.Context) {
	// 1. 获取当前用户（JWT已经验证过了）
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	// 2. 从路径参数获取视频ID
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的视频ID",
		})
		return
	}

	// 3. 绑定请求体（只包含评论内容）
	var req services.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的请求参数: " + err.Error(),
		})
		return
	}

	// 4. 调用服务层添加评论
	comment, err := commentService.AddComment(user.ID, videoID, req)
	if err != nil {
		fail(c, err)
		return
	}

	// 5. 返回成功响应
	c.JSON(http.StatusOK, gin.H{
		"comment": comment,
	})
}

// GetComments 获取视频评论API（公开）
// 请求：GET /api/v1/videos/:videoId/comments?pageNum=1&pageSize=10
func GetComments(c *gin.Context) {
	// 从路径参数获取视频ID
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的视频ID",
		})
		return
	}

	pageNum, pageSize := pageParams(c)

	// 获取评论
	resp, err := commentService.GetComments(videoID, pageNum, pageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteComment 删除评论API（需要JWT认证，仅评论作者）
// 请求：DELETE /api/v1/videos/:videoId/comments/:commentId
func DeleteComment(c *gin.Context) {
	// 1. 获取当前用户
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	// 2. 从路径参数获取视频ID和评论ID
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的视频ID",
		})
		return
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的评论ID",
		})
		return
	}

	// 3. 调用服务层删除评论
	if err := commentService.DeleteComment(user.ID, videoID, commentID); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
