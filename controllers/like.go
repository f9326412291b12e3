package controllers

import (
	"net/http"

	"vtube/services"

	"github.com/gin-gonic/gin"
)

// 创建点赞服务实例
var likeService = services.LikeService{}

// LikeVideo 点赞视频API（需要JWT认证）
// 请求：POST /api/v1/videos/:videoId/like
// 再次点赞取消，点踩状态下点赞则翻转
// 返回：刷新后的视频信息和 isLiked 标记
func LikeVideo(c *gin.Context) {
	// 1. 获取当前用户（JWT中间件已验证）
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

	// 3. 调用服务层执行点赞状态转移
	resp, err := likeService.Like(user.ID, videoID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DislikeVideo 点踩视频API（需要JWT认证）
// 请求：POST /api/v1/videos/:videoId/dislike
// 返回：刷新后的视频信息和 isDisliked 标记
func DislikeVideo(c *gin.Context) {
	// 1. 获取当前用户
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

	// 3. 调用服务层执行点踩状态转移
	resp, err := likeService.Dislike(user.ID, videoID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
