package controllers

import (
	"net/http"
	"strconv"

	"vtube/services"

	"github.com/gin-gonic/gin"
)

// 创建视频服务实例
var videoService = services.VideoService{}

// pageParams 获取分页参数，非法值由服务层收敛为默认值
func pageParams(c *gin.Context) (int, int) {
	pageNum, _ := strconv.Atoi(c.DefaultQuery("pageNum", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return pageNum, pageSize
}

// CreateVideo 发布视频API（需要JWT认证）
// 请求：POST /api/v1/videos
// Body: {"title": "...", "description": "...", "vodVideoId": "...", "cover": "..."}
func CreateVideo(c *gin.Context) {
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	var req services.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的请求参数: " + err.Error(),
		})
		return
	}

	video, err := videoService.Create(user.ID, req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"video": video,
	})
}

// GetVideo 获取视频详情API
// 请求：GET /api/v1/videos/:videoId
// Header: Authorization: Bearer <token>（可选，提供时返回点赞和订阅状态）
func GetVideo(c *gin.Context) {
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的视频ID",
		})
		return
	}

	video, err := videoService.Get(videoID, currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"video": video,
	})
}

// GetVideoList 获取视频列表API（公开）
// 请求：GET /api/v1/videos?pageNum=1&pageSize=10
func GetVideoList(c *gin.Context) {
	pageNum, pageSize := pageParams(c)

	resp, err := videoService.GetVideoList(pageNum, pageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUserVideoList 获取某个用户发布的视频列表API
// 请求：GET /api/v1/users/:userId/videos?pageNum=1&pageSize=10
func GetUserVideoList(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的用户ID",
		})
		return
	}

	pageNum, pageSize := pageParams(c)

	resp, err := videoService.GetUserVideoList(userID, pageNum, pageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetFeedVideoList 获取订阅流API（需要JWT认证）
// 请求：GET /api/v1/feed?pageNum=1&pageSize=10
// 返回当前用户订阅的所有频道发布的视频
func GetFeedVideoList(c *gin.Context) {
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	pageNum, pageSize := pageParams(c)

	resp, err := videoService.GetFeedVideoList(user.ID, pageNum, pageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLikedVideoList 获取当前用户点赞过的视频列表API（需要JWT认证）
// 请求：GET /api/v1/user/liked-videos?pageNum=1&pageSize=10
func GetLikedVideoList(c *gin.Context) {
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	pageNum, pageSize := pageParams(c)

	resp, err := videoService.GetLikedVideoList(user.ID, pageNum, pageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateVideo 更新视频API（需要JWT认证，仅作者）
// 请求：PUT /api/v1/videos/:videoId
// Body: {title?, description?, vodVideoId?, cover?}
func UpdateVideo(c *gin.Context) {
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的视频ID",
		})
		return
	}

	var req services.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的请求参数: " + err.Error(),
		})
		return
	}

	video, err := videoService.Update(videoID, user.ID, req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"video": video,
	})
}

// DeleteVideo 删除视频API（需要JWT认证，仅作者）
// 请求：DELETE /api/v1/videos/:videoId
func DeleteVideo(c *gin.Context) {
	user, exists := currentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "未授权",
		})
		return
	}

	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的视频ID",
		})
		return
	}

	if err := videoService.Delete(videoID, user.ID); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
