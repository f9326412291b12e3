package routes

import (
	"vtube/controllers"
	"vtube/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes 设置所有路由
func SetupRoutes(router *gin.Engine) {
	// API路由组
	v1 := router.Group("/api/v1")

	// 公开路由（不需要认证）
	{
		v1.POST("/users", controllers.Register)                          // 注册
		v1.POST("/users/login", controllers.Login)                       // 登录
		v1.GET("/videos", controllers.GetVideoList)                      // 获取视频列表（公开）
		v1.GET("/videos/:videoId/comments", controllers.GetComments)     // 获取视频评论（公开）
		v1.GET("/users/:userId/videos", controllers.GetUserVideoList)    // 获取用户发布的视频
		v1.GET("/users/:userId/subscriptions", controllers.GetSubscriptions) // 获取用户订阅的频道
	}

	// 可选认证的路由
	// 未登录也能访问，登录时额外返回点赞/订阅状态
	optional := v1.Group("")
	optional.Use(middlewares.AuthMiddleware(false))
	{
		optional.GET("/videos/:videoId", controllers.GetVideo) // 获取视频详情
		optional.GET("/users/:userId", controllers.GetUser)    // 获取用户（频道）资料
	}

	// 需要认证的路由
	// 使用AuthMiddleware中间件保护这些路由
	protected := v1.Group("")
	protected.Use(middlewares.AuthMiddleware(true))
	{
		// 用户相关路由
		protected.GET("/user", controllers.GetCurrentUser)    // 获取当前用户信息
		protected.PUT("/user", controllers.UpdateCurrentUser) // 更新当前用户资料
		protected.POST("/logout", controllers.Logout)         // 登出

		// 订阅相关路由
		protected.POST("/users/:userId/subscribe", controllers.Subscribe)     // 订阅频道
		protected.POST("/users/:userId/unsubscribe", controllers.Unsubscribe) // 取消订阅

		// 视频相关路由
		protected.POST("/videos", controllers.CreateVideo)            // 发布视频
		protected.PUT("/videos/:videoId", controllers.UpdateVideo)    // 更新视频
		protected.DELETE("/videos/:videoId", controllers.DeleteVideo) // 删除视频
		protected.GET("/feed", controllers.GetFeedVideoList)          // 订阅流

		// 点赞相关路由
		protected.POST("/videos/:videoId/like", controllers.LikeVideo)       // 点赞视频
		protected.POST("/videos/:videoId/dislike", controllers.DislikeVideo) // 点踩视频
		protected.GET("/user/liked-videos", controllers.GetLikedVideoList)   // 点赞过的视频

		// 评论相关路由
		protected.POST("/videos/:videoId/comments", controllers.AddComment)                 // 添加评论
		protected.DELETE("/videos/:videoId/comments/:commentId", controllers.DeleteComment) // 删除评论

		// 上传相关路由
		protected.POST("/upload-url", controllers.GetUploadURL) // 获取图片上传URL
	}
}
