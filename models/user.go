package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型（同时也是频道）
type User struct {
	gorm.Model
	Username           string `gorm:"uniqueIndex;size:64;not null" json:"username"` // 用户名，唯一且不能为空
	Email              string `gorm:"uniqueIndex;size:128;not null" json:"email"`   // 邮箱，唯一且不能为空
	Password           string `gorm:"not null" json:"-"`                            // 密码哈希，json序列化时忽略
	Avatar             string `json:"avatar"`                                       // 头像URL
	Cover              string `json:"cover"`                                        // 频道封面URL
	ChannelDescription string `json:"channelDescription"`                           // 频道简介
	SubscribersCount   int64  `gorm:"default:0" json:"subscribersCount"`            // 订阅者数量（冗余计数，始终由订阅边重算）
}

// Subscription 订阅关系（边表）
// 复合主键保证同一对 (订阅者, 频道) 只有一条记录，唯一性由表结构保证而不是先查后插
type Subscription struct {
	UserID    uint      `gorm:"primaryKey" json:"userId"`    // 订阅者ID
	ChannelID uint      `gorm:"primaryKey" json:"channelId"` // 被订阅的频道（用户）ID
	CreatedAt time.Time `json:"createdAt"`
	Channel   User      `gorm:"foreignKey:ChannelID" json:"-"`
}

// Video 视频模型
type Video struct {
	gorm.Model
	Title         string `gorm:"not null" json:"title"`          // 视频标题
	Description   string `json:"description"`                    // 视频描述
	VodVideoID    string `gorm:"not null" json:"vodVideoId"`     // 点播服务中的视频ID（外部媒体引用）
	Cover         string `json:"cover"`                          // 视频封面URL
	UserID        uint   `gorm:"index" json:"userId"`            // 视频所属用户ID
	User          User   `gorm:"foreignKey:UserID" json:"-"`     // 与User模型建立关联
	CommentsCount int64  `gorm:"default:0" json:"commentsCount"` // 评论数（冗余计数）
	LikesCount    int64  `gorm:"default:0" json:"likesCount"`    // 点赞数（冗余计数）
	DislikesCount int64  `gorm:"default:0" json:"dislikesCount"` // 点踩数（冗余计数）
}

// 点赞极性常量
const (
	PolarityLike    = 1  // 喜欢
	PolarityDislike = -1 // 不喜欢
)

// VideoLike 视频点赞/点踩记录（边表）
// 每对 (用户, 视频) 至多一条记录，Like 取值 1 或 -1，同一对不会同时存在两种极性
type VideoLike struct {
	UserID    uint      `gorm:"primaryKey" json:"userId"`
	VideoID   uint      `gorm:"primaryKey" json:"videoId"`
	Like      int8      `gorm:"not null" json:"like"` // 1=喜欢，-1=不喜欢
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Comment 评论模型
type Comment struct {
	gorm.Model
	Content string `gorm:"type:text;not null" json:"content"` // 评论内容
	UserID  uint   `gorm:"index" json:"userId"`               // 评论用户ID
	User    User   `gorm:"foreignKey:UserID" json:"-"`        // 与User模型建立关联
	VideoID uint   `gorm:"index" json:"videoId"`              // 评论的视频ID
	Video   Video  `gorm:"foreignKey:VideoID" json:"-"`       // 与Video模型建立关联
}
