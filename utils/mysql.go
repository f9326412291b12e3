package utils

import (
	"fmt"

	"vtube/config"
	"vtube/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// 数据库实例（私有）
var db *gorm.DB

// InitMySQL 初始化 MySQL 连接
func InitMySQL() error {
	// 配置MySQL连接字符串
	// 格式：用户名:密码@tcp(主机:端口)/数据库名?参数
	c := config.ConfigInfo.Mysql
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Addr, c.Database, c.Charset)

	// 连接数据库
	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	db = conn
	logrus.Info("MySQL 数据库连接成功")
	return nil
}

// SetDB 替换数据库实例（测试时注入内存数据库）
func SetDB(conn *gorm.DB) {
	db = conn
}

// AutoMigrate 自动迁移数据库表结构
func AutoMigrate(m ...interface{}) error {
	return db.AutoMigrate(m...)
}

// ==================== 用户相关数据库操作 ====================

// CreateUser 创建用户
func CreateUser(user *models.User) error {
	return db.Create(user).Error
}

// GetUserByID 根据ID查询用户
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername 根据用户名查询用户
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail 根据邮箱查询用户（包含密码字段，用于登录校验）
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameExists 检查用户名是否已被占用
// excludeID 不为0时排除指定用户自己的记录（用于资料更新时的唯一性检查）
func UsernameExists(username string, excludeID uint) bool {
	var count int64
	query := db.Model(&models.User{}).Where("username = ?", username)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		logrus.Errorf("查询用户名失败: %v", err)
		return false
	}
	return count > 0
}

// EmailExists 检查邮箱是否已被占用
func EmailExists(email string, excludeID uint) bool {
	var count int64
	query := db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		logrus.Errorf("查询邮箱失败: %v", err)
		return false
	}
	return count > 0
}

// UpdateUser 更新用户多个字段
func UpdateUser(id uint, updates map[string]interface{}) error {
	return db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

// ==================== 订阅相关数据库操作 ====================

// CreateSubscription 创建订阅记录
func CreateSubscription(sub *models.Subscription) error {
	return db.Create(sub).Error
}

// DeleteSubscription 删除订阅记录（物理删除，边表不做软删除）
func DeleteSubscription(userID, channelID uint) error {
	return db.Where("user_id = ? AND channel_id = ?", userID, channelID).
		Delete(&models.Subscription{}).Error
}

// IsSubscribed 检查订阅关系是否存在
func IsSubscribed(userID, channelID uint) bool {
	var count int64
	err := db.Model(&models.Subscription{}).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Count(&count).Error
	if err != nil {
		logrus.Errorf("查询订阅记录失败: %v", err)
		return false
	}
	return count > 0
}

// GetSubscribedChannels 获取用户订阅的所有频道
func GetSubscribedChannels(userID uint) ([]models.User, error) {
	var subs []models.Subscription
	err := db.Preload("Channel").Where("user_id = ?", userID).Find(&subs).Error
	if err != nil {
		return nil, err
	}

	channels := make([]models.User, 0, len(subs))
	for _, sub := range subs {
		channels = append(channels, sub.Channel)
	}
	return channels, nil
}

// GetSubscribedChannelIDs 获取用户订阅的频道ID列表（用于订阅流查询）
func GetSubscribedChannelIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&models.Subscription{}).Where("user_id = ?", userID).
		Pluck("channel_id", &ids).Error
	return ids, err
}

// RefreshSubscribersCount 根据订阅边的真实数量重算频道的订阅者计数
// 不做增量加减，避免并发下计数漂移
func RefreshSubscribersCount(channelID uint) error {
	var count int64
	err := db.Model(&models.Subscription{}).Where("channel_id = ?", channelID).
		Count(&count).Error
	if err != nil {
		return err
	}
	return db.Model(&models.User{}).Where("id = ?", channelID).
		Update("subscribers_count", count).Error
}

// ==================== 视频相关数据库操作 ====================

// CreateVideo 创建视频记录
func CreateVideo(video *models.Video) error {
	return db.Create(video).Error
}

// GetVideoByID 根据ID查询视频
func GetVideoByID(id uint) (*models.Video, error) {
	var video models.Video
	err := db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// UpdateVideo 更新视频多个字段
func UpdateVideo(id uint, updates map[string]interface{}) error {
	return db.Model(&models.Video{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteVideo 删除视频记录
// 注意：关联的评论和点赞记录不做级联删除
func DeleteVideo(id uint) error {
	return db.Delete(&models.Video{}, id).Error
}

// GetVideoList 获取视频列表（分页，按创建时间倒序）
func GetVideoList(page, pageSize int) ([]models.Video, int64, error) {
	return findVideos(db.Model(&models.Video{}), page, pageSize)
}

// GetUserVideoList 获取某个用户发布的视频列表
func GetUserVideoList(userID uint, page, pageSize int) ([]models.Video, int64, error) {
	return findVideos(db.Model(&models.Video{}).Where("user_id = ?", userID), page, pageSize)
}

// GetFeedVideoList 获取订阅频道发布的视频列表
func GetFeedVideoList(channelIDs []uint, page, pageSize int) ([]models.Video, int64, error) {
	if len(channelIDs) == 0 {
		return []models.Video{}, 0, nil
	}
	return findVideos(db.Model(&models.Video{}).Where("user_id IN ?", channelIDs), page, pageSize)
}

// GetVideosByIDs 根据ID列表批量查询视频
func GetVideosByIDs(ids []uint) ([]models.Video, error) {
	videos := []models.Video{}
	if len(ids) == 0 {
		return videos, nil
	}
	err := db.Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// findVideos 在给定查询条件上执行统一的分页逻辑
func findVideos(query *gorm.DB, page, pageSize int) ([]models.Video, int64, error) {
	var total int64
	videos := []models.Video{}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询，按创建时间倒序
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// ==================== 点赞相关数据库操作 ====================

// GetVideoLike 查询用户对视频的点赞/点踩记录
func GetVideoLike(userID, videoID uint) (*models.VideoLike, error) {
	var like models.VideoLike
	err := db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// CreateVideoLike 创建点赞/点踩记录
func CreateVideoLike(like *models.VideoLike) error {
	return db.Create(like).Error
}

// UpdateVideoLikePolarity 原地翻转点赞极性
func UpdateVideoLikePolarity(userID, videoID uint, polarity int8) error {
	return db.Model(&models.VideoLike{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Update("like", polarity).Error
}

// DeleteVideoLike 删除点赞/点踩记录（物理删除）
func DeleteVideoLike(userID, videoID uint) error {
	return db.Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&models.VideoLike{}).Error
}

// RefreshReactionCounts 根据点赞边的真实数量重算视频的点赞/点踩计数
func RefreshReactionCounts(videoID uint) error {
	var likes, dislikes int64
	err := db.Model(&models.VideoLike{}).
		Where("video_id = ? AND `like` = ?", videoID, models.PolarityLike).
		Count(&likes).Error
	if err != nil {
		return err
	}
	err = db.Model(&models.VideoLike{}).
		Where("video_id = ? AND `like` = ?", videoID, models.PolarityDislike).
		Count(&dislikes).Error
	if err != nil {
		return err
	}
	return db.Model(&models.Video{}).Where("id = ?", videoID).Updates(map[string]interface{}{
		"likes_count":    likes,
		"dislikes_count": dislikes,
	}).Error
}

// GetUserLikedVideoIDs 获取用户点赞过的视频ID列表（分页，按点赞时间倒序）
func GetUserLikedVideoIDs(userID uint, page, pageSize int) ([]uint, int64, error) {
	query := db.Model(&models.VideoLike{}).
		Where("user_id = ? AND `like` = ?", userID, models.PolarityLike)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).
		Pluck("video_id", &ids).Error
	if err != nil {
		return nil, 0, err
	}

	return ids, total, nil
}

// ==================== 评论相关数据库操作 ====================

// CreateComment 创建评论
func CreateComment(comment *models.Comment) error {
	return db.Create(comment).Error
}

// GetCommentByID 根据ID查询评论
func GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment 删除评论
func DeleteComment(id uint) error {
	return db.Delete(&models.Comment{}, id).Error
}

// GetCommentList 获取视频评论列表（分页，预加载评论作者）
func GetCommentList(videoID uint, page, pageSize int) ([]models.Comment, int64, error) {
	var total int64
	comments := []models.Comment{}

	query := db.Model(&models.Comment{}).Where("video_id = ?", videoID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := db.Preload("User").Where("video_id = ?", videoID).
		Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// RefreshCommentsCount 根据评论的真实数量重算视频的评论计数
func RefreshCommentsCount(videoID uint) error {
	var count int64
	err := db.Model(&models.Comment{}).Where("video_id = ?", videoID).
		Count(&count).Error
	if err != nil {
		return err
	}
	return db.Model(&models.Video{}).Where("id = ?", videoID).
		Update("comments_count", count).Error
}
