package services

import (
	"testing"

	"vtube/models"
	"vtube/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 创建测试数据库（使用 SQLite 内存数据库）
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("无法创建测试数据库: %v", err)
	}

	// 自动迁移所有表
	err = db.AutoMigrate(
		&models.User{},
		&models.Subscription{},
		&models.Video{},
		&models.VideoLike{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	utils.SetDB(db)
}

// createTestUser 创建测试用户
func createTestUser(t *testing.T, username, email string) *models.User {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("密码加密失败: %v", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := utils.CreateUser(user); err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

// createTestVideo 创建测试视频
func createTestVideo(t *testing.T, ownerID uint, title string) *models.Video {
	t.Helper()

	video := &models.Video{
		Title:       title,
		Description: "测试描述",
		VodVideoID:  "vod-" + title,
		UserID:      ownerID,
	}
	if err := utils.CreateVideo(video); err != nil {
		t.Fatalf("创建测试视频失败: %v", err)
	}
	return video
}
