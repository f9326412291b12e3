package services

import (
	"errors"
	"strings"

	"vtube/models"
	"vtube/utils"

	"gorm.io/gorm"
)

// UserService 用户服务层
// 负责处理注册、登录、资料更新相关的业务逻辑
type UserService struct{}

// RegisterRequest 注册请求结构
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"` // 用户名，必填，3-20字符
	Email    string `json:"email" binding:"required,email"`           // 邮箱，必填
	Password string `json:"password" binding:"required,min=6"`        // 密码，必填，至少6字符
}

// LoginRequest 登录请求结构
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // 邮箱，必填
	Password string `json:"password" binding:"required"`    // 密码，必填
}

// UpdateUserRequest 更新资料请求结构，所有字段均可选
type UpdateUserRequest struct {
	Email              string `json:"email" binding:"omitempty,email"`
	Password           string `json:"password" binding:"omitempty,min=6"`
	Username           string `json:"username" binding:"omitempty,min=3,max=20"`
	ChannelDescription string `json:"channelDescription"`
	Avatar             string `json:"avatar"`
}

// AuthUserView 注册/登录/当前用户响应结构（携带令牌，不包含密码）
type AuthUserView struct {
	ID                 uint   `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Token              string `json:"token"`
	Avatar             string `json:"avatar"`
	ChannelDescription string `json:"channelDescription"`
}

// UserView 用户资料响应结构（不包含密码和令牌）
type UserView struct {
	ID                 uint   `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Avatar             string `json:"avatar"`
	Cover              string `json:"cover"`
	ChannelDescription string `json:"channelDescription"`
	SubscribersCount   int64  `json:"subscribersCount"`
}

// newAuthUserView 组装携带令牌的用户视图
func newAuthUserView(user *models.User, token string) *AuthUserView {
	return &AuthUserView{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Token:              token,
		Avatar:             user.Avatar,
		ChannelDescription: user.ChannelDescription,
	}
}

// newUserView 组装用户资料视图
func newUserView(user *models.User) *UserView {
	return &UserView{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Avatar:             user.Avatar,
		Cover:              user.Cover,
		ChannelDescription: user.ChannelDescription,
		SubscribersCount:   user.SubscribersCount,
	}
}

// Register 注册新用户
// 用户名和邮箱分别做唯一性检查，密码加密后入库，注册成功直接签发令牌
func (s *UserService) Register(req RegisterRequest) (*AuthUserView, error) {
	username := strings.TrimSpace(req.Username)

	// 1. 检查用户名是否已存在
	if utils.UsernameExists(username, 0) {
		return nil, ErrUsernameTaken
	}

	// 2. 检查邮箱是否已存在
	if utils.EmailExists(req.Email, 0) {
		return nil, ErrEmailTaken
	}

	// 3. 加密密码
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 4. 创建用户对象
	user := &models.User{
		Username: username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	// 5. 保存到数据库
	if err := utils.CreateUser(user); err != nil {
		return nil, err
	}

	// 6. 签发JWT令牌
	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, err
	}

	return newAuthUserView(user, token), nil
}

// Login 用户登录
// 参数：登录请求
// 返回：用户信息（包含JWT令牌）和错误
func (s *UserService) Login(req LoginRequest) (*AuthUserView, error) {
	// 1. 根据邮箱查找用户
	user, err := utils.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoginNotFound
		}
		return nil, err
	}

	// 2. 验证密码
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrWrongPassword
	}

	// 3. 生成JWT令牌
	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, err
	}

	// 4. 将 token 保存到 Redis
	_ = utils.SaveToken(user.ID, token)

	return newAuthUserView(user, token), nil
}

// GetCurrentUser 获取当前登录用户视图
func (s *UserService) GetCurrentUser(user *models.User, token string) *AuthUserView {
	return newAuthUserView(user, token)
}

// Update 更新当前用户资料
// 只更新请求中出现的字段；用户名/邮箱变更时重新做唯一性检查（排除自己）
func (s *UserService) Update(current *models.User, req UpdateUserRequest) (*UserView, error) {
	updates := map[string]interface{}{}

	// 1. 邮箱变更时检查唯一性
	if req.Email != "" && req.Email != current.Email {
		if utils.EmailExists(req.Email, current.ID) {
			return nil, ErrEmailTaken
		}
		updates["email"] = req.Email
	}

	// 2. 用户名变更时检查唯一性
	if req.Username != "" && req.Username != current.Username {
		if utils.UsernameExists(req.Username, current.ID) {
			return nil, ErrUsernameTaken
		}
		updates["username"] = req.Username
	}

	// 3. 密码变更时重新加密
	if req.Password != "" {
		hashedPassword, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashedPassword
	}

	if req.ChannelDescription != "" {
		updates["channel_description"] = req.ChannelDescription
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}

	// 4. 写入数据库并返回最新资料
	if len(updates) > 0 {
		if err := utils.UpdateUser(current.ID, updates); err != nil {
			return nil, err
		}
	}

	user, err := utils.GetUserByID(current.ID)
	if err != nil {
		return nil, err
	}

	return newUserView(user), nil
}

// Logout 用户登出
// 将令牌加入黑名单直到其自然过期，并清理 Redis 中保存的会话
func (s *UserService) Logout(userID uint, token string) error {
	if err := utils.AddToBlacklist(token, utils.TokenTTL()); err != nil {
		return err
	}
	return utils.DeleteUserToken(userID)
}

// GetUserByID 根据ID获取用户资料视图
func (s *UserService) GetUserByID(id uint) (*UserView, error) {
	user, err := utils.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return newUserView(user), nil
}
