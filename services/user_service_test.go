package services

import (
	"errors"
	"testing"

	"vtube/utils"
)

// TestRegisterAndLogin 测试注册后用相同凭证登录
func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	service := UserService{}

	// 注册
	view, err := service.Register(RegisterRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if view.Username != "alice" || view.Email != "a@x.com" {
		t.Errorf("注册返回的用户信息不正确: %+v", view)
	}
	if view.Token == "" {
		t.Error("注册应该返回令牌")
	}

	// 用相同凭证登录
	logged, err := service.Login(LoginRequest{
		Email:    "a@x.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if logged.Token == "" {
		t.Error("登录应该返回令牌")
	}

	// 令牌能解析出正确的用户ID
	claims, err := utils.ValidateJWT(logged.Token)
	if err != nil {
		t.Fatalf("令牌验证失败: %v", err)
	}
	if claims.UserID != view.ID {
		t.Errorf("令牌中的用户ID错误: got %d, want %d", claims.UserID, view.ID)
	}
}

// TestRegisterConflict 测试用户名和邮箱的唯一性检查
func TestRegisterConflict(t *testing.T) {
	setupTestDB(t)
	service := UserService{}

	if _, err := service.Register(RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	tests := []struct {
		name    string
		request RegisterRequest
		wantErr error
	}{
		{
			name:    "用户名已存在",
			request: RegisterRequest{Username: "alice", Email: "b@x.com", Password: "secret123"},
			wantErr: ErrUsernameTaken,
		},
		{
			name:    "邮箱已存在",
			request: RegisterRequest{Username: "bob", Email: "a@x.com", Password: "secret123"},
			wantErr: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("期望错误 %v, 实际 %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoginErrors 测试登录失败场景
func TestLoginErrors(t *testing.T) {
	setupTestDB(t)
	service := UserService{}

	if _, err := service.Register(RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	// 邮箱未注册
	if _, err := service.Login(LoginRequest{Email: "nobody@x.com", Password: "secret123"}); !errors.Is(err, ErrLoginNotFound) {
		t.Errorf("期望错误 %v, 实际 %v", ErrLoginNotFound, err)
	}

	// 密码错误
	if _, err := service.Login(LoginRequest{Email: "a@x.com", Password: "wrong"}); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("期望错误 %v, 实际 %v", ErrWrongPassword, err)
	}
}

// TestUpdateUser 测试更新用户资料
func TestUpdateUser(t *testing.T) {
	setupTestDB(t)
	service := UserService{}

	alice := createTestUser(t, "alice", "a@x.com")
	createTestUser(t, "bob", "b@x.com")

	// 普通字段更新
	view, err := service.Update(alice, UpdateUserRequest{
		ChannelDescription: "我的频道",
		Avatar:             "http://img/avatar.png",
	})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if view.ChannelDescription != "我的频道" || view.Avatar != "http://img/avatar.png" {
		t.Errorf("更新后的资料不正确: %+v", view)
	}

	// 改成已被占用的用户名
	if _, err := service.Update(alice, UpdateUserRequest{Username: "bob"}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("期望错误 %v, 实际 %v", ErrUsernameTaken, err)
	}

	// 改成已被占用的邮箱
	if _, err := service.Update(alice, UpdateUserRequest{Email: "b@x.com"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望错误 %v, 实际 %v", ErrEmailTaken, err)
	}

	// 提交自己当前的用户名不算冲突
	if _, err := service.Update(alice, UpdateUserRequest{Username: "alice"}); err != nil {
		t.Errorf("提交自己的用户名不应该报错: %v", err)
	}

	// 修改密码后能用新密码登录
	if _, err := service.Update(alice, UpdateUserRequest{Password: "newpass123"}); err != nil {
		t.Fatalf("修改密码失败: %v", err)
	}
	if _, err := service.Login(LoginRequest{Email: "a@x.com", Password: "newpass123"}); err != nil {
		t.Errorf("用新密码登录失败: %v", err)
	}
	if _, err := service.Login(LoginRequest{Email: "a@x.com", Password: "password123"}); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("旧密码应该失效, 实际错误: %v", err)
	}

	// 响应里不应该出现密码字段（视图结构本身不包含密码）
	updated, err := service.Update(alice, UpdateUserRequest{})
	if err != nil {
		t.Fatalf("空更新失败: %v", err)
	}
	if updated.Username == "" {
		t.Error("空更新应该返回当前资料")
	}
}
