package utils

import (
	"testing"
)

// TestGenerateAndValidateJWT 测试令牌签发和验证
func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}
	if token == "" {
		t.Fatal("令牌不应该为空")
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("验证令牌失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("令牌中的用户ID错误: got %d, want 42", claims.UserID)
	}
}

// TestValidateJWTInvalid 测试非法令牌被拒绝
func TestValidateJWTInvalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "空令牌", token: ""},
		{name: "乱码令牌", token: "not-a-jwt"},
		{name: "被篡改的令牌", token: func() string {
			token, _ := GenerateJWT(1)
			return token + "x"
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateJWT(tt.token); err == nil {
				t.Error("非法令牌应该验证失败")
			}
		})
	}
}
