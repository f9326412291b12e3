package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vtube/models"
	"vtube/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupRouter 创建带认证中间件的测试路由
func setupRouter(t *testing.T, required bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("无法创建测试数据库: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	utils.SetDB(db)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(required), func(c *gin.Context) {
		if user, exists := c.Get("user"); exists {
			c.JSON(http.StatusOK, gin.H{"username": user.(*models.User).Username})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": nil})
	})
	return router
}

// createAuthedUser 创建用户并签发令牌
func createAuthedUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@x.com",
		Password: "hash",
	}
	if err := utils.CreateUser(user); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}
	return user, token
}

// TestAuthRequired 测试必须认证的接口
func TestAuthRequired(t *testing.T) {
	router := setupRouter(t, true)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "缺少认证头", header: "", wantStatus: http.StatusUnauthorized},
		{name: "格式错误的认证头", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "非法令牌", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("状态码错误: got %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

// TestAuthValidToken 测试有效令牌解析出正确的用户
func TestAuthValidToken(t *testing.T) {
	router := setupRouter(t, true)
	_, token := createAuthedUser(t, "alice")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码错误: got %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"username":"alice"}` {
		t.Errorf("响应内容错误: %s", body)
	}
}

// TestAuthStaleToken 测试令牌有效但用户已不存在时拒绝请求
func TestAuthStaleToken(t *testing.T) {
	router := setupRouter(t, true)

	// 给一个不存在的用户ID签发令牌
	token, err := utils.GenerateJWT(9999)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("状态码错误: got %d, want 401", w.Code)
	}
}

// TestAuthOptional 测试可选认证的接口
func TestAuthOptional(t *testing.T) {
	router := setupRouter(t, false)

	// 匿名请求可以通过，上下文中没有用户
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("匿名请求状态码错误: got %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"username":null}` {
		t.Errorf("匿名请求响应内容错误: %s", body)
	}

	// 携带非法令牌时即使是可选认证也拒绝
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("非法令牌状态码错误: got %d, want 401", w.Code)
	}

	// 携带有效令牌时解析出用户
	_, token := createAuthedUser(t, "bob")
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("有效令牌状态码错误: got %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"username":"bob"}` {
		t.Errorf("有效令牌响应内容错误: %s", body)
	}
}
