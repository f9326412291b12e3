package utils

import (
	"time"

	"vtube/config"

	"github.com/golang-jwt/jwt/v5"
)

// 默认JWT密钥，正常情况下会被配置文件中的值覆盖
var defaultSecret = []byte("vtube-secret-key-2026")

// MyClaims 自定义JWT声明
type MyClaims struct {
	UserID               uint `json:"userId"` // 用户ID
	jwt.RegisteredClaims      // 标准声明（过期时间、签发者等）
}

// secretKey 返回用于签名和验证的密钥
func secretKey() []byte {
	if s := config.ConfigInfo.Jwt.Secret; s != "" {
		return []byte(s)
	}
	return defaultSecret
}

// TokenTTL 返回令牌有效期，默认一年
func TokenTTL() time.Duration {
	days := config.ConfigInfo.Jwt.ExpireDay
	if days <= 0 {
		days = 365
	}
	return time.Duration(days) * 24 * time.Hour
}

// GenerateJWT 生成JWT令牌
// 参数：用户ID
// 返回：JWT令牌字符串和错误
func GenerateJWT(userID uint) (string, error) {
	issuer := config.ConfigInfo.Jwt.Issuer
	if issuer == "" {
		issuer = "vtube"
	}

	// 创建声明
	claims := MyClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL())), // 默认一年后过期
			IssuedAt:  jwt.NewNumericDate(time.Now()),                 // 签发时间
			Issuer:    issuer,                                         // 签发者
		},
	}

	// 使用HS256算法创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 使用密钥签名生成最终的令牌字符串
	return token.SignedString(secretKey())
}

// ValidateJWT 验证JWT令牌
// 参数：JWT令牌字符串
// 返回：解析后的声明和错误
func ValidateJWT(tokenString string) (*MyClaims, error) {
	// 解析令牌
	token, err := jwt.ParseWithClaims(tokenString, &MyClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// 返回用于验证的密钥
			return secretKey(), nil
		})

	// 检查解析是否出错（签名无效、已过期等都会在这里返回错误）
	if err != nil {
		return nil, err
	}

	// 检查令牌是否有效
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	// 提取声明
	claims, ok := token.Claims.(*MyClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	// 返回解析成功的声明数据
	return claims, nil
}
