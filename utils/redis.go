package utils

import (
	"context"
	"fmt"
	"time"

	"vtube/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis 客户端实例
var rdb *redis.Client

// Redis Key 前缀
const (
	TokenPrefix     = "token:"     // 有效 token 前缀
	BlacklistPrefix = "blacklist:" // 黑名单 token 前缀
)

// InitRedis 初始化 Redis 连接
func InitRedis() error {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       0,
	})

	// 测试连接
	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return err
	}

	logrus.Info("Redis 连接成功")
	return nil
}

// SaveToken 保存 token 到 Redis
// 参数：用户ID、token
func SaveToken(userID uint, token string) error {
	if rdb == nil {
		return nil
	}
	ctx := context.Background()
	key := fmt.Sprintf("%s%d", TokenPrefix, userID)
	// 保存时长与 JWT 有效期一致
	return rdb.Set(ctx, key, token, TokenTTL()).Err()
}

// AddToBlacklist 将 token 加入黑名单
// 参数：token、剩余过期时间
func AddToBlacklist(token string, expiration time.Duration) error {
	if rdb == nil {
		return nil
	}
	ctx := context.Background()
	key := BlacklistPrefix + token
	// 黑名单中的 token 只需要保存到原 token 过期即可
	return rdb.Set(ctx, key, "1", expiration).Err()
}

// IsBlacklisted 检查 token 是否在黑名单中
// 参数：token
// 返回：是否在黑名单中
func IsBlacklisted(token string) bool {
	if rdb == nil {
		return false
	}
	ctx := context.Background()
	key := BlacklistPrefix + token
	exists, err := rdb.Exists(ctx, key).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

// DeleteUserToken 删除用户的 token（用于登出时清理）
func DeleteUserToken(userID uint) error {
	if rdb == nil {
		return nil
	}
	ctx := context.Background()
	key := fmt.Sprintf("%s%d", TokenPrefix, userID)
	return rdb.Del(ctx, key).Err()
}
