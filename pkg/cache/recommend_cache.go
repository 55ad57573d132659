package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const recommendCacheTTL = 30 * time.Minute

func recommendKey(userId string, page, size int) string {
	return fmt.Sprintf("recommend:%s:%d:%d", userId, page, size)
}

// GetRecommendCache 读取用户推荐结果缓存 未命中返回nil
func GetRecommendCache(ctx context.Context, userId string, page, size int) ([]string, error) {
	val, err := RDB.Get(ctx, recommendKey(userId, page, size)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func SetRecommendCache(ctx context.Context, userId string, page, size int, contentIds []string) error {
	data, err := json.Marshal(contentIds)
	if err != nil {
		return err
	}
	return RDB.Set(ctx, recommendKey(userId, page, size), data, recommendCacheTTL).Err()
}

// InvalidateRecommendCache 用户偏好变化后清空其推荐缓存 userId为空时清全量
func InvalidateRecommendCache(ctx context.Context, userId string) error {
	pattern := fmt.Sprintf("recommend:%s:*", userId)
	if userId == "" {
		pattern = "recommend:*"
	}
	iter := RDB.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := RDB.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
