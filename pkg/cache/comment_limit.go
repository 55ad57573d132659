package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// 通过redis设置key和过期时间来限制用户评论频率 采用管道满足原子执行的一致性
func IncrCommentRate(ctx context.Context, userId string, window time.Duration) (int64, error) {
	key := fmt.Sprintf("comment_rate_limit:%s", userId)
	pipe := RDB.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// CheckDuplicateComment 在时间窗口内检测同一用户的重复评论内容
func CheckDuplicateComment(ctx context.Context, userId, content string, window time.Duration) (bool, error) {
	sum := md5.Sum([]byte(content))
	key := fmt.Sprintf("comment_dup:%s:%s", userId, hex.EncodeToString(sum[:]))

	ok, err := RDB.SetNX(ctx, key, 1, window).Result()
	if err != nil {
		return false, err
	}
	// SetNX失败说明窗口内已有相同内容
	return !ok, nil
}
