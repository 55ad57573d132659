package cache

import (
	"context"

	"WorkTok.com/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var RDB *redis.Client

func Init() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})

	if err := RDB.Ping(context.Background()).Err(); err != nil {
		logrus.Warnf("redis ping failed: %v", err)
	}
}
