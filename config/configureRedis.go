package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func InitRedisServer(ctx context.Context, s Settings) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     s.RedisAddress,
		Password: s.RedisPassword,
		DB:       0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		Logger.Fatal("[REDIS] Failed to connect", zap.String("addr", s.RedisAddress), zap.Error(err))
	}

	return client
}
