package redis

import (
	"context"
	"fmt"
	"time"

	"availability-api/core/logger"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

var client *redis.Client

// InitRedis connects and pings the Redis instance used for client
// preferences and as the asynq broker.
func InitRedis(config RedisConfig) (*redis.Client, error) {
	logger.Info("Initializing redis...", "addr", config.Addr, "db", config.DB)

	c := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to ping redis", "error", err)
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	client = c
	logger.Info("Redis initialized successfully", "addr", config.Addr)
	return c, nil
}

func GetClient() *redis.Client {
	return client
}
