package database

import (
	"context"
	"courseware_backend/internal/config"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisDialTimeout = 5 * time.Second

// InitRedis Redis 只用于进度事件发布，连接数按配置给，启动时 ping 不通直接失败
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 20
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    poolSize,
		DialTimeout: redisDialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", rdb.Options().Addr, err)
	}
	return rdb, nil
}
