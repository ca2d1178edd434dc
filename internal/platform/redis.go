package platform

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-exchange-rates/internal/config"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
)

// ConnectRedis opens the dedup cache client and pings it.
func ConnectRedis(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	logger.Log.Infow("connected to Redis", "addr", cfg.Addr(), "db", cfg.DB)
	return rdb, nil
}
