package database

import (
	"context"
	"fmt"
	"net"
	"time"

	"flight-ticket-stats/config"

	"github.com/redis/go-redis/v9"
)

// ReportCacheOptions configures a client sized for the report cache: one
// GET and one SET per request, with short timeouts so a slow Redis only
// costs a cache miss.
func ReportCacheOptions(cfg *config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  connectTimeout,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
		PoolSize:     10,
	}
}

func OpenReportCache(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(ReportCacheOptions(cfg))

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	return rdb, nil
}
