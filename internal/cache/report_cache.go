package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flight-ticket-stats/internal/model"
	apperrors "flight-ticket-stats/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

type ReportCache interface {
	// Get returns ErrReportNotCached when the route has no live entry.
	Get(ctx context.Context, origin, destination string) (*model.Report, error)
	Set(ctx context.Context, report *model.Report) error
}

type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) ReportCache {
	return &RedisReportCache{
		client: client,
		ttl:    ttl,
	}
}

func ReportKey(origin, destination string) string {
	return fmt.Sprintf("report:%s:%s", origin, destination)
}

func (c *RedisReportCache) Get(ctx context.Context, origin, destination string) (*model.Report, error) {
	data, err := c.client.Get(ctx, ReportKey(origin, destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrReportNotCached
	}
	if err != nil {
		return nil, err
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("invalid cached report: %w", err)
	}
	return &report, nil
}

func (c *RedisReportCache) Set(ctx context.Context, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ReportKey(report.Origin, report.Destination), data, c.ttl).Err()
}
