package testutil

import (
	"context"
	"fmt"

	"flight-ticket-stats/config"
	"flight-ticket-stats/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupDatabase connects to the test Postgres and ensures the schema.
func SetupDatabase() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	pool, err := database.OpenTicketStore(context.Background(), &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}

	if err := database.InitSchema(context.Background(), pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to initialize schema: %v", err)
	}

	return pool, pool.Close, nil
}

// SetupRedisOnly initializes only Redis, for tests that depend on nothing else.
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.OpenReportCache(context.Background(), &cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %v", err)
	}
	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}
