package app

import (
	"context"
	"fmt"

	"flight-ticket-stats/config"
	"flight-ticket-stats/internal/cache"
	"flight-ticket-stats/internal/database"
	"flight-ticket-stats/internal/repository"
	"flight-ticket-stats/internal/service"
	"flight-ticket-stats/pkg/logger"

	"go.uber.org/zap"
)

// App holds the wired report pipeline and the resources it must release.
type App struct {
	Config  *config.Config
	Reports service.ReportService
	closers []func()
}

// New wires the ticket source and, when withCache is set and enabled in
// config, the Redis report cache.
func New(cfg *config.Config, withCache bool) (*App, error) {
	a := &App{Config: cfg}

	repo, err := a.initRepository(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	var reportCache cache.ReportCache
	if withCache && cfg.Cache.Enabled {
		rdb, err := database.OpenReportCache(context.Background(), &cfg.Redis)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		a.closers = append(a.closers, func() { rdb.Close() })
		reportCache = cache.NewRedisReportCache(rdb, cfg.Cache.TTL)
	}

	a.Reports = service.NewReportService(repo, reportCache)
	return a, nil
}

func (a *App) initRepository(cfg *config.Config) (repository.TicketRepository, error) {
	log := logger.WithComponent("app")

	switch cfg.Tickets.Source {
	case config.SourceFile:
		log.Debug("Using file ticket source", zap.String("path", cfg.Tickets.File))
		return repository.NewFileTicketRepository(cfg.Tickets.File), nil
	case config.SourcePostgres:
		pool, err := database.OpenTicketStore(context.Background(), &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := database.InitSchema(context.Background(), pool); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		log.Debug("Using postgres ticket source", zap.String("host", cfg.Database.Host))
		return repository.NewPostgresTicketRepository(pool), nil
	default:
		return nil, fmt.Errorf("unknown ticket source %q", cfg.Tickets.Source)
	}
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
