package main

import (
	"context"

	"flight-ticket-stats/config"
	"flight-ticket-stats/internal/database"
	"flight-ticket-stats/internal/repository"
	"flight-ticket-stats/pkg/logger"

	"go.uber.org/zap"
)

// seed copies TICKETS_FILE into the Postgres tickets table.
func main() {
	defer logger.L.Sync()
	log := logger.WithComponent("seed")
	ctx := context.Background()

	cfg := config.LoadConfig()

	tickets, err := repository.NewFileTicketRepository(cfg.Tickets.File).List(ctx)
	if err != nil {
		log.Fatal("Failed to load tickets", zap.Error(err))
	}

	pool, err := database.OpenTicketStore(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.InitSchema(ctx, pool); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}

	repo := repository.NewPostgresTicketRepository(pool).(*repository.PostgresTicketRepository)
	if err := repo.Insert(ctx, tickets); err != nil {
		log.Fatal("Failed to insert tickets", zap.Error(err))
	}

	log.Info("Tickets seeded", zap.Int("count", len(tickets)), zap.String("path", cfg.Tickets.File))
}
