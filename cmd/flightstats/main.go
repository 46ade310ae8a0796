package main

import (
	"context"
	"os"

	"flight-ticket-stats/config"
	"flight-ticket-stats/internal/cli"
	"flight-ticket-stats/pkg/logger"
)

func main() {
	code := cli.Run(context.Background(), config.LoadConfig(), os.Stdout)
	_ = logger.L.Sync()
	os.Exit(code)
}
