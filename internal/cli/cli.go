package cli

import (
	"context"
	"fmt"
	"io"

	"flight-ticket-stats/config"
	"flight-ticket-stats/internal/app"
	"flight-ticket-stats/internal/report"
)

// Run builds the report for the configured route and writes it to stdout.
// On failure it writes "Error: <cause>" to stdout instead and returns 1.
// The failure itself is logged once by the report service.
func Run(ctx context.Context, cfg *config.Config, stdout io.Writer) int {
	if err := run(ctx, cfg, stdout); err != nil {
		fmt.Fprintln(stdout, "Error: "+err.Error())
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	application, err := app.New(cfg, false)
	if err != nil {
		return err
	}
	defer application.Close()

	r, err := application.Reports.Build(ctx, cfg.Route.Origin, cfg.Route.Destination)
	if err != nil {
		return err
	}

	return report.WriteConsole(stdout, r)
}
