package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schedules are kept as the dd.mm.yy / h:mm strings of tickets.json so
// both sources go through the same parsing.
const schema = `
	CREATE TABLE IF NOT EXISTS tickets (
		id               BIGSERIAL PRIMARY KEY,
		origin           TEXT NOT NULL,
		origin_name      TEXT NOT NULL DEFAULT '',
		destination      TEXT NOT NULL,
		destination_name TEXT NOT NULL DEFAULT '',
		departure_date   TEXT NOT NULL,
		departure_time   TEXT NOT NULL,
		arrival_date     TEXT NOT NULL,
		arrival_time     TEXT NOT NULL,
		carrier          TEXT NOT NULL,
		stops            INTEGER NOT NULL DEFAULT 0,
		price            INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS tickets_route_idx ON tickets (origin, destination);
`

func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
