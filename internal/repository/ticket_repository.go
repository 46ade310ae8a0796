package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"flight-ticket-stats/internal/model"
	apperrors "flight-ticket-stats/pkg/app_errors"
	"flight-ticket-stats/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TicketRepository interface {
	List(ctx context.Context) ([]*model.Ticket, error)
}

// FileTicketRepository reads a tickets.json document on every List call.
type FileTicketRepository struct {
	path string
}

func NewFileTicketRepository(path string) TicketRepository {
	return &FileTicketRepository{path: path}
}

func (r *FileTicketRepository) List(ctx context.Context) ([]*model.Ticket, error) {
	path := filepath.Clean(r.path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperrors.ErrDataLoad, path, err)
	}

	var set model.TicketSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", apperrors.ErrDataLoad, path, err)
	}

	if set.Tickets == nil {
		set.Tickets = make([]*model.Ticket, 0)
	}
	for i, t := range set.Tickets {
		if t == nil {
			return nil, fmt.Errorf("%w: decode %s: ticket %d is null", apperrors.ErrDataLoad, path, i)
		}
	}

	logger.WithComponent("repository").Debug("Tickets loaded",
		zap.String("path", path),
		zap.Int("count", len(set.Tickets)),
	)

	return set.Tickets, nil
}

// PostgresTicketRepository reads the same records from the tickets table.
type PostgresTicketRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &PostgresTicketRepository{
		pool: pool,
	}
}

func (r *PostgresTicketRepository) List(ctx context.Context) ([]*model.Ticket, error) {
	query := `
		SELECT origin, origin_name, destination, destination_name,
				departure_date, departure_time, arrival_date, arrival_time,
				carrier, stops, price
		FROM tickets
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query tickets: %v", apperrors.ErrDataLoad, err)
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)

	for rows.Next() {
		var ticket model.Ticket
		err := rows.Scan(
			&ticket.Origin,
			&ticket.OriginName,
			&ticket.Destination,
			&ticket.DestinationName,
			&ticket.DepartureDate,
			&ticket.DepartureTime,
			&ticket.ArrivalDate,
			&ticket.ArrivalTime,
			&ticket.Carrier,
			&ticket.Stops,
			&ticket.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan ticket: %v", apperrors.ErrDataLoad, err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read tickets: %v", apperrors.ErrDataLoad, err)
	}

	return tickets, nil
}

// Insert stores tickets in order. It is used to seed the table from a
// tickets.json document.
func (r *PostgresTicketRepository) Insert(ctx context.Context, tickets []*model.Ticket) error {
	query := `
		INSERT INTO tickets (
		origin, origin_name, destination, destination_name,
		departure_date, departure_time, arrival_date, arrival_time,
		carrier, stops, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, t := range tickets {
		_, err := tx.Exec(ctx, query,
			t.Origin, t.OriginName, t.Destination, t.DestinationName,
			t.DepartureDate, t.DepartureTime, t.ArrivalDate, t.ArrivalTime,
			t.Carrier, t.Stops, t.Price,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
