package model

import (
	"time"

	"github.com/google/uuid"
)

// CarrierFlightTime is the shortest flight of one carrier, in minutes.
type CarrierFlightTime struct {
	Carrier string `json:"carrier"`
	Minutes int64  `json:"minutes"`
}

// Hours and RemainderMinutes split Minutes with truncating division.
func (c CarrierFlightTime) Hours() int64 {
	return c.Minutes / 60
}

func (c CarrierFlightTime) RemainderMinutes() int64 {
	return c.Minutes % 60
}

type PriceStats struct {
	Average    float64 `json:"average"`
	Median     float64 `json:"median"`
	Difference float64 `json:"difference"`
}

// Report is the outcome of one run over a route.
type Report struct {
	RunID          uuid.UUID           `json:"run_id"`
	Origin         string              `json:"origin"`
	Destination    string              `json:"destination"`
	TicketCount    int                 `json:"ticket_count"`
	MinFlightTimes []CarrierFlightTime `json:"min_flight_times"`
	Price          PriceStats          `json:"price"`
	GeneratedAt    time.Time           `json:"generated_at"`
}
