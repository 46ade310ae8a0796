package model

import (
	"fmt"
	"time"

	apperrors "flight-ticket-stats/pkg/app_errors"
)

const (
	// DateLayout matches dd.mm.yy
	DateLayout = "02.01.06"
	// TimeLayout matches h:mm, the hour may omit its leading zero
	TimeLayout = "15:04"
)

// Ticket is one flight record as it appears in tickets.json.
type Ticket struct {
	Origin          string `json:"origin" db:"origin"`
	OriginName      string `json:"origin_name,omitempty" db:"origin_name"`
	Destination     string `json:"destination" db:"destination"`
	DestinationName string `json:"destination_name,omitempty" db:"destination_name"`
	DepartureDate   string `json:"departure_date" db:"departure_date"`
	DepartureTime   string `json:"departure_time" db:"departure_time"`
	ArrivalDate     string `json:"arrival_date" db:"arrival_date"`
	ArrivalTime     string `json:"arrival_time" db:"arrival_time"`
	Carrier         string `json:"carrier" db:"carrier"`
	Stops           int    `json:"stops,omitempty" db:"stops"`
	Price           int    `json:"price" db:"price"`
}

// TicketSet is the root of the tickets document.
type TicketSet struct {
	Tickets []*Ticket `json:"tickets"`
}

// DepartureAt combines departure date and time into one UTC timestamp.
func (t *Ticket) DepartureAt() (time.Time, error) {
	return combine(t.DepartureDate, t.DepartureTime)
}

// ArrivalAt combines arrival date and time into one UTC timestamp.
func (t *Ticket) ArrivalAt() (time.Time, error) {
	return combine(t.ArrivalDate, t.ArrivalTime)
}

// FlightDuration is arrival minus departure. The result is not validated
// and is negative when the record arrives before it departs.
func (t *Ticket) FlightDuration() (time.Duration, error) {
	departure, err := t.DepartureAt()
	if err != nil {
		return 0, err
	}
	arrival, err := t.ArrivalAt()
	if err != nil {
		return 0, err
	}
	return arrival.Sub(departure), nil
}

func combine(date, clock string) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", apperrors.ErrInvalidSchedule, date, err)
	}
	c, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q: %v", apperrors.ErrInvalidSchedule, clock, err)
	}
	year := d.Year()
	// yy always means 20yy; time.Parse puts 69-99 in the 1900s
	if year < 2000 {
		year += 100
	}
	return time.Date(year, d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC), nil
}
