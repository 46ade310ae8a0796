package stats

import (
	"fmt"
	"sort"
	"time"

	"flight-ticket-stats/internal/model"
)

// MinFlightTimeByCarrier returns the shortest flight duration in minutes
// for every carrier present in tickets. Negative durations are kept as is.
// A ticket with an unparsable schedule fails the whole computation.
func MinFlightTimeByCarrier(tickets []*model.Ticket) (map[string]int64, error) {
	minimums := make(map[string]int64)
	for i, t := range tickets {
		duration, err := t.FlightDuration()
		if err != nil {
			return nil, fmt.Errorf("ticket %d (%s): %w", i, t.Carrier, err)
		}
		minutes := int64(duration / time.Minute)

		current, ok := minimums[t.Carrier]
		if !ok || minutes < current {
			minimums[t.Carrier] = minutes
		}
	}
	return minimums, nil
}

// SortedFlightTimes orders the per-carrier minimums by carrier code.
func SortedFlightTimes(minimums map[string]int64) []model.CarrierFlightTime {
	result := make([]model.CarrierFlightTime, 0, len(minimums))
	for carrier, minutes := range minimums {
		result = append(result, model.CarrierFlightTime{Carrier: carrier, Minutes: minutes})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Carrier < result[j].Carrier
	})
	return result
}
