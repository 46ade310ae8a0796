package stats

import "flight-ticket-stats/internal/model"

// FilterByRoute keeps the tickets whose origin and destination equal the
// given codes exactly, in input order.
func FilterByRoute(tickets []*model.Ticket, origin, destination string) []*model.Ticket {
	filtered := make([]*model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.Origin == origin && t.Destination == destination {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
