package stats

import (
	"sort"

	"flight-ticket-stats/internal/model"
)

func Prices(tickets []*model.Ticket) []int {
	prices := make([]int, len(tickets))
	for i, t := range tickets {
		prices[i] = t.Price
	}
	return prices
}

// Mean returns 0 for an empty slice.
func Mean(prices []int) float64 {
	if len(prices) == 0 {
		return 0
	}
	// float64 accumulation cannot wrap around on large prices
	var sum float64
	for _, p := range prices {
		sum += float64(p)
	}
	return sum / float64(len(prices))
}

// Median sorts a copy of prices. An even count averages the two middle
// values and an empty slice yields 0.
func Median(prices []int) float64 {
	n := len(prices)
	if n == 0 {
		return 0
	}

	sorted := make([]int, n)
	copy(sorted, prices)
	sort.Ints(sorted)

	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

func PriceStatistics(tickets []*model.Ticket) model.PriceStats {
	prices := Prices(tickets)
	average := Mean(prices)
	median := Median(prices)
	return model.PriceStats{
		Average:    average,
		Median:     median,
		Difference: average - median,
	}
}
