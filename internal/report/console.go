package report

import (
	"bufio"
	"fmt"
	"io"

	"flight-ticket-stats/internal/model"
)

// WriteConsole renders the two-block text report: per-carrier minimum
// flight time, then price statistics.
func WriteConsole(w io.Writer, r *model.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Minimum flight time per carrier:")
	for _, ft := range r.MinFlightTimes {
		fmt.Fprintf(bw, "Carrier %s: %d min (%d h %d min)\n",
			ft.Carrier, ft.Minutes, ft.Hours(), ft.RemainderMinutes())
	}

	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Price statistics:")
	fmt.Fprintf(bw, "Average price: %.2f\n", r.Price.Average)
	fmt.Fprintf(bw, "Median price: %.2f\n", r.Price.Median)
	fmt.Fprintf(bw, "Difference: %.2f\n", r.Price.Difference)

	return bw.Flush()
}
