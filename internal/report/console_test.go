package report_test

import (
	"bytes"
	"errors"
	"testing"

	"flight-ticket-stats/internal/model"
	"flight-ticket-stats/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteConsole(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := &model.Report{
			MinFlightTimes: []model.CarrierFlightTime{
				{Carrier: "S7", Minutes: 390},
				{Carrier: "SU", Minutes: 360},
			},
			Price: model.PriceStats{Average: 12683.333333, Median: 12650, Difference: 33.333333},
		}
		var buf bytes.Buffer

		err := report.WriteConsole(&buf, r)

		require.NoError(t, err)
		assert.Equal(t, "Minimum flight time per carrier:\n"+
			"Carrier S7: 390 min (6 h 30 min)\n"+
			"Carrier SU: 360 min (6 h 0 min)\n"+
			"\n"+
			"Price statistics:\n"+
			"Average price: 12683.33\n"+
			"Median price: 12650.00\n"+
			"Difference: 33.33\n", buf.String())
	})

	t.Run("Success - empty report", func(t *testing.T) {
		var buf bytes.Buffer

		err := report.WriteConsole(&buf, &model.Report{})

		require.NoError(t, err)
		assert.Equal(t, "Minimum flight time per carrier:\n"+
			"\n"+
			"Price statistics:\n"+
			"Average price: 0.00\n"+
			"Median price: 0.00\n"+
			"Difference: 0.00\n", buf.String())
	})

	t.Run("Failed - writer error", func(t *testing.T) {
		err := report.WriteConsole(failingWriter{}, &model.Report{})
		assert.Error(t, err)
	})
}
