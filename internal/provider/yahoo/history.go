package yahoo

import (
	"context"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"yfmcp/internal/provider"
)

// periodStart maps a range keyword to its window start relative to now.
// The zero time means the full available range.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "1d":
		return now.AddDate(0, 0, -1)
	case "5d":
		return now.AddDate(0, 0, -5)
	case "1mo":
		return now.AddDate(0, -1, 0)
	case "3mo":
		return now.AddDate(0, -3, 0)
	case "6mo":
		return now.AddDate(0, -6, 0)
	case "1y":
		return now.AddDate(-1, 0, 0)
	case "2y":
		return now.AddDate(-2, 0, 0)
	case "5y":
		return now.AddDate(-5, 0, 0)
	case "10y":
		return now.AddDate(-10, 0, 0)
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default: // max
		return time.Time{}
	}
}

// History fetches OHLCV bars through the chart endpoint.
func (c *Client) History(ctx context.Context, ticker, period, interval string) ([]provider.Bar, error) {
	const op = "yahoo.history"

	now := time.Now()
	end := now
	start := periodStart(period, now)
	if start.IsZero() {
		start = time.Date(1962, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	params := &chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.Interval(interval),
	}

	iter := chart.Get(params)

	var bars []provider.Bar
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, provider.Bar{
			Date:     time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:     b.Open.InexactFloat64(),
			High:     b.High.InexactFloat64(),
			Low:      b.Low.InexactFloat64(),
			Close:    b.Close.InexactFloat64(),
			AdjClose: b.AdjClose.InexactFloat64(),
			Volume:   float64(b.Volume),
		})
	}

	if err := iter.Err(); err != nil {
		if strings.Contains(err.Error(), "Not Found") {
			return nil, provider.NewError(provider.KindNotFound, op, err)
		}
		return nil, provider.NewError(provider.KindUnknown, op, err)
	}

	return bars, nil
}
