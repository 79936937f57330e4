package yahoo

import (
	"context"
	"math"
	"sort"
	"time"

	"yfmcp/internal/provider"
)

// chartEventsResponse is the slice of /v8/finance/chart used for corporate
// actions. Price arrays are ignored.
type chartEventsResponse struct {
	Chart struct {
		Result []struct {
			Events struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
				Splits map[string]struct {
					Date        int64   `json:"date"`
					Numerator   float64 `json:"numerator"`
					Denominator float64 `json:"denominator"`
				} `json:"splits"`
			} `json:"events"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Actions fetches the full dividend and split history. Rows sharing a date
// are merged; a row's other column stays NaN.
func (c *Client) Actions(ctx context.Context, ticker string) ([]provider.Action, error) {
	const op = "yahoo.actions"

	var cr chartEventsResponse
	err := c.get(ctx, op, "/v8/finance/chart/"+ticker, map[string]string{
		"range":    "max",
		"interval": "1d",
		"events":   "div,splits",
	}, &cr)
	if err != nil {
		return nil, err
	}

	if cr.Chart.Error != nil {
		if cr.Chart.Error.Code == "Not Found" {
			return nil, provider.Errorf(provider.KindNotFound, op, "ticker %s: %s", ticker, cr.Chart.Error.Description)
		}
		return nil, provider.Errorf(provider.KindUnknown, op, "ticker %s: %s", ticker, cr.Chart.Error.Description)
	}
	if len(cr.Chart.Result) == 0 {
		return nil, nil
	}

	events := cr.Chart.Result[0].Events
	byDate := make(map[int64]*provider.Action)

	rowFor := func(ts int64) *provider.Action {
		if act, ok := byDate[ts]; ok {
			return act
		}
		act := &provider.Action{
			Date:        time.Unix(ts, 0).UTC(),
			Dividends:   math.NaN(),
			StockSplits: math.NaN(),
		}
		byDate[ts] = act
		return act
	}

	for _, div := range events.Dividends {
		rowFor(div.Date).Dividends = div.Amount
	}
	for _, split := range events.Splits {
		ratio := math.NaN()
		if split.Denominator != 0 {
			ratio = split.Numerator / split.Denominator
		}
		rowFor(split.Date).StockSplits = ratio
	}

	actions := make([]provider.Action, 0, len(byDate))
	for _, act := range byDate {
		actions = append(actions, *act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i].Date.Before(actions[j].Date) })

	return actions, nil
}
