package yahoo

import (
	"context"
	"time"

	"yfmcp/internal/provider"
)

// optionContract is one raw contract row from the options endpoint.
type optionContract struct {
	ContractSymbol    string   `json:"contractSymbol"`
	Strike            *float64 `json:"strike"`
	LastPrice         *float64 `json:"lastPrice"`
	Bid               *float64 `json:"bid"`
	Ask               *float64 `json:"ask"`
	Volume            *float64 `json:"volume"`
	OpenInterest      *float64 `json:"openInterest"`
	ImpliedVolatility *float64 `json:"impliedVolatility"`
	InTheMoney        bool     `json:"inTheMoney"`
}

// optionsResponse is the envelope of /v7/finance/options.
type optionsResponse struct {
	OptionChain struct {
		Result []struct {
			ExpirationDates []int64 `json:"expirationDates"`
			Options         []struct {
				ExpirationDate int64            `json:"expirationDate"`
				Calls          []optionContract `json:"calls"`
				Puts           []optionContract `json:"puts"`
			} `json:"options"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"optionChain"`
}

func (c *Client) options(ctx context.Context, op, ticker string, query map[string]string) (*optionsResponse, error) {
	var or optionsResponse
	if err := c.get(ctx, op, "/v7/finance/options/"+ticker, query, &or); err != nil {
		return nil, err
	}
	if or.OptionChain.Error != nil {
		if or.OptionChain.Error.Code == "Not Found" {
			return nil, provider.Errorf(provider.KindNotFound, op, "ticker %s: %s", ticker, or.OptionChain.Error.Description)
		}
		return nil, provider.Errorf(provider.KindUnknown, op, "ticker %s: %s", ticker, or.OptionChain.Error.Description)
	}
	return &or, nil
}

// OptionExpirations lists the valid expiration dates as YYYY-MM-DD strings.
func (c *Client) OptionExpirations(ctx context.Context, ticker string) ([]string, error) {
	const op = "yahoo.option_expirations"

	or, err := c.options(ctx, op, ticker, nil)
	if err != nil {
		return nil, err
	}
	if len(or.OptionChain.Result) == 0 {
		return nil, nil
	}

	epochs := or.OptionChain.Result[0].ExpirationDates
	dates := make([]string, 0, len(epochs))
	for _, epoch := range epochs {
		dates = append(dates, time.Unix(epoch, 0).UTC().Format("2006-01-02"))
	}
	return dates, nil
}

// OptionChain fetches both sides of the chain for one expiration date.
// The date must come from OptionExpirations; gating happens in the caller.
func (c *Client) OptionChain(ctx context.Context, ticker, expirationDate string) (*provider.OptionChainTables, error) {
	const op = "yahoo.option_chain"

	expiry, err := time.Parse("2006-01-02", expirationDate)
	if err != nil {
		return nil, provider.NewError(provider.KindMalformed, op, err)
	}

	or, err := c.options(ctx, op, ticker, map[string]string{
		"date": formatEpoch(expiry.Unix()),
	})
	if err != nil {
		return nil, err
	}
	if len(or.OptionChain.Result) == 0 {
		return &provider.OptionChainTables{}, nil
	}

	tables := &provider.OptionChainTables{}
	for _, opt := range or.OptionChain.Result[0].Options {
		tables.Calls = append(tables.Calls, mapContracts(opt.Calls)...)
		tables.Puts = append(tables.Puts, mapContracts(opt.Puts)...)
	}
	return tables, nil
}

func mapContracts(contracts []optionContract) []provider.OptionRow {
	rows := make([]provider.OptionRow, 0, len(contracts))
	for _, oc := range contracts {
		rows = append(rows, provider.OptionRow{
			ContractSymbol:    oc.ContractSymbol,
			Strike:            floatOrNaN(oc.Strike),
			LastPrice:         floatOrNaN(oc.LastPrice),
			Bid:               floatOrNaN(oc.Bid),
			Ask:               floatOrNaN(oc.Ask),
			Volume:            floatOrNaN(oc.Volume),
			OpenInterest:      floatOrNaN(oc.OpenInterest),
			ImpliedVolatility: floatOrNaN(oc.ImpliedVolatility),
			InTheMoney:        oc.InTheMoney,
		})
	}
	return rows
}
