package yahoo

import (
	"context"

	"yfmcp/internal/provider"
)

// infoModules are the quoteSummary modules merged into the company snapshot.
// Order matters: later modules fill gaps but never clobber earlier values.
var infoModules = []string{
	"price",
	"summaryDetail",
	"financialData",
	"defaultKeyStatistics",
	"assetProfile",
}

// Info assembles the flat company snapshot from quoteSummary modules,
// collapsing Yahoo's {raw, fmt} envelopes to their raw values.
func (c *Client) Info(ctx context.Context, ticker string) (provider.InfoSnapshot, error) {
	const op = "yahoo.info"

	result, err := c.quoteSummary(ctx, op, ticker, "price,summaryDetail,financialData,defaultKeyStatistics,assetProfile")
	if err != nil {
		return nil, err
	}

	snapshot := provider.InfoSnapshot{}
	for _, name := range infoModules {
		var section map[string]any
		ok, err := module(result, name, &section)
		if err != nil {
			return nil, provider.NewError(provider.KindMalformed, op, err)
		}
		if !ok {
			continue
		}
		for key, value := range section {
			flat := unwrapAny(value)
			if flat == nil {
				continue
			}
			if _, exists := snapshot[key]; exists {
				continue
			}
			snapshot[key] = flat
		}
	}

	return snapshot, nil
}
