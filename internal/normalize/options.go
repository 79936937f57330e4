package normalize

import (
	"yfmcp/internal/models"
	"yfmcp/internal/provider"
)

// OptionExpirations passes the provider's valid expiration dates through
// verbatim and counts them.
func OptionExpirations(ticker string, dates []string) *models.OptionExpirationDatesResponse {
	return models.NewOptionExpirationDatesResponse(ticker, dates)
}

// OptionChain maps raw contract rows onto the contract schema. InTheMoney is
// always present, defaulting to false when the upstream had no value. Date
// gating against the valid expiration set happens before this runs.
func OptionChain(ticker, expirationDate, optionType string, rows []provider.OptionRow) *models.OptionChainResponse {
	contracts := make([]models.OptionContract, 0, len(rows))
	for _, row := range rows {
		itm := row.InTheMoney
		contracts = append(contracts, models.OptionContract{
			ContractSymbol:    strOrNil(row.ContractSymbol),
			Strike:            floatOrNil(row.Strike),
			LastPrice:         floatOrNil(row.LastPrice),
			Bid:               floatOrNil(row.Bid),
			Ask:               floatOrNil(row.Ask),
			Volume:            intOrNil(row.Volume),
			OpenInterest:      intOrNil(row.OpenInterest),
			ImpliedVolatility: floatOrNil(row.ImpliedVolatility),
			InTheMoney:        &itm,
		})
	}
	return models.NewOptionChainResponse(ticker, expirationDate, optionType, contracts)
}
