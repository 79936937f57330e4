package normalize

import (
	"yfmcp/internal/models"
	"yfmcp/internal/provider"
)

// StockInfo renames the flat snapshot fields into the response schema. No
// filtering, no list: one record per call.
func StockInfo(ticker string, snapshot provider.InfoSnapshot) *models.StockInfoResponse {
	return &models.StockInfoResponse{
		Symbol:    ticker,
		ShortName: infoString(snapshot, "shortName"),
		LongName:  infoString(snapshot, "longName"),

		CurrentPrice:  infoFloat(snapshot, "currentPrice"),
		PreviousClose: infoFloat(snapshot, "previousClose"),
		OpenPrice:     infoFloat(snapshot, "open"),
		DayLow:        infoFloat(snapshot, "dayLow"),
		DayHigh:       infoFloat(snapshot, "dayHigh"),
		Volume:        infoInt(snapshot, "volume"),
		AverageVolume: infoInt(snapshot, "averageVolume"),

		MarketCap:       infoInt(snapshot, "marketCap"),
		Beta:            infoFloat(snapshot, "beta"),
		PERatio:         infoFloat(snapshot, "trailingPE"),
		EPS:             infoFloat(snapshot, "trailingEps"),
		BookValue:       infoFloat(snapshot, "bookValue"),
		PriceToBook:     infoFloat(snapshot, "priceToBook"),
		EnterpriseValue: infoInt(snapshot, "enterpriseValue"),
		ProfitMargins:   infoFloat(snapshot, "profitMargins"),

		DividendRate:  infoFloat(snapshot, "dividendRate"),
		DividendYield: infoFloat(snapshot, "dividendYield"),

		FiftyTwoWeekLow:  infoFloat(snapshot, "fiftyTwoWeekLow"),
		FiftyTwoWeekHigh: infoFloat(snapshot, "fiftyTwoWeekHigh"),

		Sector:      infoString(snapshot, "sector"),
		Industry:    infoString(snapshot, "industry"),
		Website:     infoString(snapshot, "website"),
		Description: infoString(snapshot, "longBusinessSummary"),
	}
}
