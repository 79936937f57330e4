package models

// StockInfoResponse is the flat company snapshot. Symbol is the only mandatory
// field; everything else is optional and marshals as null when missing.
type StockInfoResponse struct {
	// Identification
	Symbol    string  `json:"symbol"`
	ShortName *string `json:"short_name"`
	LongName  *string `json:"long_name"`

	// Price and trading
	CurrentPrice  *float64 `json:"current_price"`
	PreviousClose *float64 `json:"previous_close"`
	OpenPrice     *float64 `json:"open_price"`
	DayLow        *float64 `json:"day_low"`
	DayHigh       *float64 `json:"day_high"`
	Volume        *int64   `json:"volume"`
	AverageVolume *int64   `json:"average_volume"`

	// Market metrics
	MarketCap       *int64   `json:"market_cap"`
	Beta            *float64 `json:"beta"`
	PERatio         *float64 `json:"pe_ratio"`
	EPS             *float64 `json:"eps"`
	BookValue       *float64 `json:"book_value"`
	PriceToBook     *float64 `json:"price_to_book"`
	EnterpriseValue *int64   `json:"enterprise_value"`
	ProfitMargins   *float64 `json:"profit_margins"`

	// Dividends
	DividendRate  *float64 `json:"dividend_rate"`
	DividendYield *float64 `json:"dividend_yield"`

	// 52-week range
	FiftyTwoWeekLow  *float64 `json:"fifty_two_week_low"`
	FiftyTwoWeekHigh *float64 `json:"fifty_two_week_high"`

	// Company profile
	Sector      *string `json:"sector"`
	Industry    *string `json:"industry"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
}
