package models

// Option chain sides.
const (
	OptionTypeCalls = "calls"
	OptionTypePuts  = "puts"
)

// ValidOptionType reports whether s names a chain side.
func ValidOptionType(s string) bool {
	return s == OptionTypeCalls || s == OptionTypePuts
}

// OptionExpirationDatesResponse lists the valid expiration dates for a ticker,
// verbatim from the provider.
type OptionExpirationDatesResponse struct {
	Ticker          string   `json:"ticker"`
	ExpirationDates []string `json:"expiration_dates"`
	Count           int      `json:"count"`
}

// NewOptionExpirationDatesResponse derives Count from the date slice.
func NewOptionExpirationDatesResponse(ticker string, dates []string) *OptionExpirationDatesResponse {
	if dates == nil {
		dates = []string{}
	}
	return &OptionExpirationDatesResponse{Ticker: ticker, ExpirationDates: dates, Count: len(dates)}
}

// OptionContract is a single contract row of an option chain.
type OptionContract struct {
	ContractSymbol    *string  `json:"contract_symbol"`
	Strike            *float64 `json:"strike"`
	LastPrice         *float64 `json:"last_price"`
	Bid               *float64 `json:"bid"`
	Ask               *float64 `json:"ask"`
	Volume            *int64   `json:"volume"`
	OpenInterest      *int64   `json:"open_interest"`
	ImpliedVolatility *float64 `json:"implied_volatility"`
	InTheMoney        *bool    `json:"in_the_money"`
}

// OptionChainResponse wraps one side of the chain for a single expiration.
type OptionChainResponse struct {
	Ticker         string           `json:"ticker"`
	ExpirationDate string           `json:"expiration_date"`
	OptionType     string           `json:"option_type"`
	Contracts      []OptionContract `json:"contracts"`
	Count          int              `json:"count"`
}

// NewOptionChainResponse derives Count from the contract slice.
func NewOptionChainResponse(ticker, expirationDate, optionType string, contracts []OptionContract) *OptionChainResponse {
	if contracts == nil {
		contracts = []OptionContract{}
	}
	return &OptionChainResponse{
		Ticker:         ticker,
		ExpirationDate: expirationDate,
		OptionType:     optionType,
		Contracts:      contracts,
		Count:          len(contracts),
	}
}
