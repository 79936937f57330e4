package models

// StockActionPoint is a single dividend or split event.
type StockActionPoint struct {
	Date        string   `json:"date"`
	Dividends   *float64 `json:"dividends"`
	StockSplits *float64 `json:"stock_splits"`
}

// StockActionsResponse wraps the action history for one ticker. An empty
// history is a valid success response with Count zero.
type StockActionsResponse struct {
	Ticker  string             `json:"ticker"`
	Actions []StockActionPoint `json:"actions"`
	Count   int                `json:"count"`
}

// NewStockActionsResponse derives Count from the action slice.
func NewStockActionsResponse(ticker string, actions []StockActionPoint) *StockActionsResponse {
	if actions == nil {
		actions = []StockActionPoint{}
	}
	return &StockActionsResponse{Ticker: ticker, Actions: actions, Count: len(actions)}
}
