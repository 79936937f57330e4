package models

// HistoricalPricePoint is a single OHLCV row. Optional fields marshal as null
// when the provider had no value for them.
type HistoricalPricePoint struct {
	Date     string   `json:"date"`
	Open     *float64 `json:"open"`
	High     *float64 `json:"high"`
	Low      *float64 `json:"low"`
	Close    *float64 `json:"close"`
	Volume   *int64   `json:"volume"`
	AdjClose *float64 `json:"adj_close"`
}

// HistoricalPriceResponse wraps the price series for one ticker query.
// DataPoints preserves the provider's chronological (ascending) order.
type HistoricalPriceResponse struct {
	Ticker     string                 `json:"ticker"`
	Period     string                 `json:"period"`
	Interval   string                 `json:"interval"`
	DataPoints []HistoricalPricePoint `json:"data_points"`
	Count      int                    `json:"count"`
}

// NewHistoricalPriceResponse derives Count from the point slice.
func NewHistoricalPriceResponse(ticker, period, interval string, points []HistoricalPricePoint) *HistoricalPriceResponse {
	if points == nil {
		points = []HistoricalPricePoint{}
	}
	return &HistoricalPriceResponse{
		Ticker:     ticker,
		Period:     period,
		Interval:   interval,
		DataPoints: points,
		Count:      len(points),
	}
}
