package normalize

import (
	"yfmcp/internal/models"
	"yfmcp/internal/provider"
)

// HistoricalPrices maps history bars onto price points, preserving the
// provider's chronological order. The empty-table error policy is decided by
// the caller before this runs.
func HistoricalPrices(ticker, period, interval string, bars []provider.Bar) *models.HistoricalPriceResponse {
	points := make([]models.HistoricalPricePoint, 0, len(bars))
	for _, bar := range bars {
		points = append(points, models.HistoricalPricePoint{
			Date:     bar.Date.Format(rowTimeLayout),
			Open:     floatOrNil(bar.Open),
			High:     floatOrNil(bar.High),
			Low:      floatOrNil(bar.Low),
			Close:    floatOrNil(bar.Close),
			Volume:   intOrNil(bar.Volume),
			AdjClose: floatOrNil(bar.AdjClose),
		})
	}
	return models.NewHistoricalPriceResponse(ticker, period, interval, points)
}
