package normalize

import (
	"yfmcp/internal/models"
	"yfmcp/internal/provider"
)

// StockActions maps dividend/split rows onto action points. An empty input
// yields a success response with Count zero, unlike the historical-price
// tool's empty-table error.
func StockActions(ticker string, actions []provider.Action) *models.StockActionsResponse {
	points := make([]models.StockActionPoint, 0, len(actions))
	for _, act := range actions {
		points = append(points, models.StockActionPoint{
			Date:        act.Date.Format(rowTimeLayout),
			Dividends:   floatOrNil(act.Dividends),
			StockSplits: floatOrNil(act.StockSplits),
		})
	}
	return models.NewStockActionsResponse(ticker, points)
}
