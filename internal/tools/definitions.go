package tools

import "yfmcp/internal/models"

// Tool names exposed on the protocol surface.
const (
	ToolHistoricalPrices      = "get_historical_stock_prices"
	ToolStockInfo             = "get_stock_info"
	ToolNews                  = "get_yahoo_finance_news"
	ToolStockActions          = "get_stock_actions"
	ToolFinancialStatement    = "get_financial_statement"
	ToolHolderInfo            = "get_holder_info"
	ToolOptionExpirationDates = "get_option_expiration_dates"
	ToolOptionChain           = "get_option_chain"
	ToolRecommendations       = "get_recommendations"
)

// Definition describes one tool on the protocol surface: name, description
// and the Draft-7 JSON Schema its arguments are validated against.
type Definition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// Valid history periods and intervals, mirrored in the tool schema.
var (
	historyPeriods   = []any{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}
	historyIntervals = []any{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}
)

func tickerProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "Ticker symbol (e.g., 'AAPL', 'MSFT', '^GSPC', 'BTC-USD')",
		"minLength":   1,
	}
}

func enumValues[T ~string](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Definitions returns the nine tool definitions in their protocol order.
func Definitions() []Definition {
	return []Definition{
		{
			Name:        ToolHistoricalPrices,
			Description: "Get historical OHLCV (Open, High, Low, Close, Volume) stock price data for analysis and charting",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": tickerProperty(),
					"period": map[string]any{
						"type":        "string",
						"description": "Time period to retrieve: '1d'=1 day, '1mo'=1 month, '1y'=1 year, 'max'=all available data",
						"enum":        historyPeriods,
						"default":     "1mo",
					},
					"interval": map[string]any{
						"type":        "string",
						"description": "Data granularity: '1m'=1 minute, '1h'=1 hour, '1d'=1 day, '1wk'=1 week, '1mo'=1 month",
						"enum":        historyIntervals,
						"default":     "1d",
					},
				},
				"required": []any{"ticker"},
			},
		},
		{
			Name:        ToolStockInfo,
			Description: "Get comprehensive stock information including real-time price, market metrics, financial ratios, and company details",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": tickerProperty(),
				},
				"required": []any{"ticker"},
			},
		},
		{
			Name:        ToolNews,
			Description: "Get latest news articles and headlines related to a stock from Yahoo Finance",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": tickerProperty(),
				},
				"required": []any{"ticker"},
			},
		},
		{
			Name:        ToolStockActions,
			Description: "Get historical dividend payments and stock split events for a company",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": tickerProperty(),
				},
				"required": []any{"ticker"},
			},
		},
		{
			Name:        ToolFinancialStatement,
			Description: "Get official financial statements including income statement, balance sheet, and cash flow (annual or quarterly)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": tickerProperty(),
					"financial_type": map[string]any{
						"type":        "string",
						"description": "Type of financial statement: annual tables or quarterly versions with 'quarterly_' prefix",
						"enum":        enumValues(models.FinancialTypes()),
					},
				},
				"required": []any{"ticker", "financial_type"},
			},
		},
		{
			Name:        ToolHolderInfo,
			Description: "Get stock ownership data including institutional holders, mutual funds, insiders, and insider transactions",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": tickerProperty(),
					"holder_type": map[string]any{
						"type":        "string",
						"description": "Type of ownership data to retrieve",
						"enum":        enumValues(models.HolderTypes()),
					},
				},
				"required": []any{"ticker", "holder_type"},
			},
		},
		{
			Name:        ToolOptionExpirationDates,
			Description: "Get all available option contract expiration dates for a stock",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": tickerProperty(),
				},
				"required": []any{"ticker"},
			},
		},
		{
			Name:        ToolOptionChain,
			Description: "Get detailed options chain data (calls or puts) for a specific expiration date",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": tickerProperty(),
					"expiration_date": map[string]any{
						"type":        "string",
						"description": "Option expiration date in YYYY-MM-DD format (use get_option_expiration_dates to find valid dates)",
						"pattern":     `^\d{4}-\d{2}-\d{2}$`,
					},
					"option_type": map[string]any{
						"type":        "string",
						"description": "Type of options contracts: 'calls' (right to buy) or 'puts' (right to sell)",
						"enum":        []any{models.OptionTypeCalls, models.OptionTypePuts},
					},
				},
				"required": []any{"ticker", "expiration_date", "option_type"},
			},
		},
		{
			Name:        ToolRecommendations,
			Description: "Get analyst recommendations, ratings, and upgrade/downgrade history from Wall Street firms",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ticker": tickerProperty(),
					"recommendation_type": map[string]any{
						"type":        "string",
						"description": "'recommendations' for current ratings or 'upgrades_downgrades' for rating changes",
						"enum":        enumValues(models.RecommendationTypes()),
					},
					"months_back": map[string]any{
						"type":        "integer",
						"description": "Number of months of history to retrieve for upgrades/downgrades (1-60)",
						"default":     12,
					},
				},
				"required": []any{"ticker", "recommendation_type"},
			},
		},
	}
}
