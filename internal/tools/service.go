// Package tools implements the nine protocol-facing tool operations: ticker
// validation, provider query, normalization and the uniform translation of
// provider failures into the shared error schema.
package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"yfmcp/internal/models"
	"yfmcp/internal/normalize"
	"yfmcp/internal/provider"
)

// Ticker suggestions reused across tools.
const (
	suggestionExchangeSuffix = "Check the symbol or try with exchange suffix (e.g., AAPL.MX for Mexico)"
	suggestionVerifyTicker   = "Verify the ticker symbol is correct"
	suggestionTryPeriod      = "Try a different period or check if trading is active"
	suggestionListDates      = "Use get_option_expiration_dates to see available dates"
)

// defaultMonthsBack is the trailing window for rating changes when the caller
// does not supply one. Documented as 1-60 but not enforced.
const defaultMonthsBack = 12

// Service executes tool operations against a Provider. Every invocation
// increments the shared request counter, validates the ticker, queries the
// provider and normalizes the result; any provider failure is reported as a
// TickerValidationError and nothing is retried.
type Service struct {
	provider provider.Provider
	app      *models.AppContext
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires a tool service to its provider and process context.
func NewService(p provider.Provider, app *models.AppContext, logger *slog.Logger) *Service {
	return &Service{
		provider: p,
		app:      app,
		logger:   logger.With("component", "tools"),
		now:      time.Now,
	}
}

// begin records the invocation and emits the per-tool info notification.
func (s *Service) begin(sink Notifier, tool, msg string) Notifier {
	s.app.IncrementRequests()
	if sink == nil {
		sink = NopNotifier{}
	}
	sink.Info(msg)
	s.logger.Debug("tool_invoked", "tool", tool, "requests_total", s.app.RequestCount())
	return sink
}

// validateTicker runs the identity probe. A lookup failure is an internal
// error; an empty identifier rejects the ticker with the given suggestion
// ("" means no suggestion).
func (s *Service) validateTicker(ctx context.Context, sink Notifier, ticker, suggestion string) *models.TickerValidationError {
	isin, err := s.provider.ISIN(ctx, ticker)
	if err != nil {
		sink.Error(fmt.Sprintf("ticker validation failed for %s: %v", ticker, err))
		return s.internalError(ticker, err)
	}
	if isin == "" {
		sink.Warning(fmt.Sprintf("ticker %s not found", ticker))
		if suggestion == "" {
			return models.NewTickerValidationError(fmt.Sprintf("Ticker '%s' not found", ticker), ticker)
		}
		return models.NewTickerValidationErrorWithSuggestion(
			fmt.Sprintf("Ticker '%s' not found", ticker), ticker, suggestion)
	}
	return nil
}

// internalError is the single catch-all for provider failures. Transient and
// permanent failures collapse to the same shape; nothing is retried.
func (s *Service) internalError(ticker string, err error) *models.TickerValidationError {
	return models.NewTickerValidationError(fmt.Sprintf("Internal error: %v", err), ticker)
}

// GetHistoricalStockPrices returns OHLCV history for the period/interval.
// An empty table is an error here, unlike the stock-actions tool.
func (s *Service) GetHistoricalStockPrices(ctx context.Context, sink Notifier, ticker, period, interval string) (*models.HistoricalPriceResponse, *models.TickerValidationError) {
	sink = s.begin(sink, ToolHistoricalPrices,
		fmt.Sprintf("querying historical data for %s (period=%s, interval=%s)", ticker, period, interval))

	if terr := s.validateTicker(ctx, sink, ticker, suggestionExchangeSuffix); terr != nil {
		return nil, terr
	}

	bars, err := s.provider.History(ctx, ticker, period, interval)
	if err != nil {
		sink.Error(fmt.Sprintf("error getting historical data for %s: %v", ticker, err))
		return nil, s.internalError(ticker, err)
	}
	if len(bars) == 0 {
		return nil, models.NewTickerValidationErrorWithSuggestion(
			fmt.Sprintf("No data available for %s in period %s", ticker, period),
			ticker, suggestionTryPeriod)
	}

	res := normalize.HistoricalPrices(ticker, period, interval, bars)
	sink.Info(fmt.Sprintf("returning %d data points for %s", res.Count, ticker))
	return res, nil
}

// GetStockInfo returns the flat company snapshot.
func (s *Service) GetStockInfo(ctx context.Context, sink Notifier, ticker string) (*models.StockInfoResponse, *models.TickerValidationError) {
	sink = s.begin(sink, ToolStockInfo, fmt.Sprintf("querying stock info for %s", ticker))

	if terr := s.validateTicker(ctx, sink, ticker, suggestionVerifyTicker); terr != nil {
		return nil, terr
	}

	snapshot, err := s.provider.Info(ctx, ticker)
	if err != nil {
		sink.Error(fmt.Sprintf("error getting stock info for %s: %v", ticker, err))
		return nil, s.internalError(ticker, err)
	}

	sink.Info(fmt.Sprintf("retrieved info for %s", ticker))
	return normalize.StockInfo(ticker, snapshot), nil
}

// GetNews returns the ticker's full-story news articles.
func (s *Service) GetNews(ctx context.Context, sink Notifier, ticker string) (*models.NewsListResponse, *models.TickerValidationError) {
	sink = s.begin(sink, ToolNews, fmt.Sprintf("querying news for %s", ticker))

	if terr := s.validateTicker(ctx, sink, ticker, ""); terr != nil {
		return nil, terr
	}

	items, err := s.provider.News(ctx, ticker)
	if err != nil {
		sink.Error(fmt.Sprintf("error getting news for %s: %v", ticker, err))
		return nil, s.internalError(ticker, err)
	}

	res := normalize.News(ticker, items)
	sink.Info(fmt.Sprintf("found %d news articles for %s", res.Count, ticker))
	return res, nil
}

// GetStockActions returns dividend and split history. An empty history is a
// success with Count zero.
func (s *Service) GetStockActions(ctx context.Context, sink Notifier, ticker string) (*models.StockActionsResponse, *models.TickerValidationError) {
	sink = s.begin(sink, ToolStockActions, fmt.Sprintf("querying stock actions for %s", ticker))

	if terr := s.validateTicker(ctx, sink, ticker, ""); terr != nil {
		return nil, terr
	}

	actions, err := s.provider.Actions(ctx, ticker)
	if err != nil {
		sink.Error(fmt.Sprintf("error getting stock actions for %s: %v", ticker, err))
		return nil, s.internalError(ticker, err)
	}

	res := normalize.StockActions(ticker, actions)
	sink.Info(fmt.Sprintf("found %d stock actions for %s", res.Count, ticker))
	return res, nil
}

// GetFinancialStatement returns one of the six statement tables. An empty
// table is a success with empty data and periods.
func (s *Service) GetFinancialStatement(ctx context.Context, sink Notifier, ticker string, statementType models.FinancialType) (*models.FinancialStatementResponse, *models.TickerValidationError) {
	sink = s.begin(sink, ToolFinancialStatement, fmt.Sprintf("querying %s for %s", statementType, ticker))

	if terr := s.validateTicker(ctx, sink, ticker, ""); terr != nil {
		return nil, terr
	}

	// The tool schema constrains the enum; re-checked for direct callers.
	if !statementType.Valid() {
		return nil, models.NewTickerValidationError(
			fmt.Sprintf("Invalid financial type: %s", statementType), ticker)
	}

	table, err := s.provider.Statement(ctx, ticker, statementType)
	if err != nil {
		sink.Error(fmt.Sprintf("error getting financial statement for %s: %v", ticker, err))
		return nil, s.internalError(ticker, err)
	}

	sink.Info(fmt.Sprintf("retrieved %s for %s", statementType, ticker))
	return normalize.FinancialStatement(ticker, statementType, table), nil
}

// GetHolderInfo returns ownership data; the response shape depends on the
// holder type. Empty data is a success with an empty mapping or sequence.
func (s *Service) GetHolderInfo(ctx context.Context, sink Notifier, ticker string, holderType models.HolderType) (*models.HolderInfoResponse, *models.TickerValidationError) {
	sink = s.begin(sink, ToolHolderInfo, fmt.Sprintf("querying %s for %s", holderType, ticker))

	if terr := s.validateTicker(ctx, sink, ticker, ""); terr != nil {
		return nil, terr
	}

	if !holderType.Valid() {
		return nil, models.NewTickerValidationError(
			fmt.Sprintf("Invalid holder type: %s", holderType), ticker)
	}

	if holderType == models.HolderMajorHolders {
		summary, err := s.provider.MajorHolders(ctx, ticker)
		if err != nil {
			sink.Error(fmt.Sprintf("error getting holder info for %s: %v", ticker, err))
			return nil, s.internalError(ticker, err)
		}
		sink.Info(fmt.Sprintf("retrieved %s for %s", holderType, ticker))
		return normalize.MajorHolders(ticker, summary), nil
	}

	records, err := s.provider.HolderRecords(ctx, ticker, holderType)
	if err != nil {
		sink.Error(fmt.Sprintf("error getting holder info for %s: %v", ticker, err))
		return nil, s.internalError(ticker, err)
	}
	sink.Info(fmt.Sprintf("retrieved %s for %s", holderType, ticker))
	return normalize.HolderRecords(ticker, holderType, records), nil
}

// GetOptionExpirationDates lists the valid option expiration dates.
func (s *Service) GetOptionExpirationDates(ctx context.Context, sink Notifier, ticker string) (*models.OptionExpirationDatesResponse, *models.TickerValidationError) {
	sink = s.begin(sink, ToolOptionExpirationDates, fmt.Sprintf("querying option expiration dates for %s", ticker))

	if terr := s.validateTicker(ctx, sink, ticker, ""); terr != nil {
		return nil, terr
	}

	dates, err := s.provider.OptionExpirations(ctx, ticker)
	if err != nil {
		sink.Error(fmt.Sprintf("error getting option dates for %s: %v", ticker, err))
		return nil, s.internalError(ticker, err)
	}

	sink.Info(fmt.Sprintf("found %d expiration dates for %s", len(dates), ticker))
	return normalize.OptionExpirations(ticker, dates), nil
}

// GetOptionChain returns one side of the chain for a specific expiration.
// The expiration must appear in the ticker's valid set regardless of whether
// the provider would have data for it.
func (s *Service) GetOptionChain(ctx context.Context, sink Notifier, ticker, expirationDate, optionType string) (*models.OptionChainResponse, *models.TickerValidationError) {
	sink = s.begin(sink, ToolOptionChain,
		fmt.Sprintf("querying %s option chain for %s (%s)", optionType, ticker, expirationDate))

	if terr := s.validateTicker(ctx, sink, ticker, ""); terr != nil {
		return nil, terr
	}

	if !models.ValidOptionType(optionType) {
		return nil, models.NewTickerValidationError(
			fmt.Sprintf("Invalid option type: %s", optionType), ticker)
	}

	valid, err := s.provider.OptionExpirations(ctx, ticker)
	if err != nil {
		sink.Error(fmt.Sprintf("error getting option chain for %s: %v", ticker, err))
		return nil, s.internalError(ticker, err)
	}
	if !containsString(valid, expirationDate) {
		return nil, models.NewTickerValidationErrorWithSuggestion(
			fmt.Sprintf("No options available for date %s", expirationDate),
			ticker, suggestionListDates)
	}

	chain, err := s.provider.OptionChain(ctx, ticker, expirationDate)
	if err != nil {
		sink.Error(fmt.Sprintf("error getting option chain for %s: %v", ticker, err))
		return nil, s.internalError(ticker, err)
	}

	rows := chain.Calls
	if optionType == models.OptionTypePuts {
		rows = chain.Puts
	}

	res := normalize.OptionChain(ticker, expirationDate, optionType, rows)
	sink.Info(fmt.Sprintf("found %d %s contracts for %s", res.Count, optionType, ticker))
	return res, nil
}

// GetRecommendations returns current ratings or the deduplicated rating-change
// history for the trailing monthsBack window. The value is honored as given;
// callers apply the default of 12 when the argument is omitted.
func (s *Service) GetRecommendations(ctx context.Context, sink Notifier, ticker string, recommendationType models.RecommendationType, monthsBack int) (*models.RecommendationsResponse, *models.TickerValidationError) {
	sink = s.begin(sink, ToolRecommendations, fmt.Sprintf("querying %s for %s", recommendationType, ticker))

	if terr := s.validateTicker(ctx, sink, ticker, ""); terr != nil {
		return nil, terr
	}

	switch recommendationType {
	case models.RecommendationCurrent:
		rows, err := s.provider.Recommendations(ctx, ticker)
		if err != nil {
			sink.Error(fmt.Sprintf("error getting recommendations for %s: %v", ticker, err))
			return nil, s.internalError(ticker, err)
		}
		res := normalize.Recommendations(ticker, rows)
		sink.Info(fmt.Sprintf("found %d recommendations for %s", res.Count, ticker))
		return res, nil

	case models.RecommendationUpgradesDowngrades:
		rows, err := s.provider.UpgradesDowngrades(ctx, ticker)
		if err != nil {
			sink.Error(fmt.Sprintf("error getting recommendations for %s: %v", ticker, err))
			return nil, s.internalError(ticker, err)
		}
		res := normalize.RatingChanges(ticker, rows, monthsBack, s.now())
		sink.Info(fmt.Sprintf("found %d recommendations for %s", res.Count, ticker))
		return res, nil
	}

	return nil, models.NewTickerValidationError(
		fmt.Sprintf("Invalid recommendation type: %s", recommendationType), ticker)
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
