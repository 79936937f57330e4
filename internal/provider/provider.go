// Package provider defines the boundary to the upstream financial-data
// source. Implementations return loosely typed raw shapes; all reshaping into
// response schemas happens in the normalize package.
package provider

import (
	"context"
	"time"

	"yfmcp/internal/models"
)

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

// Bar is one OHLCV history row. Numeric fields are NaN when the upstream had
// no value for them.
type Bar struct {
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   float64
}

// InfoSnapshot is the flat company snapshot keyed by the upstream's camelCase
// field names (shortName, marketCap, trailingPE, ...).
type InfoSnapshot map[string]any

// NewsItem mirrors the nested upstream news shape before filtering.
type NewsItem struct {
	ContentType    string
	Title          string
	Provider       *NewsProvider
	CanonicalURL   *NewsURL
	PubDate        string
	Thumbnail      *Thumbnail
	RelatedTickers []string
}

// NewsProvider names the publisher of a news item.
type NewsProvider struct {
	DisplayName string
}

// NewsURL wraps a canonical article link.
type NewsURL struct {
	URL string
}

// Thumbnail carries the available image resolutions for a news item.
type Thumbnail struct {
	Resolutions []ThumbnailResolution
}

// ThumbnailResolution is one rendition of a thumbnail image.
type ThumbnailResolution struct {
	URL    string
	Width  int
	Height int
}

// Action is one dividend/split row. Dividends and StockSplits are NaN when
// the row carries no value for them.
type Action struct {
	Date        time.Time
	Dividends   float64
	StockSplits float64
}

// StatementColumn identifies one reporting-period column. Label is used when
// the column is not timestamp-keyed.
type StatementColumn struct {
	Date  time.Time
	Label string
}

// StatementRow is one line item across all columns. Values align with the
// table's Columns and hold float64, string or nil.
type StatementRow struct {
	LineItem string
	Values   []any
}

// StatementTable is a column-major financial statement, columns ordered most
// recent first per upstream convention.
type StatementTable struct {
	Columns []StatementColumn
	Rows    []StatementRow
}

// Empty reports whether the table has no columns.
func (t *StatementTable) Empty() bool {
	return t == nil || len(t.Columns) == 0
}

// OptionRow is one raw contract row. Numeric fields are NaN when absent.
type OptionRow struct {
	ContractSymbol    string
	Strike            float64
	LastPrice         float64
	Bid               float64
	Ask               float64
	Volume            float64
	OpenInterest      float64
	ImpliedVolatility float64
	InTheMoney        bool
}

// OptionChainTables holds both sides of the chain for one expiration date.
type OptionChainTables struct {
	Calls []OptionRow
	Puts  []OptionRow
}

// RecommendationRow is one row of the current-ratings table.
type RecommendationRow struct {
	Date      time.Time
	Firm      string
	ToGrade   string
	FromGrade string
	Action    string
}

// GradeChange is one row of the upgrade/downgrade history.
type GradeChange struct {
	Date      time.Time
	Firm      string
	ToGrade   string
	FromGrade string
	Action    string
}

// Provider answers ticker-scoped queries against the upstream data source.
// Any method may fail with a *provider.Error; the dispatch layer collapses
// every failure kind into a single error schema and retries nothing.
type Provider interface {
	// ISIN probes the upstream identity lookup for the ticker. An empty
	// identifier with a nil error means the ticker is unresolvable.
	ISIN(ctx context.Context, ticker string) (string, error)

	History(ctx context.Context, ticker, period, interval string) ([]Bar, error)
	Info(ctx context.Context, ticker string) (InfoSnapshot, error)
	News(ctx context.Context, ticker string) ([]NewsItem, error)
	Actions(ctx context.Context, ticker string) ([]Action, error)
	Statement(ctx context.Context, ticker string, statementType models.FinancialType) (*StatementTable, error)
	MajorHolders(ctx context.Context, ticker string) (map[string]any, error)
	HolderRecords(ctx context.Context, ticker string, holderType models.HolderType) ([]map[string]any, error)
	OptionExpirations(ctx context.Context, ticker string) ([]string, error)
	OptionChain(ctx context.Context, ticker, expirationDate string) (*OptionChainTables, error)
	Recommendations(ctx context.Context, ticker string) ([]RecommendationRow, error)
	UpgradesDowngrades(ctx context.Context, ticker string) ([]GradeChange, error)
}
