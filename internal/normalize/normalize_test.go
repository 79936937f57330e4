package normalize_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"yfmcp/internal/models"
	"yfmcp/internal/normalize"
	"yfmcp/internal/provider"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHistoricalPricesMissingPolicy(t *testing.T) {
	t.Parallel()

	bars := []provider.Bar{
		{
			Date:     day(2024, time.May, 1),
			Open:     104.35,
			High:     math.NaN(),
			Low:      103.1,
			Close:    0, // a real zero survives
			AdjClose: 104.0,
			Volume:   math.NaN(),
		},
	}

	res := normalize.HistoricalPrices("AAPL", "5d", "1d", bars)
	require.Equal(t, 1, res.Count)

	point := res.DataPoints[0]
	require.NotNil(t, point.Open)
	require.Equal(t, 104.35, *point.Open)
	require.Nil(t, point.High)
	require.Nil(t, point.Volume)
	require.NotNil(t, point.Close)
	require.Equal(t, 0.0, *point.Close)
}

func TestHistoricalPricesPreservesOrder(t *testing.T) {
	t.Parallel()

	bars := []provider.Bar{
		{Date: day(2024, time.May, 1), Open: 1, High: 1, Low: 1, Close: 1, AdjClose: 1, Volume: 10},
		{Date: day(2024, time.May, 2), Open: 2, High: 2, Low: 2, Close: 2, AdjClose: 2, Volume: 20},
		{Date: day(2024, time.May, 3), Open: 3, High: 3, Low: 3, Close: 3, AdjClose: 3, Volume: 30},
	}

	res := normalize.HistoricalPrices("AAPL", "5d", "1d", bars)
	require.Equal(t, 3, res.Count)
	for i, point := range res.DataPoints {
		require.Equal(t, float64(i+1), *point.Open)
	}
	require.Equal(t, "2024-05-01 00:00:00+00:00", res.DataPoints[0].Date)
}

func TestNewsFiltersNonStories(t *testing.T) {
	t.Parallel()

	items := []provider.NewsItem{
		{ContentType: "STORY", Title: "Apple announces results"},
		{ContentType: "VIDEO", Title: "Watch the keynote"},
		{ContentType: "STORY", Title: "Supply chain update"},
	}

	res := normalize.News("AAPL", items)
	require.Equal(t, 2, res.Count)
	require.Equal(t, "Apple announces results", res.Articles[0].Title)
	require.Equal(t, "Supply chain update", res.Articles[1].Title)
}

func TestNewsNestedFields(t *testing.T) {
	t.Parallel()

	items := []provider.NewsItem{
		{
			ContentType:  "STORY",
			Title:        "Apple announces results",
			Provider:     &provider.NewsProvider{DisplayName: "Reuters"},
			CanonicalURL: &provider.NewsURL{URL: "https://example.com/a"},
			PubDate:      "2024-05-01T12:00:00Z",
			Thumbnail: &provider.Thumbnail{Resolutions: []provider.ThumbnailResolution{
				{URL: "https://img.example.com/big.png", Width: 1200, Height: 800},
				{URL: "https://img.example.com/small.png", Width: 140, Height: 140},
			}},
			RelatedTickers: []string{"AAPL"},
		},
		{
			// Bare story with every nested pointer absent.
			ContentType: "STORY",
			Title:       "Second story",
		},
	}

	res := normalize.News("AAPL", items)
	require.Equal(t, 2, res.Count)

	first := res.Articles[0]
	require.Equal(t, "Reuters", *first.Publisher)
	require.Equal(t, "https://example.com/a", *first.Link)
	require.Equal(t, "https://img.example.com/big.png", *first.Thumbnail)

	second := res.Articles[1]
	require.Nil(t, second.Publisher)
	require.Nil(t, second.Link)
	require.Nil(t, second.Thumbnail)
}

func TestStockActionsEmptyIsSuccess(t *testing.T) {
	t.Parallel()

	res := normalize.StockActions("AAPL", nil)
	require.Equal(t, 0, res.Count)
	require.NotNil(t, res.Actions)
}

func TestStockActionsRowColumns(t *testing.T) {
	t.Parallel()

	actions := []provider.Action{
		{Date: day(2024, time.February, 9), Dividends: 0.24, StockSplits: math.NaN()},
		{Date: day(2020, time.August, 31), Dividends: math.NaN(), StockSplits: 4},
	}

	res := normalize.StockActions("AAPL", actions)
	require.Equal(t, 2, res.Count)

	require.Equal(t, 0.24, *res.Actions[0].Dividends)
	require.Nil(t, res.Actions[0].StockSplits)
	require.Nil(t, res.Actions[1].Dividends)
	require.Equal(t, 4.0, *res.Actions[1].StockSplits)
}

func TestFinancialStatementTranspose(t *testing.T) {
	t.Parallel()

	table := &provider.StatementTable{
		Columns: []provider.StatementColumn{
			{Date: day(2023, time.December, 31)},
			{Date: day(2022, time.December, 31)},
		},
		Rows: []provider.StatementRow{
			{LineItem: "totalRevenue", Values: []any{1000.0, 900.0}},
			{LineItem: "netIncome", Values: []any{math.NaN(), 80.0}},
		},
	}

	res := normalize.FinancialStatement("AAPL", models.FinancialIncomeStmt, table)
	require.Equal(t, []string{"2023-12-31", "2022-12-31"}, res.Periods)

	recent := res.Data["2023-12-31"]
	require.Equal(t, 1000.0, recent["totalRevenue"])
	require.Nil(t, recent["netIncome"]) // NaN collapses to null

	prior := res.Data["2022-12-31"]
	require.Equal(t, 80.0, prior["netIncome"])
}

func TestFinancialStatementEmptyTable(t *testing.T) {
	t.Parallel()

	res := normalize.FinancialStatement("AAPL", models.FinancialCashflow, &provider.StatementTable{})
	require.Empty(t, res.Periods)
	require.Empty(t, res.Data)
	require.NotNil(t, res.Data)
}

func TestFinancialStatementLabelColumn(t *testing.T) {
	t.Parallel()

	table := &provider.StatementTable{
		Columns: []provider.StatementColumn{{Label: "TTM"}},
		Rows:    []provider.StatementRow{{LineItem: "totalRevenue", Values: []any{1100.0}}},
	}

	res := normalize.FinancialStatement("AAPL", models.FinancialIncomeStmt, table)
	require.Equal(t, []string{"TTM"}, res.Periods)
}

func TestMajorHoldersShape(t *testing.T) {
	t.Parallel()

	res := normalize.MajorHolders("AAPL", map[string]any{"insidersPercentHeld": 0.02})
	require.Equal(t, "major_holders", res.HolderType)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	require.Contains(t, string(data), `"data":{`)
}

func TestHolderRecordsShape(t *testing.T) {
	t.Parallel()

	res := normalize.HolderRecords("AAPL", models.HolderInstitutionalHolders, nil)
	require.Equal(t, "institutional_holders", res.HolderType)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	require.Contains(t, string(data), `"data":[]`)
}

func TestOptionChainInTheMoneyAlwaysPresent(t *testing.T) {
	t.Parallel()

	rows := []provider.OptionRow{
		{ContractSymbol: "AAPL240517C00150000", Strike: 150, LastPrice: math.NaN(), Bid: 3.1, Ask: 3.3,
			Volume: math.NaN(), OpenInterest: 250, ImpliedVolatility: 0.25, InTheMoney: true},
		{ContractSymbol: "AAPL240517C00200000", Strike: 200, InTheMoney: false,
			LastPrice: math.NaN(), Bid: math.NaN(), Ask: math.NaN(), Volume: math.NaN(),
			OpenInterest: math.NaN(), ImpliedVolatility: math.NaN()},
	}

	res := normalize.OptionChain("AAPL", "2024-05-17", models.OptionTypeCalls, rows)
	require.Equal(t, 2, res.Count)

	first := res.Contracts[0]
	require.NotNil(t, first.InTheMoney)
	require.True(t, *first.InTheMoney)
	require.Nil(t, first.LastPrice)
	require.EqualValues(t, 250, *first.OpenInterest)

	second := res.Contracts[1]
	require.NotNil(t, second.InTheMoney)
	require.False(t, *second.InTheMoney)
	require.Nil(t, second.Bid)
}

func TestRecommendationsPassThrough(t *testing.T) {
	t.Parallel()

	rows := []provider.RecommendationRow{
		{Date: day(2024, time.April, 1), Firm: "Morgan Stanley", ToGrade: "Overweight", Action: "main"},
		{Date: day(2024, time.March, 1), Firm: "JP Morgan", ToGrade: "Neutral", FromGrade: "Overweight", Action: "down"},
	}

	res := normalize.Recommendations("AAPL", rows)
	require.Equal(t, "recommendations", res.RecommendationType)
	require.Equal(t, 2, res.Count)
	require.Equal(t, "Morgan Stanley", *res.Recommendations[0].Firm)
}

func TestRatingChangesWindowAndDedup(t *testing.T) {
	t.Parallel()

	now := day(2024, time.June, 1)
	rows := []provider.GradeChange{
		{Date: day(2024, time.May, 10), Firm: "Morgan Stanley", ToGrade: "Overweight", Action: "up"},
		{Date: day(2024, time.April, 2), Firm: "Morgan Stanley", ToGrade: "Equal-Weight", Action: "down"},
		{Date: day(2024, time.March, 15), Firm: "JP Morgan", ToGrade: "Neutral", Action: "init"},
		{Date: day(2024, time.February, 1), Firm: "Barclays", ToGrade: "Underweight", Action: "down"},
		{Date: day(2022, time.January, 1), Firm: "Citi", ToGrade: "Buy", Action: "up"}, // outside the window
	}

	res := normalize.RatingChanges("AAPL", rows, 12, now)
	require.Equal(t, "upgrades_downgrades", res.RecommendationType)

	// Five rows, one out of window, one firm duplicate: three remain.
	require.Equal(t, 3, res.Count)

	// Sorted by date descending, each firm's most recent row wins.
	require.Equal(t, "Morgan Stanley", *res.Recommendations[0].Firm)
	require.Equal(t, "Overweight", *res.Recommendations[0].ToGrade)
	require.Equal(t, "JP Morgan", *res.Recommendations[1].Firm)
	require.Equal(t, "Barclays", *res.Recommendations[2].Firm)
}

func TestRatingChangesBoundaryInclusive(t *testing.T) {
	t.Parallel()

	now := day(2024, time.June, 1)
	rows := []provider.GradeChange{
		{Date: day(2023, time.June, 1), Firm: "Barclays", ToGrade: "Overweight", Action: "up"},
	}

	// A change exactly monthsBack ago is still inside the window.
	res := normalize.RatingChanges("AAPL", rows, 12, now)
	require.Equal(t, 1, res.Count)
}
