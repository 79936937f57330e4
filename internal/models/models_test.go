package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"yfmcp/internal/models"
)

func TestTickerValidationErrorJSON(t *testing.T) {
	t.Parallel()

	t.Run("without suggestion", func(t *testing.T) {
		t.Parallel()

		terr := models.NewTickerValidationError("Ticker 'FAKE' not found", "FAKE")
		data, err := json.Marshal(terr)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))

		require.Equal(t, "Ticker 'FAKE' not found", out["error"])
		require.Equal(t, "FAKE", out["ticker"])

		// The suggestion key is present and explicitly null.
		v, ok := out["suggestion"]
		require.True(t, ok)
		require.Nil(t, v)
	})

	t.Run("with suggestion", func(t *testing.T) {
		t.Parallel()

		terr := models.NewTickerValidationErrorWithSuggestion(
			"Ticker 'FAKE' not found", "FAKE", "Verify the ticker symbol is correct")
		data, err := json.Marshal(terr)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		require.Equal(t, "Verify the ticker symbol is correct", out["suggestion"])
	})
}

func TestHistoricalPriceResponseCount(t *testing.T) {
	t.Parallel()

	open := 104.35
	points := []models.HistoricalPricePoint{
		{Date: "2024-05-01 00:00:00+00:00", Open: &open},
		{Date: "2024-05-02 00:00:00+00:00"},
	}

	res := models.NewHistoricalPriceResponse("AAPL", "5d", "1d", points)
	require.Equal(t, 2, res.Count)
	require.Len(t, res.DataPoints, res.Count)
}

func TestHistoricalPriceResponseNilData(t *testing.T) {
	t.Parallel()

	res := models.NewHistoricalPriceResponse("AAPL", "5d", "1d", nil)
	require.Equal(t, 0, res.Count)
	require.NotNil(t, res.DataPoints)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	require.Contains(t, string(data), `"data_points":[]`)
}

func TestHistoricalPricePointNullFields(t *testing.T) {
	t.Parallel()

	// Absent optional fields serialize as null, not as omitted keys.
	point := models.HistoricalPricePoint{Date: "2024-05-01 00:00:00+00:00"}
	data, err := json.Marshal(point)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	for _, key := range []string{"open", "high", "low", "close", "adj_close", "volume"} {
		v, ok := out[key]
		require.Truef(t, ok, "missing key %s", key)
		require.Nilf(t, v, "key %s should be null", key)
	}
}

func TestHolderDataUnion(t *testing.T) {
	t.Parallel()

	t.Run("summary marshals to object", func(t *testing.T) {
		t.Parallel()

		res := models.NewHolderSummaryResponse("AAPL", map[string]any{
			"insidersPercentHeld": 0.02,
		})
		require.Equal(t, "major_holders", res.HolderType)

		data, err := json.Marshal(res)
		require.NoError(t, err)
		require.Contains(t, string(data), `"data":{`)
	})

	t.Run("records marshal to array", func(t *testing.T) {
		t.Parallel()

		res := models.NewHolderRecordsResponse("AAPL", models.HolderInstitutionalHolders, []map[string]any{
			{"organization": "Vanguard Group Inc"},
		})
		data, err := json.Marshal(res)
		require.NoError(t, err)
		require.Contains(t, string(data), `"data":[`)
	})

	t.Run("empty records marshal to empty array", func(t *testing.T) {
		t.Parallel()

		res := models.NewHolderRecordsResponse("AAPL", models.HolderInsiderTransactions, nil)
		data, err := json.Marshal(res)
		require.NoError(t, err)
		require.Contains(t, string(data), `"data":[]`)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		original := models.NewHolderSummaryResponse("AAPL", map[string]any{"institutionsCount": 5525.0})
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var restored models.HolderInfoResponse
		require.NoError(t, json.Unmarshal(data, &restored))
		require.NotNil(t, restored.Data.Summary)
		require.Nil(t, restored.Data.Records)
		require.Equal(t, 5525.0, restored.Data.Summary["institutionsCount"])
	})
}

func TestFinancialStatementResponsePeriods(t *testing.T) {
	t.Parallel()

	columns := []models.StatementPeriod{
		{Period: "2023-12-31", Items: map[string]any{"totalRevenue": 1000.0}},
		{Period: "2022-12-31", Items: map[string]any{"totalRevenue": 900.0}},
	}

	res := models.NewFinancialStatementResponse("AAPL", models.FinancialIncomeStmt, columns)
	require.Equal(t, []string{"2023-12-31", "2022-12-31"}, res.Periods)
	require.Len(t, res.Data, 2)
	for _, period := range res.Periods {
		require.Contains(t, res.Data, period)
	}
}

func TestFinancialStatementResponseEmpty(t *testing.T) {
	t.Parallel()

	res := models.NewFinancialStatementResponse("AAPL", models.FinancialCashflow, nil)
	require.Empty(t, res.Periods)
	require.NotNil(t, res.Data)
	require.NotNil(t, res.Periods)
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	for _, ft := range models.FinancialTypes() {
		require.Truef(t, ft.Valid(), "financial type %s", ft)
	}
	require.False(t, models.FinancialType("annual_report").Valid())

	for _, ht := range models.HolderTypes() {
		require.Truef(t, ht.Valid(), "holder type %s", ht)
	}
	require.False(t, models.HolderType("biggest_fans").Valid())

	for _, rt := range models.RecommendationTypes() {
		require.Truef(t, rt.Valid(), "recommendation type %s", rt)
	}
	require.False(t, models.RecommendationType("hot_takes").Valid())

	require.True(t, models.ValidOptionType(models.OptionTypeCalls))
	require.True(t, models.ValidOptionType(models.OptionTypePuts))
	require.False(t, models.ValidOptionType("straddles"))
}

func TestAppContextRequestCounter(t *testing.T) {
	t.Parallel()

	app := models.NewAppContext()
	require.EqualValues(t, 0, app.RequestCount())

	app.IncrementRequests()
	app.IncrementRequests()
	require.EqualValues(t, 2, app.RequestCount())
}
