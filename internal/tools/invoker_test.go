package tools_test

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"yfmcp/internal/mcp"
	"yfmcp/internal/models"
	"yfmcp/internal/provider"
	"yfmcp/internal/provider/mocks"
	"yfmcp/internal/tools"
)

func newTestInvoker(t *testing.T) (*tools.Invoker, *mocks.MockProvider) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockProvider(ctrl)
	svc := tools.NewService(mockProvider, models.NewAppContext(), slog.Default())

	invoker, err := tools.NewInvoker(svc, slog.Default())
	require.NoError(t, err)
	return invoker, mockProvider
}

func decodeResult(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	require.Len(t, result.Content, 1)
	require.Equal(t, "text", result.Content[0].Type)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &out))
	return out
}

func TestInvokerToolList(t *testing.T) {
	t.Parallel()

	invoker, _ := newTestInvoker(t)
	list := invoker.Tools()
	require.Len(t, list, 9)

	names := make([]string, 0, len(list))
	for _, tool := range list {
		names = append(names, tool.Name)
		require.NotEmpty(t, tool.Description)
		require.Equal(t, "object", tool.InputSchema["type"])
	}
	require.Equal(t, []string{
		"get_historical_stock_prices",
		"get_stock_info",
		"get_yahoo_finance_news",
		"get_stock_actions",
		"get_financial_statement",
		"get_holder_info",
		"get_option_expiration_dates",
		"get_option_chain",
		"get_recommendations",
	}, names)
}

func TestInvokeUnknownTool(t *testing.T) {
	t.Parallel()

	invoker, _ := newTestInvoker(t)

	result, err := invoker.Invoke(t.Context(), "get_lottery_numbers", map[string]any{"ticker": "AAPL"}, nil)
	require.Nil(t, result)
	require.Error(t, err)

	rpcErr, ok := err.(*mcp.RPCError)
	require.True(t, ok)
	require.Equal(t, mcp.MethodNotFound, rpcErr.Code)
}

func TestInvokeSchemaViolation(t *testing.T) {
	t.Parallel()

	invoker, _ := newTestInvoker(t)

	// Missing the required ticker argument.
	result, err := invoker.Invoke(t.Context(), "get_stock_info", map[string]any{}, nil)
	require.Nil(t, result)
	require.Error(t, err)

	rpcErr, ok := err.(*mcp.RPCError)
	require.True(t, ok)
	require.Equal(t, mcp.ValidationFailed, rpcErr.Code)
}

func TestInvokeEnumViolation(t *testing.T) {
	t.Parallel()

	invoker, _ := newTestInvoker(t)

	result, err := invoker.Invoke(t.Context(), "get_financial_statement", map[string]any{
		"ticker":         "AAPL",
		"financial_type": "annual_report",
	}, nil)
	require.Nil(t, result)
	require.Error(t, err)

	rpcErr, ok := err.(*mcp.RPCError)
	require.True(t, ok)
	require.Equal(t, mcp.ValidationFailed, rpcErr.Code)
}

func TestInvokeSuccessResult(t *testing.T) {
	t.Parallel()

	invoker, mockProvider := newTestInvoker(t)
	mockProvider.EXPECT().ISIN(gomock.Any(), "AAPL").Return("AAPL", nil)
	mockProvider.EXPECT().OptionExpirations(gomock.Any(), "AAPL").
		Return([]string{"2024-05-17"}, nil)

	result, err := invoker.Invoke(t.Context(), "get_option_expiration_dates", map[string]any{
		"ticker": "AAPL",
	}, nil)
	require.NoError(t, err)

	out := decodeResult(t, result)
	require.Equal(t, "AAPL", out["ticker"])
	require.EqualValues(t, 1, out["count"])
}

func TestInvokeErrorSchemaInBand(t *testing.T) {
	t.Parallel()

	invoker, mockProvider := newTestInvoker(t)
	mockProvider.EXPECT().ISIN(gomock.Any(), "FAKE").Return("", nil)

	// The unknown-ticker schema is a successful tool result, not an RPC error.
	result, err := invoker.Invoke(t.Context(), "get_stock_info", map[string]any{
		"ticker": "FAKE",
	}, nil)
	require.NoError(t, err)

	out := decodeResult(t, result)
	require.Equal(t, "Ticker 'FAKE' not found", out["error"])
	require.Equal(t, "FAKE", out["ticker"])
	require.Contains(t, out, "suggestion")
}

func TestInvokeAppliesDefaults(t *testing.T) {
	t.Parallel()

	invoker, mockProvider := newTestInvoker(t)
	mockProvider.EXPECT().ISIN(gomock.Any(), "AAPL").Return("AAPL", nil)
	// Omitted period and interval fall back to 1mo/1d.
	mockProvider.EXPECT().History(gomock.Any(), "AAPL", "1mo", "1d").Return(nil, nil)

	result, err := invoker.Invoke(t.Context(), "get_historical_stock_prices", map[string]any{
		"ticker": "AAPL",
	}, nil)
	require.NoError(t, err)

	out := decodeResult(t, result)
	require.Contains(t, out["error"], "No data available for AAPL")
}

func TestInvokeMonthsBackZeroHonored(t *testing.T) {
	t.Parallel()

	invoker, mockProvider := newTestInvoker(t)
	mockProvider.EXPECT().ISIN(gomock.Any(), "AAPL").Return("AAPL", nil)
	mockProvider.EXPECT().UpgradesDowngrades(gomock.Any(), "AAPL").Return([]provider.GradeChange{
		{Date: time.Now().AddDate(0, -1, 0), Firm: "Barclays", ToGrade: "Overweight", Action: "up"},
	}, nil)

	// An explicit zero window excludes last month's change instead of being
	// coerced to the 12-month default.
	result, err := invoker.Invoke(t.Context(), "get_recommendations", map[string]any{
		"ticker":              "AAPL",
		"recommendation_type": "upgrades_downgrades",
		"months_back":         float64(0),
	}, nil)
	require.NoError(t, err)

	out := decodeResult(t, result)
	require.EqualValues(t, 0, out["count"])
}

func TestInvokePanicRecovered(t *testing.T) {
	t.Parallel()

	invoker, mockProvider := newTestInvoker(t)
	mockProvider.EXPECT().ISIN(gomock.Any(), "AAPL").DoAndReturn(func(_ any, _ string) (string, error) {
		panic("boom")
	})

	result, err := invoker.Invoke(t.Context(), "get_stock_info", map[string]any{
		"ticker": "AAPL",
	}, nil)
	require.NoError(t, err)

	out := decodeResult(t, result)
	require.Contains(t, out["error"], "Internal error: boom")
	require.Equal(t, "AAPL", out["ticker"])
}
