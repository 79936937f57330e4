package handlers_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"yfmcp/internal/handlers"
	"yfmcp/internal/models"
	"yfmcp/internal/provider/mocks"
	"yfmcp/internal/tools"
)

func newTestHandler(t *testing.T) (*handlers.MCPInvokeHandler, *mocks.MockProvider) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockProvider(ctrl)
	svc := tools.NewService(mockProvider, models.NewAppContext(), slog.Default())

	invoker, err := tools.NewInvoker(svc, slog.Default())
	require.NoError(t, err)
	return handlers.NewMCPInvokeHandler(invoker, slog.Default()), mockProvider
}

// decodeSSE extracts the single JSON-RPC frame from an SSE response body.
func decodeSSE(t *testing.T, body string) map[string]any {
	t.Helper()

	require.True(t, strings.HasPrefix(body, "data: "), "body: %q", body)
	payload := strings.TrimSuffix(strings.TrimPrefix(body, "data: "), "\n\n")

	var frame map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &frame))
	return frame
}

func postMCP(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMCPInvokeInitialize(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postMCP(t, handler, `{"jsonrpc":"2.0","id":0,"method":"initialize","params":{"protocolVersion":"2025-06-18"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	frame := decodeSSE(t, rec.Body.String())
	result, ok := frame["result"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "2025-06-18", result["protocolVersion"])
}

func TestMCPInvokeNotificationGets202(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postMCP(t, handler, `{"jsonrpc":"2.0","method":"notifications/initialized"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestMCPInvokeToolsList(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postMCP(t, handler, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)

	frame := decodeSSE(t, rec.Body.String())
	result, ok := frame["result"].(map[string]any)
	require.True(t, ok)
	toolList, ok := result["tools"].([]any)
	require.True(t, ok)
	require.Len(t, toolList, 9)
}

func TestMCPInvokeToolCall(t *testing.T) {
	t.Parallel()

	handler, mockProvider := newTestHandler(t)
	mockProvider.EXPECT().ISIN(gomock.Any(), "AAPL").Return("AAPL", nil)
	mockProvider.EXPECT().OptionExpirations(gomock.Any(), "AAPL").
		Return([]string{"2024-05-17"}, nil)

	rec := postMCP(t, handler, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_option_expiration_dates","arguments":{"ticker":"AAPL"}}}`)

	frame := decodeSSE(t, rec.Body.String())
	require.EqualValues(t, 3, frame["id"])

	result, ok := frame["result"].(map[string]any)
	require.True(t, ok)
	content := result["content"].([]any)
	text := content[0].(map[string]any)["text"].(string)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	require.Equal(t, "AAPL", payload["ticker"])
}

func TestMCPInvokeUnknownMethod(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postMCP(t, handler, `{"jsonrpc":"2.0","id":4,"method":"resources/list"}`)

	frame := decodeSSE(t, rec.Body.String())
	rpcErr, ok := frame["error"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, -32601, rpcErr["code"])
}

func TestMCPInvokeParseError(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postMCP(t, handler, `{broken`)

	frame := decodeSSE(t, rec.Body.String())
	rpcErr, ok := frame["error"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, -32700, rpcErr["code"])
}

func TestMCPInvokeRejectsGET(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCorrelationIDMiddleware(t *testing.T) {
	t.Parallel()

	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = handlers.GetCorrelationID(r.Context())
	})
	wrapped := handlers.CorrelationIDMiddleware(inner)

	t.Run("generates an id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)

		require.NotEmpty(t, seen)
		require.Equal(t, seen, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("honors the client's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Correlation-ID", "abc-123")
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)

		require.Equal(t, "abc-123", seen)
		require.Equal(t, "abc-123", rec.Header().Get("X-Correlation-ID"))
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handlers.HealthCheckHandler(slog.Default())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}
