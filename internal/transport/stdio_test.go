package transport_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"yfmcp/internal/models"
	"yfmcp/internal/provider/mocks"
	"yfmcp/internal/tools"
	"yfmcp/internal/transport"
)

// runSession feeds newline-delimited requests through a stdio server backed
// by the given mock provider and returns the decoded output frames.
func runSession(t *testing.T, mockProvider *mocks.MockProvider, lines ...string) []map[string]any {
	t.Helper()

	svc := tools.NewService(mockProvider, models.NewAppContext(), slog.Default())
	invoker, err := tools.NewInvoker(svc, slog.Default())
	require.NoError(t, err)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	srv := transport.NewStdioServer(invoker, slog.Default(), in, &out)
	require.NoError(t, srv.Run(t.Context()))

	var frames []map[string]any
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var frame map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &frame))
		frames = append(frames, frame)
	}
	require.NoError(t, scanner.Err())
	return frames
}

func TestStdioInitializeHandshake(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockProvider(ctrl)

	frames := runSession(t, mockProvider,
		`{"jsonrpc":"2.0","id":0,"method":"initialize","params":{"protocolVersion":"2025-06-18"}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
	)

	// The initialized notification produces no frame.
	require.Len(t, frames, 2)

	init := frames[0]
	require.EqualValues(t, 0, init["id"])
	result, ok := init["result"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "2025-06-18", result["protocolVersion"])

	serverInfo, ok := result["serverInfo"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Yahoo Finance MCP", serverInfo["name"])

	pong := frames[1]
	require.EqualValues(t, 1, pong["id"])
	require.Contains(t, pong, "result")
}

func TestStdioToolsList(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockProvider(ctrl)

	frames := runSession(t, mockProvider,
		`{"jsonrpc":"2.0","id":5,"method":"tools/list"}`,
	)
	require.Len(t, frames, 1)

	result, ok := frames[0]["result"].(map[string]any)
	require.True(t, ok)
	toolList, ok := result["tools"].([]any)
	require.True(t, ok)
	require.Len(t, toolList, 9)
}

func TestStdioToolCall(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockProvider(ctrl)
	mockProvider.EXPECT().ISIN(gomock.Any(), "AAPL").Return("AAPL", nil)
	mockProvider.EXPECT().OptionExpirations(gomock.Any(), "AAPL").
		Return([]string{"2024-05-17"}, nil)

	frames := runSession(t, mockProvider,
		`{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"get_option_expiration_dates","arguments":{"ticker":"AAPL"}}}`,
	)

	// Tool notifications precede the response frame.
	require.NotEmpty(t, frames)
	last := frames[len(frames)-1]
	require.EqualValues(t, 7, last["id"])

	result, ok := last["result"].(map[string]any)
	require.True(t, ok)
	content, ok := result["content"].([]any)
	require.True(t, ok)
	require.Len(t, content, 1)

	text := content[0].(map[string]any)["text"].(string)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	require.Equal(t, "AAPL", payload["ticker"])
	require.EqualValues(t, 1, payload["count"])

	// Every preceding frame is a notifications/message carrying tool progress.
	for _, frame := range frames[:len(frames)-1] {
		require.Equal(t, "notifications/message", frame["method"])
		_, hasID := frame["id"]
		require.False(t, hasID)
	}
}

func TestStdioUnknownMethod(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockProvider(ctrl)

	frames := runSession(t, mockProvider,
		`{"jsonrpc":"2.0","id":3,"method":"resources/list"}`,
	)
	require.Len(t, frames, 1)

	rpcErr, ok := frames[0]["error"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, -32601, rpcErr["code"])
}

func TestStdioParseError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockProvider(ctrl)

	frames := runSession(t, mockProvider, `{not json`)
	require.Len(t, frames, 1)

	rpcErr, ok := frames[0]["error"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, -32700, rpcErr["code"])
}

func TestStdioBlankLinesSkipped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockProvider(ctrl)

	frames := runSession(t, mockProvider,
		``,
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		``,
	)
	require.Len(t, frames, 1)
	require.EqualValues(t, 1, frames[0]["id"])
}
