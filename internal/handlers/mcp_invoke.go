package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"yfmcp/internal/mcp"
	"yfmcp/internal/tools"
)

// MCPInvokeHandler serves JSON-RPC requests over the HTTP transport,
// answering each POST with a single SSE-framed response event.
type MCPInvokeHandler struct {
	invoker *tools.Invoker
	logger  *slog.Logger
}

// NewMCPInvokeHandler creates the HTTP-transport MCP handler.
func NewMCPInvokeHandler(invoker *tools.Invoker, logger *slog.Logger) *MCPInvokeHandler {
	return &MCPInvokeHandler{
		invoker: invoker,
		logger:  logger.With("handler", "mcp"),
	}
}

// ServeHTTP handles POST /mcp requests.
func (h *MCPInvokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	correlationID := GetCorrelationID(r.Context())

	req, parseErr := mcp.ParseJSONRPCRequest(r.Body)

	if req != nil && req.IsNotification() {
		// Notifications get no JSON-RPC response on this transport.
		w.WriteHeader(http.StatusAccepted)
		return
	}

	sseWriter, err := mcp.NewSSEWriter(w)
	if err != nil {
		h.logger.Error("sse_init_failed", "error", err, "correlation_id", correlationID)
		http.Error(w, "SSE initialization failed", http.StatusInternalServerError)
		return
	}

	if parseErr != nil {
		if rpcErr, ok := parseErr.(*mcp.RPCError); ok {
			sseWriter.SendError(nil, rpcErr.Code, rpcErr.Message, rpcErr.Data)
			return
		}
		sseWriter.SendError(nil, mcp.ParseError, "Invalid request", parseErr.Error())
		return
	}

	switch req.Method {
	case mcp.MethodInitialize:
		sseWriter.SendResult(req.ID, mcp.NewInitializeResult(""))
		return

	case mcp.MethodPing:
		sseWriter.SendResult(req.ID, struct{}{})
		return

	case mcp.MethodListTools:
		sseWriter.SendResult(req.ID, mcp.ListToolsResult{Tools: h.invoker.Tools()})
		return

	case mcp.MethodCallTool:
		// fall through to tool invocation below
	default:
		sseWriter.SendError(req.ID, mcp.MethodNotFound, "Unknown method", req.Method)
		return
	}

	toolParams, err := mcp.ParseCallToolParams(req.Params)
	if err != nil {
		if rpcErr, ok := err.(*mcp.RPCError); ok {
			sseWriter.SendError(req.ID, rpcErr.Code, rpcErr.Message, rpcErr.Data)
			return
		}
		sseWriter.SendError(req.ID, mcp.InvalidParams, "Invalid parameters", err.Error())
		return
	}

	// Extract ticker for logging
	ticker := ""
	if toolParams.Arguments != nil {
		if t, ok := toolParams.Arguments["ticker"].(string); ok {
			ticker = t
		}
	}

	mcp.LogToolRequest(r.Context(), h.logger, toolParams.Name, ticker, correlationID)

	sink := tools.SlogNotifier{Logger: h.logger.With("tool", toolParams.Name)}
	result, invokeErr := h.invoker.Invoke(r.Context(), toolParams.Name, toolParams.Arguments, sink)

	latencyMS := time.Since(start).Milliseconds()

	if invokeErr != nil {
		rpcErr := mcp.FormatMCPError(invokeErr)
		mcp.LogToolError(r.Context(), h.logger, toolParams.Name, ticker, correlationID, rpcErr.Code, rpcErr.Message)
		sseWriter.SendError(req.ID, rpcErr.Code, rpcErr.Message, rpcErr.Data)
		return
	}

	mcp.LogToolSuccess(r.Context(), h.logger, toolParams.Name, ticker, correlationID, latencyMS)
	sseWriter.SendResult(req.ID, result)
}
