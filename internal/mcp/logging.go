package mcp

import (
	"context"
	"log/slog"
)

// LogToolRequest logs an incoming tool call with structured fields.
func LogToolRequest(ctx context.Context, logger *slog.Logger, tool, ticker, correlationID string) {
	logger.InfoContext(ctx, "tool_request",
		"tool_name", tool,
		"ticker", ticker,
		"correlation_id", correlationID,
	)
}

// LogToolSuccess logs a completed tool call with latency.
func LogToolSuccess(ctx context.Context, logger *slog.Logger, tool, ticker, correlationID string, latencyMS int64) {
	logger.InfoContext(ctx, "tool_success",
		"tool_name", tool,
		"ticker", ticker,
		"correlation_id", correlationID,
		"latency_ms", latencyMS,
	)
}

// LogToolError logs a failed tool call with its protocol error code.
func LogToolError(ctx context.Context, logger *slog.Logger, tool, ticker, correlationID string, errorCode int, errorMsg string) {
	logger.ErrorContext(ctx, "tool_error",
		"tool_name", tool,
		"ticker", ticker,
		"correlation_id", correlationID,
		"error_code", errorCode,
		"error_message", errorMsg,
	)
}
