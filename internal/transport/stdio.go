// Package transport runs an MCP session over stdin/stdout using
// newline-delimited JSON-RPC frames.
package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"yfmcp/internal/mcp"
	"yfmcp/internal/tools"
)

// maxFrameSize bounds a single JSON-RPC line on stdin.
const maxFrameSize = 4 * 1024 * 1024

// StdioServer reads JSON-RPC requests line by line from in and writes
// responses and server notifications to out. Writes are serialized so
// notifications emitted mid-call never interleave with a response frame.
type StdioServer struct {
	invoker *tools.Invoker
	logger  *slog.Logger

	in  io.Reader
	out io.Writer

	mu  sync.Mutex
	enc *json.Encoder
}

// NewStdioServer creates a stdio-transport MCP server.
func NewStdioServer(invoker *tools.Invoker, logger *slog.Logger, in io.Reader, out io.Writer) *StdioServer {
	return &StdioServer{
		invoker: invoker,
		logger:  logger.With("transport", "stdio"),
		in:      in,
		out:     out,
		enc:     json.NewEncoder(out),
	}
}

// Run processes requests until stdin is closed or ctx is cancelled.
func (s *StdioServer) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 64*1024), maxFrameSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		req, err := mcp.ParseJSONRPCRequestBytes(line)
		if err != nil {
			if rpcErr, ok := err.(*mcp.RPCError); ok {
				s.write(mcp.NewJSONRPCError(nil, rpcErr.Code, rpcErr.Message, rpcErr.Data))
			} else {
				s.write(mcp.NewJSONRPCError(nil, mcp.ParseError, "Invalid request", err.Error()))
			}
			continue
		}

		s.handle(ctx, req)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stdio read: %w", err)
	}
	return nil
}

func (s *StdioServer) handle(ctx context.Context, req *mcp.JSONRPCRequest) {
	switch req.Method {
	case mcp.MethodInitialize:
		s.logger.Info("session_initialize")
		s.write(mcp.NewJSONRPCResult(req.ID, mcp.NewInitializeResult("")))

	case mcp.MethodInitialized:
		// Client acknowledgement, no response expected.
		s.logger.Info("session_initialized")

	case mcp.MethodPing:
		s.write(mcp.NewJSONRPCResult(req.ID, struct{}{}))

	case mcp.MethodListTools:
		s.write(mcp.NewJSONRPCResult(req.ID, mcp.ListToolsResult{Tools: s.invoker.Tools()}))

	case mcp.MethodCallTool:
		s.handleCallTool(ctx, req)

	default:
		if req.IsNotification() {
			s.logger.Debug("notification_ignored", "method", req.Method)
			return
		}
		s.write(mcp.NewJSONRPCError(req.ID, mcp.MethodNotFound, "Unknown method", req.Method))
	}
}

func (s *StdioServer) handleCallTool(ctx context.Context, req *mcp.JSONRPCRequest) {
	start := time.Now()

	toolParams, err := mcp.ParseCallToolParams(req.Params)
	if err != nil {
		if rpcErr, ok := err.(*mcp.RPCError); ok {
			s.write(mcp.NewJSONRPCError(req.ID, rpcErr.Code, rpcErr.Message, rpcErr.Data))
			return
		}
		s.write(mcp.NewJSONRPCError(req.ID, mcp.InvalidParams, "Invalid parameters", err.Error()))
		return
	}

	ticker := ""
	if toolParams.Arguments != nil {
		if t, ok := toolParams.Arguments["ticker"].(string); ok {
			ticker = t
		}
	}

	mcp.LogToolRequest(ctx, s.logger, toolParams.Name, ticker, "")

	sink := notificationSink{srv: s, logger: toolParams.Name}
	result, invokeErr := s.invoker.Invoke(ctx, toolParams.Name, toolParams.Arguments, sink)

	latencyMS := time.Since(start).Milliseconds()

	if invokeErr != nil {
		rpcErr := mcp.FormatMCPError(invokeErr)
		mcp.LogToolError(ctx, s.logger, toolParams.Name, ticker, "", rpcErr.Code, rpcErr.Message)
		s.write(mcp.NewJSONRPCError(req.ID, rpcErr.Code, rpcErr.Message, rpcErr.Data))
		return
	}

	mcp.LogToolSuccess(ctx, s.logger, toolParams.Name, ticker, "", latencyMS)
	s.write(mcp.NewJSONRPCResult(req.ID, result))
}

func (s *StdioServer) write(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(v); err != nil {
		s.logger.Error("stdio_write_failed", "error", err)
	}
}

// notificationSink relays tool notifications to the client as
// notifications/message frames.
type notificationSink struct {
	srv    *StdioServer
	logger string
}

func (n notificationSink) send(level, msg string) {
	n.srv.write(mcp.NewNotification(mcp.MethodLoggingMessage, mcp.LoggingMessageParams{
		Level:  level,
		Logger: n.logger,
		Data:   msg,
	}))
}

func (n notificationSink) Info(msg string)    { n.send("info", msg) }
func (n notificationSink) Warning(msg string) { n.send("warning", msg) }
func (n notificationSink) Error(msg string)   { n.send("error", msg) }
