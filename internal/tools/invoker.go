package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"yfmcp/internal/mcp"
	"yfmcp/internal/models"
)

// Invoker validates tool arguments against their schemas and dispatches to
// the matching Service operation. Success schemas and TickerValidationError
// are both returned in-band as tool results; protocol-level errors are
// reserved for unknown tools and schema violations.
type Invoker struct {
	svc        *Service
	defs       []Definition
	validators map[string]*mcp.SchemaValidator
	logger     *slog.Logger
}

// NewInvoker compiles every tool's input schema up front.
func NewInvoker(svc *Service, logger *slog.Logger) (*Invoker, error) {
	defs := Definitions()
	validators := make(map[string]*mcp.SchemaValidator, len(defs))
	for _, def := range defs {
		v, err := mcp.NewSchemaValidator(def.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", def.Name, err)
		}
		validators[def.Name] = v
	}
	return &Invoker{
		svc:        svc,
		defs:       defs,
		validators: validators,
		logger:     logger.With("component", "invoker"),
	}, nil
}

// Tools returns the protocol-shaped tool list in definition order.
func (i *Invoker) Tools() []mcp.Tool {
	out := make([]mcp.Tool, len(i.defs))
	for n, def := range i.defs {
		out[n] = mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}
	}
	return out
}

// Invoke runs one tool call. A panic during invocation is recovered into the
// in-band internal-error schema, matching the dispatch layer's catch-all
// contract.
func (i *Invoker) Invoke(ctx context.Context, name string, args map[string]any, sink Notifier) (result *mcp.CallToolResult, rpcErr error) {
	validator, ok := i.validators[name]
	if !ok {
		return nil, &mcp.RPCError{
			Code:    mcp.MethodNotFound,
			Message: "Unknown tool",
			Data:    name,
		}
	}

	if args == nil {
		args = map[string]any{}
	}
	if err := validator.Validate(args); err != nil {
		return nil, mcp.ErrorFromValidation(err)
	}

	defer func() {
		if r := recover(); r != nil {
			i.logger.Error("tool_panic", "tool", name, "panic", fmt.Sprint(r))
			payload := models.NewTickerValidationError(
				fmt.Sprintf("Internal error: %v", r), stringArg(args, "ticker", ""))
			result, rpcErr = marshalResult(payload)
		}
	}()

	payload := i.dispatch(ctx, name, args, sink)
	return marshalResult(payload)
}

// dispatch calls the Service operation matching the tool name. Arguments are
// already schema-validated, so type assertions here cannot fail for wellformed
// input; defaults are applied for optional parameters.
func (i *Invoker) dispatch(ctx context.Context, name string, args map[string]any, sink Notifier) any {
	ticker := stringArg(args, "ticker", "")

	switch name {
	case ToolHistoricalPrices:
		period := stringArg(args, "period", "1mo")
		interval := stringArg(args, "interval", "1d")
		res, terr := i.svc.GetHistoricalStockPrices(ctx, sink, ticker, period, interval)
		return pick(res, terr)

	case ToolStockInfo:
		res, terr := i.svc.GetStockInfo(ctx, sink, ticker)
		return pick(res, terr)

	case ToolNews:
		res, terr := i.svc.GetNews(ctx, sink, ticker)
		return pick(res, terr)

	case ToolStockActions:
		res, terr := i.svc.GetStockActions(ctx, sink, ticker)
		return pick(res, terr)

	case ToolFinancialStatement:
		ft := models.FinancialType(stringArg(args, "financial_type", ""))
		res, terr := i.svc.GetFinancialStatement(ctx, sink, ticker, ft)
		return pick(res, terr)

	case ToolHolderInfo:
		ht := models.HolderType(stringArg(args, "holder_type", ""))
		res, terr := i.svc.GetHolderInfo(ctx, sink, ticker, ht)
		return pick(res, terr)

	case ToolOptionExpirationDates:
		res, terr := i.svc.GetOptionExpirationDates(ctx, sink, ticker)
		return pick(res, terr)

	case ToolOptionChain:
		expiration := stringArg(args, "expiration_date", "")
		optionType := stringArg(args, "option_type", "")
		res, terr := i.svc.GetOptionChain(ctx, sink, ticker, expiration, optionType)
		return pick(res, terr)

	case ToolRecommendations:
		rt := models.RecommendationType(stringArg(args, "recommendation_type", ""))
		monthsBack := intArg(args, "months_back", defaultMonthsBack)
		res, terr := i.svc.GetRecommendations(ctx, sink, ticker, rt, monthsBack)
		return pick(res, terr)
	}

	// Unreachable: Invoke rejects unknown names before dispatch.
	return models.NewTickerValidationError(fmt.Sprintf("Unknown tool: %s", name), ticker)
}

// pick returns the error schema when set, else the success schema.
func pick(res any, terr *models.TickerValidationError) any {
	if terr != nil {
		return terr
	}
	return res
}

func marshalResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &mcp.RPCError{
			Code:    mcp.InternalError,
			Message: "Failed to serialize tool result",
			Data:    err.Error(),
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.TextContent{{Type: "text", Text: string(data)}},
	}, nil
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return fallback
}
