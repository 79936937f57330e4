package models

import (
	"sync/atomic"
)

// TickerValidationError is the typed error result shared by every tool.
// It is returned in-band as a tool result, never as a protocol-level error.
type TickerValidationError struct {
	Error      string  `json:"error"`
	Ticker     string  `json:"ticker"`
	Suggestion *string `json:"suggestion"`
}

// NewTickerValidationError builds an error result without a suggestion.
func NewTickerValidationError(msg, ticker string) *TickerValidationError {
	return &TickerValidationError{Error: msg, Ticker: ticker}
}

// NewTickerValidationErrorWithSuggestion builds an error result carrying a hint
// for the caller.
func NewTickerValidationErrorWithSuggestion(msg, ticker, suggestion string) *TickerValidationError {
	return &TickerValidationError{Error: msg, Ticker: ticker, Suggestion: &suggestion}
}

// AppContext is the process-lifetime server context. The request counter is
// incremented once per tool invocation; the cache map is a placeholder that
// nothing reads or writes.
type AppContext struct {
	cache    map[string]any
	requests atomic.Int64
}

// NewAppContext creates an empty application context.
func NewAppContext() *AppContext {
	return &AppContext{cache: make(map[string]any)}
}

// IncrementRequests bumps the invocation counter and returns the new value.
func (c *AppContext) IncrementRequests() int64 {
	return c.requests.Add(1)
}

// RequestCount returns the number of tool invocations processed so far.
func (c *AppContext) RequestCount() int64 {
	return c.requests.Load()
}
