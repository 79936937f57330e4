// Package yahoo implements the provider boundary against Yahoo Finance's
// public JSON endpoints.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"yfmcp/internal/provider"
)

const (
	defaultBaseURL = "https://query2.finance.yahoo.com"
	userAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	requestTimeout = 30 * time.Second
)

// Client talks to Yahoo Finance. It is safe for concurrent use.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the upstream base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithHTTPClient swaps the underlying HTTP transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.http.BaseURL
		c.http = resty.NewWithClient(hc)
		c.http.SetBaseURL(base)
		c.http.SetHeader("User-Agent", userAgent)
	}
}

// New creates a Yahoo Finance client.
func New(logger *slog.Logger, opts ...Option) *Client {
	rc := resty.New()
	rc.SetBaseURL(defaultBaseURL)
	rc.SetTimeout(requestTimeout)
	rc.SetHeader("User-Agent", userAgent)
	rc.SetHeader("Accept", "application/json")

	c := &Client{
		http:   rc,
		logger: logger.With("component", "yahoo"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ provider.Provider = (*Client)(nil)

// get issues a GET request and decodes the JSON body into out, translating
// transport and status failures into provider errors.
func (c *Client) get(ctx context.Context, op, path string, query map[string]string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return provider.NewError(provider.KindTransient, op, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return provider.Errorf(provider.KindNotFound, op, "upstream returned 404")
	case code == http.StatusTooManyRequests:
		return provider.Errorf(provider.KindTransient, op, "upstream rate limited (429)")
	case code >= 500:
		return provider.Errorf(provider.KindTransient, op, "upstream returned %d", code)
	case code != http.StatusOK:
		return provider.Errorf(provider.KindUnknown, op, "upstream returned %d", code)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return provider.NewError(provider.KindMalformed, op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// searchResponse is the shape of /v1/finance/search.
type searchResponse struct {
	Quotes []struct {
		Symbol string `json:"symbol"`
	} `json:"quotes"`
	News []newsEntry `json:"news"`
}

// ISIN resolves the ticker through the search endpoint. An empty result set
// means the ticker does not exist upstream.
func (c *Client) ISIN(ctx context.Context, ticker string) (string, error) {
	var sr searchResponse
	err := c.get(ctx, "yahoo.isin", "/v1/finance/search", map[string]string{
		"q":           ticker,
		"quotesCount": "5",
		"newsCount":   "0",
	}, &sr)
	if err != nil {
		return "", err
	}

	for _, q := range sr.Quotes {
		if q.Symbol == ticker {
			return q.Symbol, nil
		}
	}
	return "", nil
}

// rawValue is Yahoo's {raw, fmt} number envelope. Some fields come through as
// bare numbers or strings instead, so everything decodes into any first.
type rawValue struct {
	Raw any `json:"raw"`
	Fmt any `json:"fmt"`
}

// unwrapFloat extracts a float64 from a quoteSummary value, which may be a
// bare number, a {raw, fmt} envelope, or absent. Absent values become NaN.
func unwrapFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case map[string]any:
		if raw, ok := t["raw"]; ok {
			return unwrapFloat(raw)
		}
	}
	return math.NaN()
}

// unwrapString extracts a string from a quoteSummary value.
func unwrapString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if f, ok := t["fmt"].(string); ok {
			return f
		}
	}
	return ""
}

// unwrapAny flattens a quoteSummary value: envelopes collapse to their raw
// member, empty envelopes to nil, and scalars pass through.
func unwrapAny(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	raw, ok := m["raw"]
	if !ok {
		return nil
	}
	return raw
}

// quoteSummaryResponse is the envelope of /v10/finance/quoteSummary.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// quoteSummary fetches the requested modules for a ticker and returns the
// first result entry keyed by module name.
func (c *Client) quoteSummary(ctx context.Context, op, ticker, modules string) (map[string]json.RawMessage, error) {
	var qs quoteSummaryResponse
	err := c.get(ctx, op, "/v10/finance/quoteSummary/"+ticker, map[string]string{
		"modules": modules,
	}, &qs)
	if err != nil {
		return nil, err
	}

	if qs.QuoteSummary.Error != nil {
		if qs.QuoteSummary.Error.Code == "Not Found" {
			return nil, provider.Errorf(provider.KindNotFound, op, "ticker %s: %s", ticker, qs.QuoteSummary.Error.Description)
		}
		return nil, provider.Errorf(provider.KindUnknown, op, "ticker %s: %s", ticker, qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, provider.Errorf(provider.KindNotFound, op, "ticker %s: empty quoteSummary result", ticker)
	}
	return qs.QuoteSummary.Result[0], nil
}

// floatOrNaN dereferences an optional JSON number, NaN when absent.
func floatOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// formatEpoch renders a unix timestamp as a decimal query value.
func formatEpoch(epoch int64) string {
	return strconv.FormatInt(epoch, 10)
}

// module decodes one named module out of a quoteSummary result into out.
// A missing module leaves out untouched and reports false.
func module(result map[string]json.RawMessage, name string, out any) (bool, error) {
	raw, ok := result[name]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode module %s: %w", name, err)
	}
	return true, nil
}
