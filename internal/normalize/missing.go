// Package normalize reshapes raw provider data into the closed set of
// response schemas. Every function here is pure and deterministic: the same
// input always yields a structurally identical response.
//
// The shared missing-value policy: a numeric field is emitted as null exactly
// when the raw value is absent or NaN. A true zero is preserved as a value.
package normalize

import (
	"math"
	"time"
)

// rowTimeLayout matches the upstream's stringified row timestamps,
// e.g. "2025-10-25 00:00:00-04:00".
const rowTimeLayout = "2006-01-02 15:04:05-07:00"

// periodLayout is the date-only form used for statement period labels.
const periodLayout = "2006-01-02"

func floatOrNil(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func intOrNil(v float64) *int64 {
	if math.IsNaN(v) {
		return nil
	}
	n := int64(v)
	return &n
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func timeOrNil(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(rowTimeLayout)
	return &s
}

// infoFloat reads a numeric snapshot field, accepting the numeric types a
// JSON decode can produce. Missing, null and NaN all yield nil.
func infoFloat(snapshot map[string]any, key string) *float64 {
	raw, ok := snapshot[key]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		return floatOrNil(v)
	case float32:
		return floatOrNil(float64(v))
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

// infoInt reads an integral snapshot field with the same missing policy.
func infoInt(snapshot map[string]any, key string) *int64 {
	f := infoFloat(snapshot, key)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}

// infoString reads a string snapshot field; missing, null and empty yield nil.
func infoString(snapshot map[string]any, key string) *string {
	raw, ok := snapshot[key]
	if !ok || raw == nil {
		return nil
	}
	if s, ok := raw.(string); ok {
		return strOrNil(s)
	}
	return nil
}

// cellValue coerces one loosely typed statement cell: numerics stay float64,
// strings stay strings, NaN and anything else collapse to nil.
func cellValue(raw any) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(v) {
			return nil
		}
		return v
	case float32:
		return cellValue(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return v
	}
	return nil
}
