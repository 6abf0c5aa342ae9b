// Package validation holds the pure field validators. Each validator returns the parsed
// value and the violations found for that field; nothing here touches storage.
package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// rawKind classifies a raw request value before numeric parsing.
type rawKind int

const (
	rawMissing rawKind = iota
	rawEmpty
	rawValue
)

func classify(value any) rawKind {
	switch v := value.(type) {
	case nil:
		return rawMissing
	case string:
		if strings.TrimSpace(v) == "" {
			return rawEmpty
		}
	case json.Number:
		if strings.TrimSpace(string(v)) == "" {
			return rawEmpty
		}
	}
	return rawValue
}

// toNumber converts a decoded JSON value or a query string to a float.
// Booleans, objects and arrays are not numbers.
func toNumber(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case json.Number:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt64 parses integral values without going through float64 when possible,
// so large identifiers keep their exact value.
func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case json.Number:
		if n, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64); err == nil {
			return n, true
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
