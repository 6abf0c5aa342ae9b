package validation

import (
	"time"

	"eventmanager/internal/domain"
)

const (
	minSecondsTimestamp = 1_000_000_000
	maxSecondsTimestamp = 10_000_000_000
)

// NormalizeTimestamp converts a 10-digit epoch value from seconds to milliseconds.
// Any other value is assumed to be milliseconds already.
func NormalizeTimestamp(ts int64) int64 {
	if ts >= minSecondsTimestamp && ts < maxSecondsTimestamp {
		return ts * 1000
	}
	return ts
}

// Timestamp validates an epoch value and returns it normalized to milliseconds.
func Timestamp(field string, value any) (int64, []domain.Violation) {
	ts, violations := Identifier(field, value)
	if len(violations) > 0 {
		return 0, violations
	}
	return NormalizeTimestamp(ts), nil
}

// OptionalTimestamp validates a query parameter. An empty string means the filter is not set.
func OptionalTimestamp(field, raw string) (*int64, []domain.Violation) {
	if raw == "" {
		return nil, nil
	}
	ts, violations := Timestamp(field, raw)
	if len(violations) > 0 {
		return nil, violations
	}
	return &ts, nil
}

// Future checks that a normalized millisecond timestamp lies strictly after now.
func Future(field string, ts int64, now time.Time) []domain.Violation {
	if ts <= now.UnixMilli() {
		return violation(field, domain.CodeNotInFuture, "%s must be in the future.", field)
	}
	return nil
}
