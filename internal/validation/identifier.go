package validation

import (
	"fmt"
	"math"
	"strings"

	"eventmanager/internal/domain"
)

// Identifier validates a non-negative integer such as an entity id.
// Numeric strings ("5") and integral floats (5.0) are accepted.
func Identifier(field string, value any) (int64, []domain.Violation) {
	return identifier(field, field, value)
}

func identifier(field, label string, value any) (int64, []domain.Violation) {
	switch classify(value) {
	case rawMissing:
		return 0, violation(field, domain.CodeMissing, "%s is missing.", label)
	case rawEmpty:
		return 0, violation(field, domain.CodeEmpty, "%s must be non-empty.", label)
	}

	if n, ok := toInt64(value); ok {
		if n < 0 {
			return 0, violation(field, domain.CodeNegative, "%s must be positive.", label)
		}
		return n, nil
	}

	f, ok := toNumber(value)
	if !ok {
		return 0, violation(field, domain.CodeNotNumber, "%s must be a valid number.", label)
	}
	if f != math.Trunc(f) {
		return 0, violation(field, domain.CodeNotInteger, "%s must be an integer.", label)
	}
	if f < 0 {
		return 0, violation(field, domain.CodeNegative, "%s must be positive.", label)
	}
	if f >= math.MaxInt64 {
		return 0, violation(field, domain.CodeOutOfRange, "%s is too large.", label)
	}
	return int64(f), nil
}

// OptionalIdentifier validates a query parameter. An empty string means the filter is not set.
func OptionalIdentifier(field, raw string) (*int64, []domain.Violation) {
	if raw == "" {
		return nil, nil
	}
	id, violations := Identifier(field, raw)
	if len(violations) > 0 {
		return nil, violations
	}
	return &id, nil
}

// IdentifierList validates a comma-separated list of identifiers. Every element is checked
// and duplicates are dropped, keeping the first occurrence.
func IdentifierList(field, raw string) ([]int64, []domain.Violation) {
	if raw == "" {
		return nil, nil
	}
	var (
		ids        []int64
		violations []domain.Violation
		seen       = make(map[int64]struct{})
	)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		id, vs := identifier(field, fmt.Sprintf("%s value %q", field, part), part)
		if len(vs) > 0 {
			violations = append(violations, vs...)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(violations) > 0 {
		return nil, violations
	}
	return ids, nil
}

// PositiveInteger validates an integer that must be greater than zero, such as a seat count.
func PositiveInteger(field string, value any) (int64, []domain.Violation) {
	n, violations := Identifier(field, value)
	if len(violations) > 0 {
		return 0, violations
	}
	if n == 0 {
		return 0, violation(field, domain.CodeZero, "%s should be non-zero.", field)
	}
	return n, nil
}

func violation(field, code, format string, args ...any) []domain.Violation {
	return []domain.Violation{{Field: field, Code: code, Message: fmt.Sprintf(format, args...)}}
}
