package validation

import "eventmanager/internal/domain"

// Collector accumulates violations across fields. Checks on different fields never short-circuit each other.
type Collector struct {
	violations []domain.Violation
}

func (c *Collector) Add(violations []domain.Violation) {
	c.violations = append(c.violations, violations...)
}

func (c *Collector) Violations() []domain.Violation {
	return c.violations
}

// Err returns a validation error holding every collected violation, or nil.
func (c *Collector) Err() error {
	return domain.NewValidationError(c.violations)
}

// OptionalBool validates a "true"/"false" query parameter. An empty string means not set.
func OptionalBool(field, raw string) (*bool, []domain.Violation) {
	if raw == "" {
		return nil, nil
	}
	switch raw {
	case "true", "false":
		b := raw == "true"
		return &b, nil
	default:
		return nil, violation(field, domain.CodeInvalidValue, "%s must be either true or false.", field)
	}
}

// Exclusive reports a violation when both parameters are set.
func Exclusive(first, firstRaw, second, secondRaw string) []domain.Violation {
	if firstRaw != "" && secondRaw != "" {
		return violation(first, domain.CodeMutuallyExclusive,
			"The %s and %s parameters may not be used at the same time.", first, second)
	}
	return nil
}
