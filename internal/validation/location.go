package validation

import (
	"math"

	"eventmanager/internal/domain"
)

// Latitude validates a coordinate within [-90, 90].
func Latitude(field string, value any) (float64, []domain.Violation) {
	return coordinate(field, value, 90)
}

// Longitude validates a coordinate within [-180, 180].
func Longitude(field string, value any) (float64, []domain.Violation) {
	return coordinate(field, value, 180)
}

func coordinate(field string, value any, limit float64) (float64, []domain.Violation) {
	switch classify(value) {
	case rawMissing:
		return 0, violation(field, domain.CodeMissing, "%s is missing.", field)
	case rawEmpty:
		return 0, violation(field, domain.CodeEmpty, "%s must be non-empty.", field)
	}
	f, ok := toNumber(value)
	if !ok {
		return 0, violation(field, domain.CodeNotNumber, "%s must be a valid number.", field)
	}
	if math.Abs(f) > limit {
		return 0, violation(field, domain.CodeOutOfRange, "%s must be between %g and %g.", field, -limit, limit)
	}
	return f, nil
}

// Price validates a strictly positive amount. Fractions are allowed.
func Price(field string, value any) (float64, []domain.Violation) {
	switch classify(value) {
	case rawMissing:
		return 0, violation(field, domain.CodeMissing, "%s is missing.", field)
	case rawEmpty:
		return 0, violation(field, domain.CodeEmpty, "%s must be non-empty.", field)
	}
	f, ok := toNumber(value)
	if !ok {
		return 0, violation(field, domain.CodeNotNumber, "%s must be a valid number.", field)
	}
	if f < 0 {
		return 0, violation(field, domain.CodeNegative, "%s must be positive.", field)
	}
	if f == 0 {
		return 0, violation(field, domain.CodeZero, "%s should be non-zero.", field)
	}
	return f, nil
}
