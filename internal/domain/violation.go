package domain

import "strings"

// Violation codes.
const (
	CodeMissing           = "missing"
	CodeEmpty             = "empty"
	CodeNotString         = "not_string"
	CodeBlank             = "blank"
	CodeLength            = "length"
	CodeInvalidCharacter  = "invalid_character"
	CodeNotNumber         = "not_number"
	CodeNotInteger        = "not_integer"
	CodeNegative          = "negative"
	CodeOutOfRange        = "out_of_range"
	CodeZero              = "zero"
	CodeNotInFuture       = "not_in_future"
	CodeNotFound          = "not_found"
	CodeMutuallyExclusive = "mutually_exclusive"
	CodeInvalidValue      = "invalid_value"
)

// Violation describes one rejected field.
// swagger:model Violation
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors carries every violation found for a request.
// Kind is ErrValidation for malformed input and ErrNotFound for unresolved identifiers.
type FieldErrors struct {
	Kind       error
	Violations []Violation
}

func (e *FieldErrors) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return e.Kind.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *FieldErrors) Unwrap() error { return e.Kind }

// NewValidationError returns nil when there are no violations.
func NewValidationError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &FieldErrors{Kind: ErrValidation, Violations: violations}
}

// NewNotFoundError returns nil when every identifier resolved.
func NewNotFoundError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &FieldErrors{Kind: ErrNotFound, Violations: violations}
}
