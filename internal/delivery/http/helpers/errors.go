package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventmanager/internal/domain"
)

const internalErrorMessage = "internal server error"

// StatusForError returns the HTTP status and error code for a service error.
func StatusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, ErrCodeValidationFailed
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrCodeConflict
	case errors.Is(err, domain.ErrCapacityReached), errors.Is(err, domain.ErrHasDependents):
		return http.StatusUnprocessableEntity, ErrCodeBusinessRule
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrCodeUnauthorized
	}
	return http.StatusInternalServerError, ErrCodeInternalError
}

// WriteServiceError maps err to a response. Field errors are written as a
// violation list, rule errors with their message. Anything else is logged and
// answered with a generic 500.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, code := StatusForError(err)

	var fieldErrs *domain.FieldErrors
	if errors.As(err, &fieldErrs) && status != http.StatusInternalServerError {
		WriteJSONViolations(w, status, fieldErrs.Violations)
		return
	}
	var ruleErr *domain.RuleError
	if errors.As(err, &ruleErr) && status != http.StatusInternalServerError {
		WriteJSONError(w, status, code, ruleErr.Message)
		return
	}
	if status == http.StatusUnauthorized {
		WriteJSONError(w, status, code, "invalid credentials")
		return
	}
	if status != http.StatusInternalServerError {
		WriteJSONError(w, status, code, err.Error())
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, internalErrorMessage)
}
