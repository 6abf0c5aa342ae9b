package helpers

import (
	"encoding/json"
	"net/http"

	"eventmanager/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeBusinessRule     = "business_rule"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeUnavailable      = "unavailable"
	ErrCodeInternalError    = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success only Data is set. A single failure sets Error; a request with
// several offending fields sets Errors instead.
// swagger:model APIResponse
type APIResponse struct {
	Data   any                `json:"data"`
	Error  *APIError          `json:"error,omitempty"`
	Errors []domain.Violation `json:"errors,omitempty"`
}

// StatusResponse is the body of acknowledgments without a record, e.g. deletes.
type StatusResponse struct {
	Status string `json:"status"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError writes an APIResponse carrying a single error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}

// WriteJSONViolations writes an APIResponse carrying the list of field violations.
func WriteJSONViolations(w http.ResponseWriter, statusCode int, violations []domain.Violation) {
	writeJSON(w, statusCode, APIResponse{Errors: violations})
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
