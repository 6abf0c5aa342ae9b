package controllers

import (
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
)

// DeleteSuccessResponse is the success response envelope for every delete endpoint (200).
type DeleteSuccessResponse struct {
	Data  helpers.StatusResponse `json:"data"`
	Error *helpers.APIError      `json:"error,omitempty"`
}

// ValidationFailureResponse documents the 422/404 body listing every offending field.
type ValidationFailureResponse struct {
	Data   any                      `json:"data"`
	Errors []ViolationDocumentation `json:"errors"`
}

// ViolationDocumentation mirrors domain.Violation for the API docs.
type ViolationDocumentation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeDeleted(w http.ResponseWriter) {
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.StatusResponse{Status: "OK"})
}
