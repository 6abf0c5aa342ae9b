package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventmanager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation list", domain.NewValidationError([]domain.Violation{{Field: "id"}}), http.StatusUnprocessableEntity, ErrCodeValidationFailed},
		{"not found list", domain.NewNotFoundError([]domain.Violation{{Field: "organizerID"}}), http.StatusNotFound, ErrCodeNotFound},
		{"not found rule", domain.NotFound("Event", 1), http.StatusNotFound, ErrCodeNotFound},
		{"conflict", domain.Conflict("taken"), http.StatusConflict, ErrCodeConflict},
		{"capacity", domain.CapacityReached(1, 2), http.StatusUnprocessableEntity, ErrCodeBusinessRule},
		{"dependents", domain.HasDependents("User", 1, 1, "reservations"), http.StatusUnprocessableEntity, ErrCodeBusinessRule},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, ErrCodeUnauthorized},
		{"unknown", assert.AnError, http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := StatusForError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestWriteServiceError_LogsInternalErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	req := httptest.NewRequest(http.MethodGet, "http://test/api/event", nil)
	rr := httptest.NewRecorder()

	WriteServiceError(rr, req, logger, assert.AnError)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var env APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	require.NotNil(t, env.Error)
	assert.Equal(t, internalErrorMessage, env.Error.Message)
	assert.Contains(t, buf.String(), "request failed")
	assert.Contains(t, buf.String(), assert.AnError.Error())
}

func TestWriteJSONEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusOK, map[string]int{"id": 1})
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":1}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	WriteJSONViolations(rr, http.StatusUnprocessableEntity, []domain.Violation{{Field: "name", Code: domain.CodeMissing, Message: "name is missing."}})
	assert.JSONEq(t, `{"data":null,"errors":[{"field":"name","code":"missing","message":"name is missing."}]}`, rr.Body.String())
}

type decodeTarget struct {
	ID   any `json:"id"`
	Name any `json:"name"`
}

type validatedTarget struct {
	Name string `json:"name"`
}

func (v validatedTarget) Validate() []string {
	if v.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    io.Reader
		dest    any
		wantOK  bool
		wantMsg string
	}{
		{"numbers stay raw", strings.NewReader(`{"id":12.0,"name":"x"}`), &decodeTarget{}, true, ""},
		{"empty body", strings.NewReader("  "), &decodeTarget{}, false, "request body is empty"},
		{"syntax error", strings.NewReader(`{"id":}`), &decodeTarget{}, false, "malformed JSON at offset"},
		{"truncated", strings.NewReader(`{"id":1`), &decodeTarget{}, false, "malformed JSON"},
		{"unknown field", strings.NewReader(`{"id":1,"extra":true}`), &decodeTarget{}, false, `unknown field "extra"`},
		{"not an object", strings.NewReader(`[1,2]`), &decodeTarget{}, false, "must be a JSON object"},
		{"trailing object", strings.NewReader(`{"id":1}{"id":2}`), &decodeTarget{}, false, "single JSON object"},
		{"validator runs", strings.NewReader(`{"name":""}`), &validatedTarget{}, false, "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "http://test/api/user/create", tt.body)
			rr := httptest.NewRecorder()

			ok := DecodeJSON(rr, req, tt.dest)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, json.Number("12.0"), tt.dest.(*decodeTarget).ID)
				return
			}
			require.Equal(t, http.StatusBadRequest, rr.Code)
			var env APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
			require.NotNil(t, env.Error)
			assert.Equal(t, ErrCodeBadRequest, env.Error.Code)
			assert.Contains(t, env.Error.Message, tt.wantMsg)
		})
	}
}

func TestQueryValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "http://test/api/user/delete?id=&other=1", nil)
	assert.Equal(t, "", QueryValue(req, "id"))
	assert.Nil(t, QueryValue(req, "missing"))
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		want  domain.PaginationParams
	}{
		{"", domain.PaginationParams{Page: 1, PageSize: 20}},
		{"page=3&page_size=10", domain.PaginationParams{Page: 3, PageSize: 10}},
		{"page=0&page_size=-1", domain.PaginationParams{Page: 1, PageSize: 20}},
		{"page=x&page_size=1000", domain.PaginationParams{Page: 1, PageSize: 100}},
		{"page=4611686018427387904", domain.PaginationParams{Page: domain.MaxPage, PageSize: 20}},
		{"page=99999999999999999999", domain.PaginationParams{Page: 1, PageSize: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://test/api/event?"+tt.query, nil)
			assert.Equal(t, tt.want, ParsePagination(req))
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, PaginationMeta{Page: 1, PageSize: 20, Total: 41, TotalPages: 3}, NewPaginationMeta(1, 20, 41))
	assert.Equal(t, 0, NewPaginationMeta(1, 0, 41).TotalPages)
}
