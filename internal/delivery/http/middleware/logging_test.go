package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// capturingHandler records the last log record for assertions.
type capturingHandler struct {
	record slog.Record
}

func (h *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.record = r.Clone()
	return nil
}

func (h *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *capturingHandler) WithGroup(_ string) slog.Handler { return h }

func TestLoggingMiddleware(t *testing.T) {
	var cap capturingHandler
	logger := slog.New(&cap)

	tests := []struct {
		name          string
		handlerStatus int
		path          string
		method        string
		wantLevel     slog.Level
	}{
		{"ok status", http.StatusOK, "/api/event", http.MethodGet, slog.LevelInfo},
		{"unprocessable", http.StatusUnprocessableEntity, "/api/user/create", http.MethodPost, slog.LevelInfo},
		{"server error", http.StatusInternalServerError, "/api/event/create", http.MethodPost, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte("body"))
			})
			handler := RequestID(LoggingMiddleware(logger, next))
			req := httptest.NewRequest(tt.method, "http://test"+tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-42")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, "request", cap.record.Message)
			require.Equal(t, tt.wantLevel, cap.record.Level)
			attrs := make(map[string]slog.Value)
			cap.record.Attrs(func(a slog.Attr) bool {
				attrs[a.Key] = a.Value
				return true
			})
			require.Equal(t, tt.method, attrs["method"].String())
			require.Equal(t, tt.path, attrs["path"].String())
			require.Equal(t, int64(tt.handlerStatus), attrs["status"].Int64())
			require.Equal(t, int64(4), attrs["bytes"].Int64())
			require.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
			require.Equal(t, "req-42", attrs["request_id"].String())
			require.Equal(t, tt.handlerStatus, rr.Code)
		})
	}
}

func TestLoggingMiddleware_Subject(t *testing.T) {
	var cap capturingHandler
	logger := slog.New(&cap)
	protected := RequireAuth(&fakeTokenVerifier{subject: "operator"}, testLogger)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := LoggingMiddleware(logger, protected)

	subjectOf := func(authHeader string) (string, bool) {
		req := httptest.NewRequest(http.MethodPost, "http://test/api/event/create", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
		var subject string
		var found bool
		cap.record.Attrs(func(a slog.Attr) bool {
			if a.Key == "subject" {
				subject, found = a.Value.String(), true
			}
			return true
		})
		return subject, found
	}

	subject, found := subjectOf("Bearer good-token")
	require.True(t, found)
	require.Equal(t, "operator", subject)

	_, found = subjectOf("")
	require.False(t, found)
}
