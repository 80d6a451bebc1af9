package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/timesheet/internal/config"
	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(rateLimit config.RateLimitConfig) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Logger: &logger,
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          rateLimit,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	m := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.RateLimit.Limit(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
	)
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	e := newTestEcho(newTestServer(config.RateLimitConfig{}))

	e.GET("/http-error", func(c echo.Context) error {
		return errs.NewBadRequestError("Name and email are required", true, nil,
			[]errs.FieldError{{Field: "name", Error: "is required"}})
	})
	e.GET("/missing", func(c echo.Context) error {
		return fmt.Errorf("table:projects: %w", pgx.ErrNoRows)
	})
	e.GET("/fk", func(c echo.Context) error {
		return &pgconn.PgError{
			Code:           "23503",
			Severity:       "ERROR",
			TableName:      "time_entries",
			ConstraintName: "time_entries_project_id_fkey",
		}
	})
	e.GET("/raw", func(c echo.Context) error {
		return errors.New("connection reset by peer")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	tests := []struct {
		path        string
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"/http-error", http.StatusBadRequest, "BAD_REQUEST", "Name and email are required"},
		{"/missing", http.StatusNotFound, "NOT_FOUND", "Project not found"},
		{"/fk", http.StatusInternalServerError, "PROJECT_NOT_FOUND", "The referenced project does not exist"},
		{"/raw", http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "connection reset by peer"},
		{"/nowhere", http.StatusNotFound, "NOT_FOUND", "Route not found"},
		{"/panic", http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			body := decodeError(t, rec)
			if body.Status != tt.wantStatus || body.Code != tt.wantCode || body.Message != tt.wantMessage {
				t.Fatalf("body = %+v", body)
			}
		})
	}
}

func TestGlobalErrorHandlerKeepsFieldErrors(t *testing.T) {
	e := newTestEcho(newTestServer(config.RateLimitConfig{}))
	e.POST("/x", func(c echo.Context) error {
		return errs.NewBadRequestError("Name and email are required", true, nil,
			[]errs.FieldError{{Field: "name", Error: "is required"}, {Field: "email", Error: "is required"}})
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))

	body := decodeError(t, rec)
	if !body.Override || len(body.Errors) != 2 || body.Errors[1].Field != "email" {
		t.Fatalf("body = %+v", body)
	}
}

func TestRequestID(t *testing.T) {
	e := newTestEcho(newTestServer(config.RateLimitConfig{}))
	e.GET("/id", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/id", nil))

		id := rec.Header().Get(RequestIDHeader)
		if id == "" || id != rec.Body.String() {
			t.Fatalf("header %q, body %q", id, rec.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Fatalf("request id = %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	e := newTestEcho(newTestServer(config.RateLimitConfig{Rate: 1, Burst: 2}))
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent {
		t.Fatalf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %v", codes)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	e := newTestEcho(newTestServer(config.RateLimitConfig{}))
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	for i := range 20 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
}
