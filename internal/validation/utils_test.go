package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/labstack/echo/v4"
)

type samplePayload struct {
	ID    int64   `param:"id"`
	Name  string  `json:"name" validate:"required"`
	Hours float64 `json:"hours"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

type customPayload struct {
	Name string `json:"name"`
}

func (p *customPayload) Validate() error {
	if p.Name == "" {
		return CustomValidationErrors{{Field: "name", Message: "is required"}}
	}
	return nil
}

type overridePayload struct{}

func (p *overridePayload) Validate() error {
	return errs.NewBadRequestError("No data provided", true, nil, nil)
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func badRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", httpErr.Status)
	}
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		var p samplePayload
		if err := BindAndValidate(newContext(http.MethodPost, `{"name":"Ana","hours":2}`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Ana" || p.Hours != 2 {
			t.Fatalf("payload not bound: %+v", p)
		}
	})

	t.Run("tag failures become field errors", func(t *testing.T) {
		var p samplePayload
		httpErr := badRequest(t, BindAndValidate(newContext(http.MethodPost, `{"hours":-1}`), &p))

		if httpErr.Message != "Validation failed" {
			t.Errorf("message = %q", httpErr.Message)
		}
		got := map[string]string{}
		for _, fe := range httpErr.Errors {
			got[fe.Field] = fe.Error
		}
		if got["name"] != "is required" {
			t.Errorf("name error = %q", got["name"])
		}
		if len(got) != 1 {
			t.Errorf("errors = %+v", httpErr.Errors)
		}
	})

	t.Run("custom errors", func(t *testing.T) {
		var p customPayload
		httpErr := badRequest(t, BindAndValidate(newContext(http.MethodPost, `{}`), &p))
		if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "name" {
			t.Fatalf("errors = %+v", httpErr.Errors)
		}
	})

	t.Run("http error passes through", func(t *testing.T) {
		var p overridePayload
		httpErr := badRequest(t, BindAndValidate(newContext(http.MethodPut, `{}`), &p))
		if httpErr.Message != "No data provided" {
			t.Fatalf("message = %q", httpErr.Message)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		var p samplePayload
		httpErr := badRequest(t, BindAndValidate(newContext(http.MethodPost, `{"name":`), &p))
		if httpErr.Message == "" {
			t.Fatal("expected a bind error message")
		}
	})

	t.Run("bind failures name the field", func(t *testing.T) {
		tests := []struct {
			name    string
			method  string
			body    string
			param   string
			wantMsg string
		}{
			{"non-integer path id", http.MethodGet, "", "abc", "invalid value for id"},
			{"overflowing path id", http.MethodGet, "", "99999999999999999999", "invalid value for id"},
			{"wrong json type", http.MethodPost, `{"hours":"two"}`, "1", "invalid value for hours"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c := newContext(tt.method, tt.body)
				c.SetParamNames("id")
				c.SetParamValues(tt.param)

				var p samplePayload
				httpErr := badRequest(t, BindAndValidate(c, &p))
				if httpErr.Message != tt.wantMsg {
					t.Fatalf("message = %q, want %q", httpErr.Message, tt.wantMsg)
				}
			})
		}
	})
}

func TestExtractValidationErrorFallback(t *testing.T) {
	type lengthPayload struct {
		Code string `validate:"len=3"`
	}

	msg, fieldErrors := extractValidationError(Struct(&lengthPayload{Code: "ab"}))
	if msg != "Validation failed" {
		t.Fatalf("message = %q", msg)
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "code" || fieldErrors[0].Error != "code: len:3" {
		t.Fatalf("errors = %+v", fieldErrors)
	}
}
