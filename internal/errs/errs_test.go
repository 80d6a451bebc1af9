package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	custom := "DEVELOPER_ALREADY_EXISTS"

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"bad request custom code", NewBadRequestError("dup", true, &custom, nil), http.StatusBadRequest, custom},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too many", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError("boom", nil), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.Status, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestInternalServerErrorKeepsRawMessage(t *testing.T) {
	err := NewInternalServerError("connection refused", nil)
	if err.Error() != "connection refused" {
		t.Fatalf("message = %q", err.Error())
	}

	if got := NewInternalServerError("", nil).Message; got != "Internal Server Error" {
		t.Fatalf("empty message fallback = %q", got)
	}
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFoundError("Developer not found", true, nil))

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("errors.As did not find *HTTPError")
	}
	if httpErr.Status != http.StatusNotFound {
		t.Fatalf("status = %d", httpErr.Status)
	}
	if !errors.Is(wrapped, &HTTPError{}) {
		t.Fatal("errors.Is should match any *HTTPError")
	}
}

func TestWithMessageCopies(t *testing.T) {
	base := NewBadRequestError("original", false, nil, []FieldError{{Field: "name", Error: "is required"}})
	copied := base.WithMessage("changed")

	if base.Message != "original" {
		t.Fatal("WithMessage mutated the receiver")
	}
	if copied.Message != "changed" || len(copied.Errors) != 1 {
		t.Fatalf("unexpected copy: %+v", copied)
	}
}
