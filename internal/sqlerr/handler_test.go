package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name: "unique email",
			err: &pgconn.PgError{
				Code:           "23505",
				Severity:       "ERROR",
				Message:        `duplicate key value violates unique constraint "developers_email_key"`,
				TableName:      "developers",
				ConstraintName: "developers_email_key",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "DEVELOPER_ALREADY_EXISTS",
			wantMessage: "A developer with this Email already exists",
		},
		{
			name: "missing developer reference",
			err: fmt.Errorf("insert time entry: %w", &pgconn.PgError{
				Code:           "23503",
				Severity:       "ERROR",
				Message:        `insert or update on table "time_entries" violates foreign key constraint "time_entries_developer_id_fkey"`,
				TableName:      "time_entries",
				ConstraintName: "time_entries_developer_id_fkey",
			}),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DEVELOPER_NOT_FOUND",
			wantMessage: "The referenced developer does not exist",
		},
		{
			name: "not null",
			err: &pgconn.PgError{
				Code:       "23502",
				Severity:   "ERROR",
				TableName:  "time_entries",
				ColumnName: "description",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "TIME_ENTRY_REQUIRED",
			wantMessage: "The Description is required",
		},
		{
			name: "date too long",
			err: &pgconn.PgError{
				Code:      "22001",
				Severity:  "ERROR",
				TableName: "time_entries",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "TIME_ENTRY_INVALID",
			wantMessage: "One or more values do not meet required conditions",
		},
		{
			name:        "unknown postgres error keeps raw message",
			err:         &pgconn.PgError{Code: "57014", Severity: "ERROR", Message: "canceling statement due to statement timeout"},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "canceling statement due to statement timeout",
		},
		{
			name:        "no rows with table hint",
			err:         fmt.Errorf("table:developers: %w", pgx.ErrNoRows),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Developer not found",
		},
		{
			name:        "no rows for multi-word table",
			err:         fmt.Errorf("table:time_entries: %w", pgx.ErrNoRows),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Time Entry not found",
		},
		{
			name:        "no rows without hint",
			err:         pgx.ErrNoRows,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
		{
			name:        "unexpected error",
			err:         errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "dial tcp 127.0.0.1:5432: connect: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(tt.err))

			if httpErr.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", httpErr.Status, tt.wantStatus)
			}
			if httpErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", httpErr.Code, tt.wantCode)
			}
			if httpErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", httpErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewBadRequestError("Email already registered", true, nil, nil)
	if got := HandleError(original); got != original {
		t.Fatalf("HandleError re-wrapped an HTTPError: %v", got)
	}
	if HandleError(nil) != nil {
		t.Fatal("HandleError(nil) should be nil")
	}
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23503", Severity: "ERROR"})
	wrapped := fmt.Errorf("repo: %w", converted)

	if got := ErrCode(wrapped); got != ForeignKeyViolation {
		t.Fatalf("ErrCode = %q, want %q", got, ForeignKeyViolation)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Fatalf("ErrCode(plain) = %q, want %q", got, Other)
	}

	var pgErr *pgconn.PgError
	if !errors.As(wrapped, &pgErr) {
		t.Fatal("converted error should unwrap to the driver error")
	}
}

func TestSingularize(t *testing.T) {
	tests := map[string]string{
		"developers":   "developer",
		"projects":     "project",
		"time_entries": "time_entry",
		"s":            "s",
		"staff":        "staff",
	}
	for in, want := range tests {
		if got := singularize(in); got != want {
			t.Errorf("singularize(%q) = %q, want %q", in, got, want)
		}
	}
}
