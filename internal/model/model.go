// Package model holds what the entity packages share.
//
// Each entity lives in its own subpackage with three parts: the stored
// record (db tags), its transport Response (camelCase JSON) and the request
// DTOs bound by handlers.
package model

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/timesheet/internal/errs"
)

// IDParam binds the {id} path segment.
type IDParam struct {
	ID int64 `param:"id" json:"-"`
}

// Validate is a no-op: a non-integer id already fails binding.
func (p *IDParam) Validate() error {
	return nil
}

// Timestamp returns nil for the zero time so it is omitted from JSON.
func Timestamp(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// MessageResponse is the body of successful deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// NoParams is the request of endpoints that bind nothing.
type NoParams struct{}

func (p *NoParams) Validate() error {
	return nil
}

// NoDataError is returned for an update whose body carried nothing.
func NoDataError() *errs.HTTPError {
	return errs.NewBadRequestError("No data provided", true, nil, nil)
}

// CountKeys returns how many top-level keys a JSON object holds.
// A null body counts as zero.
func CountKeys(data []byte) (int, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return 0, err
	}
	return len(keys), nil
}
