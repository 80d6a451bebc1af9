package timeentry

import (
	"encoding/json"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/model"
)

// RequiredFieldsMessage is returned when a create payload misses any field.
const RequiredFieldsMessage = "All fields are required: projectId, developerId, description, hours, date"

// ------------------------------------------------------------

// CreateTimeEntryRequest uses pointers so a zero value can be told apart
// from a missing field.
type CreateTimeEntryRequest struct {
	ProjectID   *int64   `json:"projectId"`
	DeveloperID *int64   `json:"developerId"`
	Description *string  `json:"description"`
	Hours       *float64 `json:"hours"`
	Date        *string  `json:"date"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var missing []errs.FieldError
	if r.ProjectID == nil {
		missing = append(missing, errs.FieldError{Field: "projectId", Error: "is required"})
	}
	if r.DeveloperID == nil {
		missing = append(missing, errs.FieldError{Field: "developerId", Error: "is required"})
	}
	if r.Description == nil {
		missing = append(missing, errs.FieldError{Field: "description", Error: "is required"})
	}
	if r.Hours == nil {
		missing = append(missing, errs.FieldError{Field: "hours", Error: "is required"})
	}
	if r.Date == nil {
		missing = append(missing, errs.FieldError{Field: "date", Error: "is required"})
	}

	if len(missing) > 0 {
		return errs.NewBadRequestError(RequiredFieldsMessage, true, nil, missing)
	}
	return nil
}

// ToTimeEntry must only be called after Validate succeeded.
func (r *CreateTimeEntryRequest) ToTimeEntry() *TimeEntry {
	return &TimeEntry{
		ProjectID:   *r.ProjectID,
		DeveloperID: *r.DeveloperID,
		Description: *r.Description,
		Hours:       *r.Hours,
		Date:        *r.Date,
	}
}

// ------------------------------------------------------------

type GetTimeEntryRequest = model.IDParam

type DeleteTimeEntryRequest = model.IDParam

// ListByDeveloperRequest binds /time-entries/by-developer/{id}.
type ListByDeveloperRequest = model.IDParam

// ListByProjectRequest binds /time-entries/by-project/{id}.
type ListByProjectRequest = model.IDParam

// ------------------------------------------------------------

type UpdateTimeEntryRequest struct {
	ID          int64    `param:"id" json:"-"`
	ProjectID   *int64   `json:"projectId"`
	DeveloperID *int64   `json:"developerId"`
	Description *string  `json:"description"`
	Hours       *float64 `json:"hours"`
	Date        *string  `json:"date"`

	keys int
}

func (r *UpdateTimeEntryRequest) Validate() error {
	return nil
}

// UnmarshalJSON also records how many keys the body object carried.
func (r *UpdateTimeEntryRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateTimeEntryRequest
	f := fields(*r)
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	keys, err := model.CountKeys(data)
	if err != nil {
		return err
	}
	*r = UpdateTimeEntryRequest(f)
	r.keys = keys
	return nil
}

// Empty reports an update that carried no data. A body with only unknown
// keys is not empty and leaves the record unchanged.
func (r *UpdateTimeEntryRequest) Empty() bool {
	return r.keys == 0 &&
		r.ProjectID == nil && r.DeveloperID == nil && r.Description == nil &&
		r.Hours == nil && r.Date == nil
}

func (r *UpdateTimeEntryRequest) Apply(t *TimeEntry) {
	if r.ProjectID != nil {
		t.ProjectID = *r.ProjectID
	}
	if r.DeveloperID != nil {
		t.DeveloperID = *r.DeveloperID
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Hours != nil {
		t.Hours = *r.Hours
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
}
