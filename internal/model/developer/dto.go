package developer

import (
	"encoding/json"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/validation"
)

// ------------------------------------------------------------

type CreateDeveloperRequest struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required"`
	Seniority  *string  `json:"seniority"`
	HourlyRate *float64 `json:"hourlyRate"`
}

func (r *CreateDeveloperRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return validation.ToHTTPError(err).WithMessage("Name and email are required")
	}
	return nil
}

// ToDeveloper applies defaults: seniority junior, hourly rate 0.
func (r *CreateDeveloperRequest) ToDeveloper() *Developer {
	d := &Developer{
		Name:      r.Name,
		Email:     r.Email,
		Seniority: SeniorityJunior,
	}
	if r.Seniority != nil {
		d.Seniority = *r.Seniority
	}
	if r.HourlyRate != nil {
		d.HourlyRate = *r.HourlyRate
	}
	return d
}

// ------------------------------------------------------------

type GetDeveloperRequest = model.IDParam

type DeleteDeveloperRequest = model.IDParam

// ------------------------------------------------------------

// UpdateDeveloperRequest is a partial update; nil fields keep their value.
type UpdateDeveloperRequest struct {
	ID         int64    `param:"id" json:"-"`
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Seniority  *string  `json:"seniority"`
	HourlyRate *float64 `json:"hourlyRate"`

	keys int
}

func (r *UpdateDeveloperRequest) Validate() error {
	return nil
}

// UnmarshalJSON also records how many keys the body object carried.
func (r *UpdateDeveloperRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateDeveloperRequest
	f := fields(*r)
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	keys, err := model.CountKeys(data)
	if err != nil {
		return err
	}
	*r = UpdateDeveloperRequest(f)
	r.keys = keys
	return nil
}

// Empty reports an update that carried no data. A body with only unknown
// keys is not empty and leaves the record unchanged.
func (r *UpdateDeveloperRequest) Empty() bool {
	return r.keys == 0 &&
		r.Name == nil && r.Email == nil && r.Seniority == nil && r.HourlyRate == nil
}

// Apply copies the provided fields onto d.
func (r *UpdateDeveloperRequest) Apply(d *Developer) {
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.Email != nil {
		d.Email = *r.Email
	}
	if r.Seniority != nil {
		d.Seniority = *r.Seniority
	}
	if r.HourlyRate != nil {
		d.HourlyRate = *r.HourlyRate
	}
}
