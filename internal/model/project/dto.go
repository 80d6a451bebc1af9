package project

import (
	"encoding/json"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/validation"
)

// ------------------------------------------------------------

type CreateProjectRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	TotalHours  *float64 `json:"totalHours"`
	Cell        *int64   `json:"cell"`
	Client      *int64   `json:"client"`
	Service     *int64   `json:"service"`
}

func (r *CreateProjectRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return validation.ToHTTPError(err).WithMessage("Project name is required")
	}
	return nil
}

// ToProject applies defaults: empty description, zero total hours.
func (r *CreateProjectRequest) ToProject() *Project {
	description := ""
	if r.Description != nil {
		description = *r.Description
	}

	p := &Project{
		Name:        r.Name,
		Description: &description,
		Cell:        r.Cell,
		Client:      r.Client,
		Service:     r.Service,
	}
	if r.TotalHours != nil {
		p.TotalHours = *r.TotalHours
	}
	return p
}

// ------------------------------------------------------------

type GetProjectRequest = model.IDParam

type DeleteProjectRequest = model.IDParam

// ------------------------------------------------------------

type UpdateProjectRequest struct {
	ID          int64    `param:"id" json:"-"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	TotalHours  *float64 `json:"totalHours"`
	Cell        *int64   `json:"cell"`
	Client      *int64   `json:"client"`
	Service     *int64   `json:"service"`

	keys int
}

func (r *UpdateProjectRequest) Validate() error {
	return nil
}

// UnmarshalJSON also records how many keys the body object carried.
func (r *UpdateProjectRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateProjectRequest
	f := fields(*r)
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	keys, err := model.CountKeys(data)
	if err != nil {
		return err
	}
	*r = UpdateProjectRequest(f)
	r.keys = keys
	return nil
}

// Empty reports an update that carried no data. A body with only unknown
// keys is not empty and leaves the record unchanged.
func (r *UpdateProjectRequest) Empty() bool {
	return r.keys == 0 &&
		r.Name == nil && r.Description == nil && r.TotalHours == nil &&
		r.Cell == nil && r.Client == nil && r.Service == nil
}

func (r *UpdateProjectRequest) Apply(p *Project) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.TotalHours != nil {
		p.TotalHours = *r.TotalHours
	}
	if r.Cell != nil {
		p.Cell = r.Cell
	}
	if r.Client != nil {
		p.Client = r.Client
	}
	if r.Service != nil {
		p.Service = r.Service
	}
}
