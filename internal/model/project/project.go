package project

import (
	"time"

	"github.com/deppfellow/timesheet/internal/model"
)

// Project is a row of the projects table.
//
// Cell, Client and Service are opaque business references, not foreign keys.
type Project struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	TotalHours  float64   `db:"total_hours"`
	Cell        *int64    `db:"cell"`
	Client      *int64    `db:"client"`
	Service     *int64    `db:"service"`
	CreatedAt   time.Time `db:"created_at"`
}

type Response struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	TotalHours  float64    `json:"totalHours"`
	Cell        *int64     `json:"cell"`
	Client      *int64     `json:"client"`
	Service     *int64     `json:"service"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

func (p *Project) ToResponse() Response {
	return Response{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		TotalHours:  p.TotalHours,
		Cell:        p.Cell,
		Client:      p.Client,
		Service:     p.Service,
		CreatedAt:   model.Timestamp(p.CreatedAt),
	}
}

func ToResponses(projects []Project) []Response {
	out := make([]Response, 0, len(projects))
	for i := range projects {
		out = append(out, projects[i].ToResponse())
	}
	return out
}
