package developer

import (
	"time"

	"github.com/deppfellow/timesheet/internal/model"
)

// Seniority levels in use. The column accepts any text.
const (
	SeniorityJunior = "junior"
	SeniorityPleno  = "pleno"
	SenioritySenior = "senior"
)

// Developer is a row of the developers table.
type Developer struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Seniority  string    `db:"seniority"`
	HourlyRate float64   `db:"hourly_rate"`
	CreatedAt  time.Time `db:"created_at"`
}

// Response is the transport record of a Developer.
type Response struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Seniority  string     `json:"seniority"`
	HourlyRate float64    `json:"hourlyRate"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

func (d *Developer) ToResponse() Response {
	return Response{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Seniority:  d.Seniority,
		HourlyRate: d.HourlyRate,
		CreatedAt:  model.Timestamp(d.CreatedAt),
	}
}

// ToResponses converts a slice, never returning nil.
func ToResponses(developers []Developer) []Response {
	out := make([]Response, 0, len(developers))
	for i := range developers {
		out = append(out, developers[i].ToResponse())
	}
	return out
}
