package timeentry

import (
	"time"

	"github.com/deppfellow/timesheet/internal/model"
)

// DateLayout is the DD/MM/YYYY format entries are recorded in. It is a
// convention only; stored dates are not validated against it.
const DateLayout = "02/01/2006"

// TimeEntry is a row of the time_entries table.
type TimeEntry struct {
	ID          int64     `db:"id"`
	ProjectID   int64     `db:"project_id"`
	DeveloperID int64     `db:"developer_id"`
	Description string    `db:"description"`
	Hours       float64   `db:"hours"`
	Date        string    `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
}

type Response struct {
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"projectId"`
	DeveloperID int64      `json:"developerId"`
	Description string     `json:"description"`
	Hours       float64    `json:"hours"`
	Date        string     `json:"date"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

func (t *TimeEntry) ToResponse() Response {
	return Response{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		DeveloperID: t.DeveloperID,
		Description: t.Description,
		Hours:       t.Hours,
		Date:        t.Date,
		CreatedAt:   model.Timestamp(t.CreatedAt),
	}
}

func ToResponses(entries []TimeEntry) []Response {
	out := make([]Response, 0, len(entries))
	for i := range entries {
		out = append(out, entries[i].ToResponse())
	}
	return out
}
