// Package dashboard holds the aggregated views over projects, developers
// and time entries.
package dashboard

import (
	"strconv"

	"github.com/deppfellow/timesheet/internal/validation"
)

type StatsResponse struct {
	TotalProjects  int     `json:"totalProjects"`
	TotalHours     float64 `json:"totalHours"`
	UsedHours      float64 `json:"usedHours"`
	RemainingHours float64 `json:"remainingHours"`
	TotalValue     float64 `json:"totalValue"`
}

type ProjectChartItem struct {
	Name           string  `json:"name"`
	TotalHours     float64 `json:"totalHours"`
	UsedHours      float64 `json:"usedHours"`
	RemainingHours float64 `json:"remainingHours"`
	Progress       int64   `json:"progress"`
}

type DeveloperChartItem struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
	Value float64 `json:"value"`
}

type LineChartItem struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type ChartDataResponse struct {
	ProjectsData   []ProjectChartItem   `json:"projectsData"`
	DevelopersData []DeveloperChartItem `json:"developersData"`
	LineData       []LineChartItem      `json:"lineData"`
}

// ------------------------------------------------------------

// Query binds the optional ?developerId= filter.
type Query struct {
	DeveloperIDParam string `query:"developerId" json:"-"`

	developerID *int64
}

func (q *Query) Validate() error {
	q.developerID = nil
	if q.DeveloperIDParam == "" {
		return nil
	}

	id, err := strconv.ParseInt(q.DeveloperIDParam, 10, 64)
	if err != nil {
		return validation.CustomValidationErrors{
			{Field: "developerId", Message: "must be an integer"},
		}
	}
	q.developerID = &id
	return nil
}

// DeveloperID is the parsed filter, nil when absent. Valid after Validate.
func (q *Query) DeveloperID() *int64 {
	return q.developerID
}
