package service

import (
	"context"
	"slices"
	"time"

	"github.com/deppfellow/timesheet/internal/model/dashboard"
	"github.com/deppfellow/timesheet/internal/model/project"
	"github.com/deppfellow/timesheet/internal/model/timeentry"
	"github.com/shopspring/decimal"
)

// chartNameLimit is how many characters of a project name the charts show.
const chartNameLimit = 15

type DashboardService struct {
	developers DeveloperRepository
	projects   ProjectRepository
	entries    TimeEntryRepository
}

func NewDashboardService(developers DeveloperRepository, projects ProjectRepository, entries TimeEntryRepository) *DashboardService {
	return &DashboardService{developers: developers, projects: projects, entries: entries}
}

// scope loads the entries and projects a dashboard covers. With a developer
// filter, entries are that developer's and projects are those they logged
// time on.
func (s *DashboardService) scope(ctx context.Context, developerID *int64) ([]project.Project, []timeentry.TimeEntry, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	if developerID == nil {
		entries, err := s.entries.List(ctx)
		if err != nil {
			return nil, nil, err
		}
		return projects, entries, nil
	}

	entries, err := s.entries.ListByDeveloper(ctx, *developerID)
	if err != nil {
		return nil, nil, err
	}

	touched := make(map[int64]bool, len(entries))
	for _, e := range entries {
		touched[e.ProjectID] = true
	}
	projects = slices.DeleteFunc(projects, func(p project.Project) bool {
		return !touched[p.ID]
	})
	return projects, entries, nil
}

func sumHours(entries []timeentry.TimeEntry, keep func(timeentry.TimeEntry) bool) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if keep == nil || keep(e) {
			total = total.Add(decimal.NewFromFloat(e.Hours))
		}
	}
	return total
}

// Stats returns the headline numbers. totalValue is hours times the hourly
// rate of whoever logged them, rounded to cents.
func (s *DashboardService) Stats(ctx context.Context, developerID *int64) (*dashboard.StatsResponse, error) {
	projects, entries, err := s.scope(ctx, developerID)
	if err != nil {
		return nil, err
	}

	developers, err := s.developers.List(ctx)
	if err != nil {
		return nil, err
	}
	rates := make(map[int64]decimal.Decimal, len(developers))
	for _, d := range developers {
		rates[d.ID] = decimal.NewFromFloat(d.HourlyRate)
	}

	totalHours := decimal.Zero
	for _, p := range projects {
		totalHours = totalHours.Add(decimal.NewFromFloat(p.TotalHours))
	}
	usedHours := sumHours(entries, nil)

	totalValue := decimal.Zero
	for _, e := range entries {
		if rate, ok := rates[e.DeveloperID]; ok {
			totalValue = totalValue.Add(decimal.NewFromFloat(e.Hours).Mul(rate))
		}
	}

	return &dashboard.StatsResponse{
		TotalProjects:  len(projects),
		TotalHours:     totalHours.InexactFloat64(),
		UsedHours:      usedHours.InexactFloat64(),
		RemainingHours: totalHours.Sub(usedHours).InexactFloat64(),
		TotalValue:     totalValue.Round(2).InexactFloat64(),
	}, nil
}

// ChartData returns per-project progress, hours per developer and hours per day.
func (s *DashboardService) ChartData(ctx context.Context, developerID *int64) (*dashboard.ChartDataResponse, error) {
	projects, entries, err := s.scope(ctx, developerID)
	if err != nil {
		return nil, err
	}

	developers, err := s.developers.List(ctx)
	if err != nil {
		return nil, err
	}

	res := &dashboard.ChartDataResponse{
		ProjectsData:   make([]dashboard.ProjectChartItem, 0, len(projects)),
		DevelopersData: make([]dashboard.DeveloperChartItem, 0, len(developers)),
	}

	for _, p := range projects {
		used := sumHours(entries, func(e timeentry.TimeEntry) bool { return e.ProjectID == p.ID })
		total := decimal.NewFromFloat(p.TotalHours)

		var progress int64
		if total.IsPositive() {
			progress = used.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		}

		res.ProjectsData = append(res.ProjectsData, dashboard.ProjectChartItem{
			Name:           chartName(p.Name),
			TotalHours:     p.TotalHours,
			UsedHours:      used.InexactFloat64(),
			RemainingHours: total.Sub(used).InexactFloat64(),
			Progress:       progress,
		})
	}

	for _, d := range developers {
		hours := sumHours(entries, func(e timeentry.TimeEntry) bool { return e.DeveloperID == d.ID })
		if !hours.IsPositive() {
			continue
		}
		res.DevelopersData = append(res.DevelopersData, dashboard.DeveloperChartItem{
			Name:  d.Name,
			Hours: hours.InexactFloat64(),
			Value: hours.InexactFloat64(),
		})
	}

	res.LineData = dailyHours(entries)
	return res, nil
}

func chartName(name string) string {
	runes := []rune(name)
	if len(runes) <= chartNameLimit {
		return name
	}
	return string(runes[:chartNameLimit]) + "..."
}

// dailyHours totals hours per date, oldest first. Dates that don't parse
// as DD/MM/YYYY go last, in string order.
func dailyHours(entries []timeentry.TimeEntry) []dashboard.LineChartItem {
	totals := map[string]decimal.Decimal{}
	for _, e := range entries {
		totals[e.Date] = totals[e.Date].Add(decimal.NewFromFloat(e.Hours))
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	slices.SortFunc(dates, compareDates)

	out := make([]dashboard.LineChartItem, 0, len(dates))
	for _, date := range dates {
		out = append(out, dashboard.LineChartItem{Date: date, Hours: totals[date].InexactFloat64()})
	}
	return out
}

func compareDates(a, b string) int {
	ta, errA := time.Parse(timeentry.DateLayout, a)
	tb, errB := time.Parse(timeentry.DateLayout, b)

	switch {
	case errA == nil && errB == nil:
		if c := ta.Compare(tb); c != 0 {
			return c
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
