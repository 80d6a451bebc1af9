package service

import (
	"github.com/deppfellow/timesheet/internal/lib/job"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/deppfellow/timesheet/internal/server"
)

type Services struct {
	Developer *DeveloperService
	Project   *ProjectService
	TimeEntry *TimeEntryService
	Dashboard *DashboardService
	Job       *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier WelcomeNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Developer: NewDeveloperService(s.DB, repos.Developer, notifier, s.Logger),
		Project:   NewProjectService(s.DB, repos.Project, s.Logger),
		TimeEntry: NewTimeEntryService(s.DB, repos.TimeEntry, s.Logger),
		Dashboard: NewDashboardService(repos.Developer, repos.Project, repos.TimeEntry),
		Job:       s.Job,
	}, nil
}
