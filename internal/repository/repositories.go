package repository

import (
	"github.com/deppfellow/timesheet/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Developer *DeveloperRepository
	Project   *ProjectRepository
	TimeEntry *TimeEntryRepository
}

// NewRepositories builds every repository on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool
	return &Repositories{
		Developer: NewDeveloperRepository(pool),
		Project:   NewProjectRepository(pool),
		TimeEntry: NewTimeEntryRepository(pool),
	}
}
