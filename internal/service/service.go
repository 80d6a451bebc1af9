// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data. Every mutation runs in one transaction.
package service

import (
	"context"

	"github.com/deppfellow/timesheet/internal/model/developer"
	"github.com/deppfellow/timesheet/internal/model/project"
	"github.com/deppfellow/timesheet/internal/model/timeentry"
)

// Transactor runs fn in a transaction that is rolled back when fn fails.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type DeveloperRepository interface {
	List(ctx context.Context) ([]developer.Developer, error)
	GetByID(ctx context.Context, id int64) (*developer.Developer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, d *developer.Developer) (*developer.Developer, error)
	Update(ctx context.Context, d *developer.Developer) (*developer.Developer, error)
	Delete(ctx context.Context, id int64) error
}

type ProjectRepository interface {
	List(ctx context.Context) ([]project.Project, error)
	GetByID(ctx context.Context, id int64) (*project.Project, error)
	Create(ctx context.Context, p *project.Project) (*project.Project, error)
	Update(ctx context.Context, p *project.Project) (*project.Project, error)
	Delete(ctx context.Context, id int64) error
}

type TimeEntryRepository interface {
	List(ctx context.Context) ([]timeentry.TimeEntry, error)
	ListByDeveloper(ctx context.Context, developerID int64) ([]timeentry.TimeEntry, error)
	ListByProject(ctx context.Context, projectID int64) ([]timeentry.TimeEntry, error)
	GetByID(ctx context.Context, id int64) (*timeentry.TimeEntry, error)
	Create(ctx context.Context, t *timeentry.TimeEntry) (*timeentry.TimeEntry, error)
	Update(ctx context.Context, t *timeentry.TimeEntry) (*timeentry.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
}

// WelcomeNotifier schedules the welcome email for a new developer.
type WelcomeNotifier interface {
	EnqueueDeveloperWelcome(ctx context.Context, email, name string) error
}
