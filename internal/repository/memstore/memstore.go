// Package memstore is an in-memory implementation of the repositories.
//
// It mirrors the PostgreSQL schema closely enough for service and handler
// tests: generated ids, the unique email constraint, foreign keys with
// ON DELETE CASCADE, and transactions that roll back on error. Constraint
// failures are reported as *pgconn.PgError so sqlerr maps them exactly as
// it maps the real database.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/deppfellow/timesheet/internal/model/developer"
	"github.com/deppfellow/timesheet/internal/model/project"
	"github.com/deppfellow/timesheet/internal/model/timeentry"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

type state struct {
	developers  map[int64]developer.Developer
	projects    map[int64]project.Project
	timeEntries map[int64]timeentry.TimeEntry
}

func (s state) clone() state {
	c := s
	c.developers = maps.Clone(s.developers)
	c.projects = maps.Clone(s.projects)
	c.timeEntries = maps.Clone(s.timeEntries)
	return c
}

// Store holds every table. The zero value is not usable; call New.
//
// Id sequences are not rolled back, matching Postgres sequences.
type Store struct {
	mu    sync.Mutex
	txMu  sync.Mutex
	state state
	now   func() time.Time

	developerSeq int64
	projectSeq   int64
	entrySeq     int64

	Developers  *DeveloperRepository
	Projects    *ProjectRepository
	TimeEntries *TimeEntryRepository
}

func New() *Store {
	s := &Store{
		state: state{
			developers:  map[int64]developer.Developer{},
			projects:    map[int64]project.Project{},
			timeEntries: map[int64]timeentry.TimeEntry{},
		},
		now: time.Now,
	}
	s.Developers = &DeveloperRepository{s: s}
	s.Projects = &ProjectRepository{s: s}
	s.TimeEntries = &TimeEntryRepository{s: s}
	return s
}

type txKey struct{}

// WithTx runs fn and restores the previous state if it fails or panics.
//
// Transactions are serialized; nested calls join the outer one.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.state.clone()
	s.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}
		if err != nil {
			s.restore(snapshot)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, true))
}

func (s *Store) restore(snapshot state) {
	s.mu.Lock()
	s.state = snapshot
	s.mu.Unlock()
}

func sortedValues[T any](m map[int64]T, keep func(T) bool) []T {
	keys := slices.Sorted(maps.Keys(m))
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		if keep == nil || keep(m[k]) {
			out = append(out, m[k])
		}
	}
	return out
}

func uniqueViolation(table, constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "` + constraint + `"`,
		TableName:      table,
		ConstraintName: constraint,
	}
}

func foreignKeyViolation(table, constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        `insert or update on table "` + table + `" violates foreign key constraint "` + constraint + `"`,
		TableName:      table,
		ConstraintName: constraint,
	}
}

// ------------------------------------------------------------

type DeveloperRepository struct {
	s *Store
}

func (r *DeveloperRepository) List(_ context.Context) ([]developer.Developer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.state.developers, nil), nil
}

func (r *DeveloperRepository) GetByID(_ context.Context, id int64) (*developer.Developer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.state.developers[id]
	if !ok {
		return nil, repository.NotFound("developers")
	}
	return &d, nil
}

func (r *DeveloperRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.emailTaken(email, 0), nil
}

// emailTaken must be called with mu held.
func (r *DeveloperRepository) emailTaken(email string, exceptID int64) bool {
	for id, d := range r.s.state.developers {
		if id != exceptID && d.Email == email {
			return true
		}
	}
	return false
}

func (r *DeveloperRepository) Create(_ context.Context, d *developer.Developer) (*developer.Developer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTaken(d.Email, 0) {
		return nil, uniqueViolation("developers", "developers_email_key")
	}

	r.s.developerSeq++
	created := *d
	created.ID = r.s.developerSeq
	created.CreatedAt = r.s.now()
	r.s.state.developers[created.ID] = created
	return &created, nil
}

func (r *DeveloperRepository) Update(_ context.Context, d *developer.Developer) (*developer.Developer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.state.developers[d.ID]
	if !ok {
		return nil, repository.NotFound("developers")
	}
	if r.emailTaken(d.Email, d.ID) {
		return nil, uniqueViolation("developers", "developers_email_key")
	}

	updated := *d
	updated.CreatedAt = current.CreatedAt
	r.s.state.developers[d.ID] = updated
	return &updated, nil
}

func (r *DeveloperRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.state.developers[id]; !ok {
		return repository.NotFound("developers")
	}
	delete(r.s.state.developers, id)
	maps.DeleteFunc(r.s.state.timeEntries, func(_ int64, e timeentry.TimeEntry) bool {
		return e.DeveloperID == id
	})
	return nil
}

// ------------------------------------------------------------

type ProjectRepository struct {
	s *Store
}

func (r *ProjectRepository) List(_ context.Context) ([]project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.state.projects, nil), nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id int64) (*project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.state.projects[id]
	if !ok {
		return nil, repository.NotFound("projects")
	}
	return &p, nil
}

func (r *ProjectRepository) Create(_ context.Context, p *project.Project) (*project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.projectSeq++
	created := *p
	created.ID = r.s.projectSeq
	created.CreatedAt = r.s.now()
	r.s.state.projects[created.ID] = created
	return &created, nil
}

func (r *ProjectRepository) Update(_ context.Context, p *project.Project) (*project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.state.projects[p.ID]
	if !ok {
		return nil, repository.NotFound("projects")
	}

	updated := *p
	updated.CreatedAt = current.CreatedAt
	r.s.state.projects[p.ID] = updated
	return &updated, nil
}

func (r *ProjectRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.state.projects[id]; !ok {
		return repository.NotFound("projects")
	}
	delete(r.s.state.projects, id)
	maps.DeleteFunc(r.s.state.timeEntries, func(_ int64, e timeentry.TimeEntry) bool {
		return e.ProjectID == id
	})
	return nil
}

// ------------------------------------------------------------

type TimeEntryRepository struct {
	s *Store
}

func (r *TimeEntryRepository) List(_ context.Context) ([]timeentry.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.state.timeEntries, nil), nil
}

func (r *TimeEntryRepository) ListByDeveloper(_ context.Context, developerID int64) ([]timeentry.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.state.timeEntries, func(e timeentry.TimeEntry) bool {
		return e.DeveloperID == developerID
	}), nil
}

func (r *TimeEntryRepository) ListByProject(_ context.Context, projectID int64) ([]timeentry.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.state.timeEntries, func(e timeentry.TimeEntry) bool {
		return e.ProjectID == projectID
	}), nil
}

func (r *TimeEntryRepository) GetByID(_ context.Context, id int64) (*timeentry.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.state.timeEntries[id]
	if !ok {
		return nil, repository.NotFound("time_entries")
	}
	return &e, nil
}

// checkReferences must be called with mu held.
func (r *TimeEntryRepository) checkReferences(e *timeentry.TimeEntry) error {
	if _, ok := r.s.state.projects[e.ProjectID]; !ok {
		return foreignKeyViolation("time_entries", "time_entries_project_id_fkey")
	}
	if _, ok := r.s.state.developers[e.DeveloperID]; !ok {
		return foreignKeyViolation("time_entries", "time_entries_developer_id_fkey")
	}
	return nil
}

func (r *TimeEntryRepository) Create(_ context.Context, e *timeentry.TimeEntry) (*timeentry.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkReferences(e); err != nil {
		return nil, err
	}

	r.s.entrySeq++
	created := *e
	created.ID = r.s.entrySeq
	created.CreatedAt = r.s.now()
	r.s.state.timeEntries[created.ID] = created
	return &created, nil
}

func (r *TimeEntryRepository) Update(_ context.Context, e *timeentry.TimeEntry) (*timeentry.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.state.timeEntries[e.ID]
	if !ok {
		return nil, repository.NotFound("time_entries")
	}
	if err := r.checkReferences(e); err != nil {
		return nil, err
	}

	updated := *e
	updated.CreatedAt = current.CreatedAt
	r.s.state.timeEntries[e.ID] = updated
	return &updated, nil
}

func (r *TimeEntryRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.state.timeEntries[id]; !ok {
		return repository.NotFound("time_entries")
	}
	delete(r.s.state.timeEntries, id)
	return nil
}
