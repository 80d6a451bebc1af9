package repository_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/deppfellow/timesheet/internal/database"
	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/model/developer"
	"github.com/deppfellow/timesheet/internal/model/project"
	"github.com/deppfellow/timesheet/internal/model/timeentry"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/deppfellow/timesheet/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// testDSNEnv points the integration tests at a disposable database. Every
// test resets the schema.
const testDSNEnv = "TIMESHEET_TEST_DATABASE_URL"

type fixture struct {
	db    *database.Database
	repos *repository.Repositories
}

func setup(t *testing.T) *fixture {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping database integration test", testDSNEnv)
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	if err := database.Reset(ctx, &logger, dsn); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	return &fixture{
		db: database.FromPool(pool, &logger),
		repos: &repository.Repositories{
			Developer: repository.NewDeveloperRepository(pool),
			Project:   repository.NewProjectRepository(pool),
			TimeEntry: repository.NewTimeEntryRepository(pool),
		},
	}
}

func (f *fixture) developer(t *testing.T, email string) *developer.Developer {
	t.Helper()
	d, err := f.repos.Developer.Create(context.Background(), &developer.Developer{
		Name: "Ana", Email: email, Seniority: developer.SeniorityJunior, HourlyRate: 50,
	})
	if err != nil {
		t.Fatalf("create developer: %v", err)
	}
	return d
}

func (f *fixture) project(t *testing.T) *project.Project {
	t.Helper()
	desc := ""
	p, err := f.repos.Project.Create(context.Background(), &project.Project{Name: "Portal", Description: &desc, TotalHours: 40})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func (f *fixture) entry(t *testing.T, projectID, developerID int64) *timeentry.TimeEntry {
	t.Helper()
	e, err := f.repos.TimeEntry.Create(context.Background(), &timeentry.TimeEntry{
		ProjectID: projectID, DeveloperID: developerID, Description: "x", Hours: 3, Date: "01/01/2025",
	})
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	return e
}

func TestDeveloperCRUD(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created := f.developer(t, "ana@x.com")
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("generated fields missing: %+v", created)
	}

	exists, err := f.repos.Developer.EmailExists(ctx, "ana@x.com")
	if err != nil || !exists {
		t.Fatalf("EmailExists = %v, %v", exists, err)
	}

	created.HourlyRate = 80
	updated, err := f.repos.Developer.Update(ctx, created)
	if err != nil {
		t.Fatal(err)
	}
	if updated.HourlyRate != 80 || updated.Email != "ana@x.com" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := f.repos.Developer.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.repos.Developer.GetByID(ctx, created.ID); !repository.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := f.repos.Developer.Delete(ctx, created.ID); !repository.IsNotFound(err) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}

func TestDuplicateEmailViolatesUniqueConstraint(t *testing.T) {
	f := setup(t)
	f.developer(t, "ana@x.com")

	_, err := f.repos.Developer.Create(context.Background(), &developer.Developer{Name: "Other", Email: "ana@x.com"})
	if err == nil {
		t.Fatal("expected unique violation")
	}

	var httpErr *errs.HTTPError
	if !errors.As(sqlerr.HandleError(err), &httpErr) || httpErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestDeletingProjectCascadesToTimeEntries(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	dev := f.developer(t, "ana@x.com")
	p := f.project(t)
	for range 3 {
		f.entry(t, p.ID, dev.ID)
	}

	if err := f.repos.Project.Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}

	entries, err := f.repos.TimeEntry.ListByProject(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected cascade, %d entries left", len(entries))
	}

	all, err := f.repos.TimeEntry.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no entries, got %d", len(all))
	}
}

func TestDeletingDeveloperCascadesToTimeEntries(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	dev := f.developer(t, "ana@x.com")
	other := f.developer(t, "bia@x.com")
	p := f.project(t)
	f.entry(t, p.ID, dev.ID)
	kept := f.entry(t, p.ID, other.ID)

	if err := f.repos.Developer.Delete(ctx, dev.ID); err != nil {
		t.Fatal(err)
	}

	entries, err := f.repos.TimeEntry.ListByDeveloper(ctx, dev.ID)
	if err != nil {
		t.Fatal(err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}

	remaining, err := f.repos.TimeEntry.ListByProject(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Fatalf("unexpected remaining entries: %+v", remaining)
	}
}

func TestTimeEntryWithMissingDeveloperFails(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	p := f.project(t)

	_, err := f.repos.TimeEntry.Create(ctx, &timeentry.TimeEntry{
		ProjectID: p.ID, DeveloperID: 9999, Description: "x", Hours: 1, Date: "01/01/2025",
	})
	if err == nil {
		t.Fatal("expected foreign key violation")
	}

	var httpErr *errs.HTTPError
	if !errors.As(sqlerr.HandleError(err), &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusInternalServerError || httpErr.Code != "DEVELOPER_NOT_FOUND" {
		t.Fatalf("unexpected mapping: %+v", httpErr)
	}

	entries, err := f.repos.TimeEntry.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("no row should have been created, got %d", len(entries))
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := f.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := f.repos.Developer.Create(ctx, &developer.Developer{Name: "Ana", Email: "ana@x.com"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	developers, err := f.repos.Developer.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(developers) != 0 {
		t.Fatalf("rollback failed, found %d developers", len(developers))
	}
}

func TestSeed(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	summary, err := f.db.Seed(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Developers != 3 || summary.Projects != 3 || summary.TimeEntries != 9 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	entries, err := f.repos.TimeEntry.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 9 {
		t.Fatalf("expected 9 entries, got %d", len(entries))
	}
}
