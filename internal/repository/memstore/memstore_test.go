package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/timesheet/internal/model/developer"
	"github.com/deppfellow/timesheet/internal/model/project"
	"github.com/deppfellow/timesheet/internal/model/timeentry"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/deppfellow/timesheet/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
)

func seed(t *testing.T, s *Store) (*developer.Developer, *project.Project) {
	t.Helper()
	ctx := context.Background()

	d, err := s.Developers.Create(ctx, &developer.Developer{Name: "Ana", Email: "ana@x.com"})
	if err != nil {
		t.Fatal(err)
	}
	p, err := s.Projects.Create(ctx, &project.Project{Name: "Portal"})
	if err != nil {
		t.Fatal(err)
	}
	return d, p
}

func TestCascadeOnDelete(t *testing.T) {
	s := New()
	ctx := context.Background()
	d, p := seed(t, s)

	for range 2 {
		if _, err := s.TimeEntries.Create(ctx, &timeentry.TimeEntry{ProjectID: p.ID, DeveloperID: d.ID, Hours: 1}); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.Developers.Delete(ctx, d.ID); err != nil {
		t.Fatal(err)
	}
	entries, _ := s.TimeEntries.ListByProject(ctx, p.ID)
	if len(entries) != 0 {
		t.Fatalf("expected cascade, got %d entries", len(entries))
	}
	if err := s.Developers.Delete(ctx, d.ID); !repository.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestConstraintsReportPostgresCodes(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, p := seed(t, s)

	_, err := s.Developers.Create(ctx, &developer.Developer{Name: "Other", Email: "ana@x.com"})
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || sqlerr.MapCode(pgErr.Code) != sqlerr.UniqueViolation {
		t.Fatalf("expected unique violation, got %v", err)
	}

	_, err = s.TimeEntries.Create(ctx, &timeentry.TimeEntry{ProjectID: p.ID, DeveloperID: 42})
	if !errors.As(err, &pgErr) || sqlerr.MapCode(pgErr.Code) != sqlerr.ForeignKeyViolation {
		t.Fatalf("expected foreign key violation, got %v", err)
	}
	if pgErr.ConstraintName != "time_entries_developer_id_fkey" {
		t.Fatalf("constraint = %q", pgErr.ConstraintName)
	}
}

func TestWithTxRestoresStateOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	seed(t, s)
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.Developers.Create(ctx, &developer.Developer{Name: "Bia", Email: "bia@x.com"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	developers, _ := s.Developers.List(ctx)
	if len(developers) != 1 {
		t.Fatalf("rollback failed, %d developers", len(developers))
	}

	err = s.WithTx(ctx, func(ctx context.Context) error {
		_, err := s.Developers.Create(ctx, &developer.Developer{Name: "Bia", Email: "bia@x.com"})
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	developers, _ = s.Developers.List(ctx)
	if len(developers) != 2 || developers[1].ID != 3 {
		t.Fatalf("unexpected developers after commit: %+v", developers)
	}
}
