package repository

import (
	"context"

	"github.com/deppfellow/timesheet/internal/database"
	"github.com/deppfellow/timesheet/internal/model/timeentry"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	timeEntriesTable   = "time_entries"
	timeEntriesColumns = "id, project_id, developer_id, description, hours, date, created_at"
)

type TimeEntryRepository struct {
	pool *pgxpool.Pool
}

func NewTimeEntryRepository(pool *pgxpool.Pool) *TimeEntryRepository {
	return &TimeEntryRepository{pool: pool}
}

func (r *TimeEntryRepository) conn(ctx context.Context) database.Querier {
	return database.Conn(ctx, r.pool)
}

func (r *TimeEntryRepository) List(ctx context.Context) ([]timeentry.TimeEntry, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+timeEntriesColumns+` FROM time_entries ORDER BY id`)
	return collectMany[timeentry.TimeEntry](rows, err, timeEntriesTable)
}

func (r *TimeEntryRepository) ListByDeveloper(ctx context.Context, developerID int64) ([]timeentry.TimeEntry, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+timeEntriesColumns+` FROM time_entries WHERE developer_id = $1 ORDER BY id`, developerID)
	return collectMany[timeentry.TimeEntry](rows, err, timeEntriesTable)
}

func (r *TimeEntryRepository) ListByProject(ctx context.Context, projectID int64) ([]timeentry.TimeEntry, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+timeEntriesColumns+` FROM time_entries WHERE project_id = $1 ORDER BY id`, projectID)
	return collectMany[timeentry.TimeEntry](rows, err, timeEntriesTable)
}

func (r *TimeEntryRepository) GetByID(ctx context.Context, id int64) (*timeentry.TimeEntry, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+timeEntriesColumns+` FROM time_entries WHERE id = $1`, id)
	return collectOne[timeentry.TimeEntry](rows, err, timeEntriesTable)
}

func (r *TimeEntryRepository) Create(ctx context.Context, t *timeentry.TimeEntry) (*timeentry.TimeEntry, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		INSERT INTO time_entries (project_id, developer_id, description, hours, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+timeEntriesColumns,
		t.ProjectID, t.DeveloperID, t.Description, t.Hours, t.Date,
	)
	return collectOne[timeentry.TimeEntry](rows, err, timeEntriesTable)
}

func (r *TimeEntryRepository) Update(ctx context.Context, t *timeentry.TimeEntry) (*timeentry.TimeEntry, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		UPDATE time_entries
		SET project_id = $2, developer_id = $3, description = $4, hours = $5, date = $6
		WHERE id = $1
		RETURNING `+timeEntriesColumns,
		t.ID, t.ProjectID, t.DeveloperID, t.Description, t.Hours, t.Date,
	)
	return collectOne[timeentry.TimeEntry](rows, err, timeEntriesTable)
}

func (r *TimeEntryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.conn(ctx), timeEntriesTable, id)
}
