package repository

import (
	"context"

	"github.com/deppfellow/timesheet/internal/database"
	"github.com/deppfellow/timesheet/internal/model/project"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	projectsTable   = "projects"
	projectsColumns = "id, name, description, total_hours, cell, client, service, created_at"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) conn(ctx context.Context) database.Querier {
	return database.Conn(ctx, r.pool)
}

func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+projectsColumns+` FROM projects ORDER BY id`)
	return collectMany[project.Project](rows, err, projectsTable)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+projectsColumns+` FROM projects WHERE id = $1`, id)
	return collectOne[project.Project](rows, err, projectsTable)
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		INSERT INTO projects (name, description, total_hours, cell, client, service)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+projectsColumns,
		p.Name, p.Description, p.TotalHours, p.Cell, p.Client, p.Service,
	)
	return collectOne[project.Project](rows, err, projectsTable)
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		UPDATE projects
		SET name = $2, description = $3, total_hours = $4, cell = $5, client = $6, service = $7
		WHERE id = $1
		RETURNING `+projectsColumns,
		p.ID, p.Name, p.Description, p.TotalHours, p.Cell, p.Client, p.Service,
	)
	return collectOne[project.Project](rows, err, projectsTable)
}

// Delete removes the project; its time entries go with it (ON DELETE CASCADE).
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.conn(ctx), projectsTable, id)
}
