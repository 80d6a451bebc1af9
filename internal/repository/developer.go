package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/timesheet/internal/database"
	"github.com/deppfellow/timesheet/internal/model/developer"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	developersTable   = "developers"
	developersColumns = "id, name, email, seniority, hourly_rate, created_at"
)

type DeveloperRepository struct {
	pool *pgxpool.Pool
}

func NewDeveloperRepository(pool *pgxpool.Pool) *DeveloperRepository {
	return &DeveloperRepository{pool: pool}
}

func (r *DeveloperRepository) conn(ctx context.Context) database.Querier {
	return database.Conn(ctx, r.pool)
}

func (r *DeveloperRepository) List(ctx context.Context) ([]developer.Developer, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+developersColumns+` FROM developers ORDER BY id`)
	return collectMany[developer.Developer](rows, err, developersTable)
}

func (r *DeveloperRepository) GetByID(ctx context.Context, id int64) (*developer.Developer, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+developersColumns+` FROM developers WHERE id = $1`, id)
	return collectOne[developer.Developer](rows, err, developersTable)
}

func (r *DeveloperRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM developers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check developer email: %w", err)
	}
	return exists, nil
}

func (r *DeveloperRepository) Create(ctx context.Context, d *developer.Developer) (*developer.Developer, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		INSERT INTO developers (name, email, seniority, hourly_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING `+developersColumns,
		d.Name, d.Email, d.Seniority, d.HourlyRate,
	)
	return collectOne[developer.Developer](rows, err, developersTable)
}

func (r *DeveloperRepository) Update(ctx context.Context, d *developer.Developer) (*developer.Developer, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		UPDATE developers
		SET name = $2, email = $3, seniority = $4, hourly_rate = $5
		WHERE id = $1
		RETURNING `+developersColumns,
		d.ID, d.Name, d.Email, d.Seniority, d.HourlyRate,
	)
	return collectOne[developer.Developer](rows, err, developersTable)
}

// Delete removes the developer; its time entries go with it (ON DELETE CASCADE).
func (r *DeveloperRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.conn(ctx), developersTable, id)
}
