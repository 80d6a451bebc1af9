// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// Every method runs on the transaction stored in ctx when there is one
// (see database.WithTx), otherwise on the pool.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/timesheet/internal/database"
	"github.com/jackc/pgx/v5"
)

// NotFound is the error returned when a row does not exist.
//
// The "table:<name>:" prefix lets sqlerr name the entity in the 404
// message; the error still matches pgx.ErrNoRows.
func NotFound(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}

// IsNotFound reports whether err is a missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// collectOne scans a single row into T, mapping ErrNoRows to NotFound(table).
func collectOne[T any](rows pgx.Rows, err error, table string) (*T, error) {
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NotFound(table)
		}
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	return item, nil
}

// collectMany scans all rows into a non-nil slice of T.
func collectMany[T any](rows pgx.Rows, err error, table string) ([]T, error) {
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// deleteByID removes one row by id, returning NotFound when nothing matched.
func deleteByID(ctx context.Context, q database.Querier, table string, id int64) error {
	tag, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound(table)
	}
	return nil
}
