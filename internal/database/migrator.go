package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// Migrations are embedded so the binary carries its own schema.
//
//go:embed migrations/*.sql
var migrations embed.FS

// versionTable is where tern records the applied migration version.
const versionTable = "schema_version"

// newMigrator connects to dsn and loads the embedded migrations.
//
// The caller owns the returned connection.
func newMigrator(ctx context.Context, dsn string) (*tern.Migrator, *pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting for migrations: %w", err)
	}

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		conn.Close(ctx)
		return nil, nil, fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		conn.Close(ctx)
		return nil, nil, fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		conn.Close(ctx)
		return nil, nil, fmt.Errorf("loading database migrations: %w", err)
	}

	return m, conn, nil
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, logger *zerolog.Logger, dsn string) error {
	m, conn, err := newMigrator(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}

// Reset drops every table by migrating down to version 0, then recreates
// the schema empty.
func Reset(ctx context.Context, logger *zerolog.Logger, dsn string) error {
	m, conn, err := newMigrator(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if err := m.MigrateTo(ctx, 0); err != nil {
		return fmt.Errorf("dropping database schema: %w", err)
	}
	logger.Info().Msg("dropped all tables")

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("recreating database schema: %w", err)
	}
	logger.Info().Msgf("recreated database schema, version %d", len(m.Migrations))
	return nil
}
