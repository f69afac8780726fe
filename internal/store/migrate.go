package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

func setupGoose() error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting goose dialect: %v", err)
	}

	return nil
}

// Migrate runs the goose up, down or status command against db.
func Migrate(ctx context.Context, db *sql.DB, command string) error {
	if err := setupGoose(); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("error running migrations: %v", err)
		}
	case "down":
		if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("error rolling back migration: %v", err)
		}
	case "status":
		if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("error getting migration status: %v", err)
		}
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	return nil
}

// Version returns the currently applied migration version.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	if err := setupGoose(); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersionContext(ctx, db)

	if err != nil {
		return 0, fmt.Errorf("error getting migration version: %v", err)
	}

	return version, nil
}
