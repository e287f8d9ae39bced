package db

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// Migrations ship inside the binary so the API and the migrate command
// always run the same schema version.
//
//go:embed migrations/*.sql
var migrationFS embed.FS

// RunMigrations brings the usage schema up to date with goose. A nil
// database (the in-memory ledger path) is a no-op.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, "migrations")
}
