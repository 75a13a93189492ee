package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// MigrationsTable records applied schema versions.
const MigrationsTable = "schema_migrations"

//go:embed migrations/*.sql
var migrations embed.FS

func init() {
	goose.SetBaseFS(migrations)
	goose.SetTableName(MigrationsTable)
}

// Migrate applies all pending migrations using the pool behind pg.
func Migrate(ctx context.Context, pg *Postgres) error {
	sqlDB := stdlib.OpenDBFromPool(pg.Pool)
	defer sqlDB.Close()

	if err := RunMigrations(ctx, sqlDB, "up"); err != nil {
		return err
	}
	pg.log.Info("database migrations applied")
	return nil
}

// OpenSQL opens a database/sql handle to dsn through the pgx driver, which
// the stdlib package registers as "pgx".
func OpenSQL(ctx context.Context, dsn string) (*sql.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return sqlDB, nil
}

// RunMigrations runs a goose command (up, down, status, ...) against sqlDB
// using the embedded migrations.
func RunMigrations(ctx context.Context, sqlDB *sql.DB, command string, args ...string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.RunContext(ctx, command, sqlDB, "migrations", args...); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
