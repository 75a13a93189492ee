// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgx)
//   - SQLite connections for local development and tests (gorm)
//   - Embedded goose migrations for the Postgres schema
//   - Connection health checks
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := db.Migrate(ctx, pg); err != nil {
//	    return err
//	}
package db
