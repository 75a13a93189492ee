// Package repo contains the storage adapters behind ports.Store.
//
// Two adapters are provided:
//   - PostgresRepository: pgx against the goose-managed schema (production)
//   - GormRepository: gorm over sqlite (local development and tests)
//
// Both translate driver failures into domain errors: missing rows become
// domain.ErrNotFound, a taken username becomes domain.ErrConflict, and any
// other failure is wrapped with domain.NewStorageError.
package repo
