// Package main is the entry point for the jokes web server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"jokeshare/src/app/server"
	"jokeshare/src/core/ports"
	"jokeshare/src/infra/config"
	"jokeshare/src/infra/cookie"
	"jokeshare/src/infra/db"
	"jokeshare/src/infra/logger"
	"jokeshare/src/infra/password"
	"jokeshare/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"db_driver", cfg.Database.Driver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger.WithComponent(log, "db"))
	if err != nil {
		return err
	}
	defer closeStore()

	srv := server.New(cfg, log, store, cookie.New(cfg.Session), password.NewBcrypt(cfg.Auth.BcryptCost))

	return srv.Run(ctx)
}

// openStore connects the storage adapter selected by APP_DB_DRIVER and
// brings its schema up to date when auto-migration is enabled.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (ports.Store, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		gdb, err := db.OpenSQLite(cfg.Database.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		store := repo.NewGormRepository(gdb, log)
		if cfg.Database.AutoMigrate {
			if err := store.AutoMigrate(); err != nil {
				db.CloseSQLite(gdb, log)
				return nil, nil, err
			}
		}
		return store, func() { db.CloseSQLite(gdb, log) }, nil

	case config.DriverPostgres:
		pg, err := db.New(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(ctx, pg); err != nil {
				pg.Close()
				return nil, nil, err
			}
		}
		return repo.NewPostgresRepository(pg, log), pg.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
