// Command migrator runs goose commands against the Postgres database using
// the migrations embedded in the db package.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"jokeshare/src/infra/config"
	"jokeshare/src/infra/db"
)

var flags = flag.NewFlagSet("migrator", flag.ExitOnError)

func main() {
	flags.Usage = usage
	flags.Parse(os.Args[1:])
	args := flags.Args()

	if len(args) < 1 {
		flags.Usage()
		os.Exit(1)
	}

	if err := run(context.Background(), args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "migrator: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}
	if cfg.Driver != config.DriverPostgres {
		return fmt.Errorf("only the %s driver has migrations, got %s", config.DriverPostgres, cfg.Driver)
	}

	sqlDB, err := db.OpenSQL(ctx, cfg.DSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return db.RunMigrations(ctx, sqlDB, command, args...)
}

func usage() {
	fmt.Println(usagePrefix)
	flags.PrintDefaults()
	fmt.Println(usageCommands)
}

var (
	usagePrefix = `Usage: migrator COMMAND [ARGS]

Database settings are read from the environment:
APP_DB_HOST, APP_DB_PORT, APP_DB_USER, APP_DB_PASSWORD, APP_DB_NAME, APP_DB_SSLMODE
`

	usageCommands = `
Commands:
    up                   Migrate the database to the most recent version available
    up-by-one            Migrate the database up by 1
    up-to VERSION        Migrate the database to a specific VERSION
    down                 Roll back the version by 1
    down-to VERSION      Roll back to a specific VERSION
    redo                 Re-run the latest migration
    reset                Roll back all migrations
    status               Dump the migration status
    version              Print the current version
`
)
