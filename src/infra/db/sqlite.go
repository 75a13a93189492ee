package db

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// OpenSQLite opens a gorm connection to the sqlite database at path.
//
// Foreign keys are enabled on every connection. In-memory databases are
// limited to a single connection so all queries see the same data.
func OpenSQLite(path string, log *slog.Logger) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite pool: %w", err)
	}
	if strings.HasPrefix(path, MemoryDSN) || strings.Contains(path, "mode=memory") {
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("database connection established", "driver", "sqlite", "path", path)
	return gdb, nil
}

// CloseSQLite closes the connection pool behind gdb.
func CloseSQLite(gdb *gorm.DB, log *slog.Logger) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("failed to close sqlite database", "error", err)
		return
	}
	log.Info("database connection closed")
}
