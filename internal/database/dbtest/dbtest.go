// Package dbtest поднимает временную sqlite-базу с применёнными миграциями
package dbtest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/restaurant-backoffice/internal/config"
	"github.com/restaurant-backoffice/internal/database"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New открывает новую базу в каталоге теста и закрывает её по окончании
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	cfg := config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(tb.TempDir(), "test.db"),
	}

	db, err := database.Open(context.Background(), cfg, gormlogger.Silent)
	if err != nil {
		tb.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql.DB: %v", err)
	}
	tb.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db, config.DriverSQLite, DiscardLogger()); err != nil {
		tb.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// DiscardLogger возвращает логгер, который ничего не пишет
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
