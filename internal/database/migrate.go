package database

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/restaurant-backoffice/internal/config"
	"gorm.io/gorm"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

// Migrate применяет миграции для диалекта текущего подключения
func Migrate(db *gorm.DB, driver string, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	dialect, dir := "postgres", "migrations/postgres"
	if driver == config.DriverSQLite {
		dialect, dir = "sqlite3", "migrations/sqlite"
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{logger: logger})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// gooseLogger перенаправляет вывод goose в slog
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrations"))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrations"))
	os.Exit(1)
}
