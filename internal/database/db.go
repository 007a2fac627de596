package database

import (
	"context"
	"fmt"
	"time"

	"github.com/restaurant-backoffice/internal/config"
	"github.com/sethvargo/go-retry"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	connectAttempts = 30
	connectInterval = time.Second
)

// Open подключается к БД выбранного драйвера. Postgres может подниматься
// дольше приложения, поэтому подключение повторяется
func Open(ctx context.Context, cfg config.DatabaseConfig, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	}

	if cfg.Driver == config.DriverSQLite {
		db, err := gorm.Open(sqlite.Open(cfg.DSN()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return db, nil
	}

	var db *gorm.DB
	backoff := retry.WithMaxRetries(connectAttempts-1, retry.NewConstant(connectInterval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		conn, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
		if err != nil {
			return retry.RetryableError(err)
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
