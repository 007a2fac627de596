package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/restaurant-backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Billing  BillingConfig
	LogLevel slog.Level
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
}

// BillingConfig - параметры расчёта сумм заказа
type BillingConfig struct {
	TaxRate decimal.Decimal
}

// DSN возвращает строку подключения для выбранного драйвера
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return SQLiteDSN(c.SQLitePath)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// SQLiteDSN включает внешние ключи на каждом соединении и берёт блокировку
// на запись в начале транзакции, чтобы пересчёты одного заказа шли по очереди
func SQLiteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
}

// Load загружает конфигурацию из .env и переменных окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", domain.DefaultTaxRate.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	if taxRate.IsNegative() || taxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("TAX_RATE must be in [0, 1), got %s", taxRate)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Driver:     driver,
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "restaurant"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "restaurant.db"),
		},
		Billing: BillingConfig{
			TaxRate: taxRate,
		},
		LogLevel: level,
	}, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
