package config_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/restaurant-backoffice/internal/config"
	"github.com/restaurant-backoffice/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if !cfg.Billing.TaxRate.Equal(domain.DefaultTaxRate) {
		t.Errorf("expected default tax rate, got %s", cfg.Billing.TaxRate)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/r.db")
	t.Setenv("TAX_RATE", "0.07")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.Driver != config.DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	dsn := cfg.Database.DSN()
	if !strings.HasPrefix(dsn, "file:/tmp/r.db?") || !strings.Contains(dsn, "_foreign_keys=on") {
		t.Errorf("unexpected sqlite dsn %q", dsn)
	}
	if cfg.Billing.TaxRate.String() != "0.07" {
		t.Errorf("expected 0.07, got %s", cfg.Billing.TaxRate)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TAX_RATE", "abc"},
		{"TAX_RATE", "1.5"},
		{"TAX_RATE", "-0.01"},
		{"DB_DRIVER", "oracle"},
		{"LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := config.Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestDSN_Postgres(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		DBName:   "restaurant",
		SSLMode:  "disable",
	}

	want := "host=db port=5432 user=u password=p dbname=restaurant sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
