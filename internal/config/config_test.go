package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	env := map[string]string{
		"TIMESHEET_PRIMARY.ENV":                  "local",
		"TIMESHEET_SERVER.PORT":                  "8080",
		"TIMESHEET_SERVER.READ_TIMEOUT":          "30",
		"TIMESHEET_SERVER.WRITE_TIMEOUT":         "30",
		"TIMESHEET_SERVER.IDLE_TIMEOUT":          "60",
		"TIMESHEET_SERVER.CORS_ALLOWED_ORIGINS":  "http://localhost:3000",
		"TIMESHEET_SERVER.RATE_LIMIT.RATE":       "20",
		"TIMESHEET_SERVER.RATE_LIMIT.EXPIRES_IN": "3m",
		"TIMESHEET_DATABASE.HOST":                "localhost",
		"TIMESHEET_DATABASE.PORT":                "5432",
		"TIMESHEET_DATABASE.USER":                "postgres",
		"TIMESHEET_DATABASE.PASSWORD":            "p@ss:word",
		"TIMESHEET_DATABASE.NAME":                "timesheet",
		"TIMESHEET_DATABASE.SSL_MODE":            "disable",
		"TIMESHEET_DATABASE.MAX_OPEN_CONNS":      "10",
		"TIMESHEET_DATABASE.MAX_IDLE_CONNS":      "5",
		"TIMESHEET_DATABASE.CONN_MAX_LIFETIME":   "300",
		"TIMESHEET_DATABASE.CONN_MAX_IDLE_TIME":  "300",
		"TIMESHEET_REDIS.ADDRESS":                "localhost:6379",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" || cfg.Database.Port != 5432 {
		t.Fatalf("server/database = %+v / %+v", cfg.Server, cfg.Database)
	}
	if cfg.Server.RateLimit.Rate != 20 || cfg.Server.RateLimit.ExpiresIn != 3*time.Minute {
		t.Fatalf("rate limit = %+v", cfg.Server.RateLimit)
	}
	if cfg.Integration.EmailFrom != defaultEmailFrom {
		t.Fatalf("email from = %q", cfg.Integration.EmailFrom)
	}
	if cfg.Observability == nil || cfg.Observability.ServiceName != ServiceName || cfg.Observability.Environment != "local" {
		t.Fatalf("observability = %+v", cfg.Observability)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TIMESHEET_DATABASE.HOST", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected a validation error without database.host")
	}
}

func TestDSNEscapesPassword(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:word", Name: "n", SSLMode: "disable"}

	want := "postgres://u:p%40ss%3Aword@db:5432/n?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}

func TestHealthCheckEnabled(t *testing.T) {
	obs := DefaultObservabilityConfig()
	if !obs.HealthCheckEnabled("database") || obs.HealthCheckEnabled("queue") {
		t.Fatal("default checks should be database and redis")
	}

	obs.HealthChecks.Enabled = false
	if obs.HealthCheckEnabled("database") {
		t.Fatal("disabled health checks still report enabled")
	}
}
