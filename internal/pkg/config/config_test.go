package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.StoreDriver != StoreMongo {
		t.Fatalf("expected mongo driver, got %q", cfg.StoreDriver)
	}
	if cfg.Mongo.Database != "hotel_admin" {
		t.Fatalf("unexpected database: %q", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis must be disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Login.MaxAttempts != 10 || cfg.Login.Window != time.Minute {
		t.Fatalf("unexpected login limits: %+v", cfg.Login)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}
	if !cfg.ShowErrors() {
		t.Fatalf("errors should be exposed outside production")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":               "9000",
		"ENV":                "production",
		"JWT_SECRET":         "s3cret",
		"STORE_DRIVER":       "Memory",
		"REDIS_ADDR":         "redis:6379",
		"REDIS_DB":           "2",
		"LOGIN_MAX_ATTEMPTS": "3",
		"LOGIN_WINDOW":       "30s",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}

	if cfg.Port != "9000" || cfg.JWTSecret != "s3cret" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.StoreDriver != StoreMemory {
		t.Fatalf("expected normalized memory driver, got %q", cfg.StoreDriver)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Login.MaxAttempts != 3 || cfg.Login.Window != 30*time.Second {
		t.Fatalf("unexpected login limits: %+v", cfg.Login)
	}
	if cfg.ShowErrors() {
		t.Fatalf("errors must be hidden in production by default")
	}
}

func TestLoadWith_ExposeErrorsOverride(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":           "production",
		"EXPOSE_ERRORS": "true",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if !cfg.ShowErrors() {
		t.Fatalf("EXPOSE_ERRORS=true must win over the environment default")
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":    {"STORE_DRIVER": "postgres"},
		"zero attempts":     {"LOGIN_MAX_ATTEMPTS": "0"},
		"bad duration":      {"LOGIN_WINDOW": "soon"},
		"non numeric redis": {"REDIS_DB": "first"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}
