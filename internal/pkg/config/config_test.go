package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "secret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Port != "3000" {
		t.Errorf("port: want 3000, got %q", cfg.HTTP.Port)
	}
	if cfg.HTTP.ClientDir != "client/build" {
		t.Errorf("client dir: got %q", cfg.HTTP.ClientDir)
	}
	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "*" {
		t.Errorf("cors origins: got %v", cfg.HTTP.CORSOrigins)
	}
	if !cfg.HTTP.ExposeErrors {
		t.Error("raw errors are exposed by default")
	}
	if cfg.Mongo.Database != "garage" || cfg.Mongo.OpTimeout != 10*time.Second || cfg.Mongo.Transactions {
		t.Errorf("unexpected mongo config: %+v", cfg.Mongo)
	}
	if cfg.RedisEnabled() {
		t.Error("redis must be disabled without REDIS_ADDR")
	}
	if cfg.Auth.Enforce || cfg.Auth.TokenTTL != 24*time.Hour || cfg.Auth.BcryptCost != 10 {
		t.Errorf("unexpected auth config: %+v", cfg.Auth)
	}
	if cfg.Intake.LinkAttempts != 3 {
		t.Errorf("link attempts: got %d", cfg.Intake.LinkAttempts)
	}
	if cfg.StoreDriver != StoreMongo || !cfg.IsDevelopment() {
		t.Errorf("unexpected driver/env: %q %q", cfg.StoreDriver, cfg.Env)
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":                "production",
		"PORT":               "8080",
		"CORS_ORIGINS":       "https://a.example,https://b.example",
		"MONGO_TRANSACTIONS": "true",
		"REDIS_ADDR":         "localhost:6379",
		"IDEMPOTENCY_TTL":    "1h",
		"JWT_SECRET":         "secret",
		"AUTH_ENFORCE":       "true",
		"STORE_DRIVER":       "memory",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.IsDevelopment() || cfg.HTTP.Port != "8080" || len(cfg.HTTP.CORSOrigins) != 2 {
		t.Errorf("overrides not applied: %+v", cfg.HTTP)
	}
	if !cfg.Mongo.Transactions || !cfg.RedisEnabled() || cfg.Redis.IdempotencyTTL != time.Hour {
		t.Errorf("store overrides not applied: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if !cfg.Auth.Enforce || cfg.StoreDriver != StoreMemory {
		t.Errorf("unexpected: enforce=%v driver=%q", cfg.Auth.Enforce, cfg.StoreDriver)
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_DRIVER":         "sqlite",
		"INTAKE_LINK_ATTEMPTS": "0",
	}))
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"STORE_DRIVER", "JWT_SECRET", "INTAKE_LINK_ATTEMPTS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
