package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
		"MONGO_URL":  "mongodb://localhost:27017",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "3001" {
		t.Errorf("expected default port 3001, got %q", cfg.Port)
	}
	if cfg.Auth.TokenTTL != 168*time.Hour {
		t.Errorf("expected one week ttl, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("expected bcrypt cost 12, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Auth.EnforceHostRole {
		t.Error("host role enforcement must be off by default")
	}
	if cfg.Mongo.Database != "lodging" {
		t.Errorf("expected database lodging, got %q", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis must be disabled by default, got %q", cfg.Redis.Addr)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development environment by default")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":              "8080",
		"ENV":               "production",
		"JWT_SECRET":        "s3cret",
		"JWT_TTL":           "1h",
		"ENFORCE_HOST_ROLE": "true",
		"MONGO_URL":         "mongodb://db:27017",
		"REDIS_ADDR":        "cache:6379",
		"REDIS_DB":          "2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.IsDevelopment() {
		t.Errorf("unexpected server settings: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != time.Hour || !cfg.Auth.EnforceHostRole {
		t.Errorf("unexpected auth settings: %+v", cfg.Auth)
	}
	if cfg.Redis.Addr != "cache:6379" || cfg.Redis.DB != 2 {
		t.Errorf("unexpected redis settings: %+v", cfg.Redis)
	}
}

func TestLoadFrom_MissingRequired(t *testing.T) {
	cases := map[string]map[string]string{
		"no secret": {"MONGO_URL": "mongodb://localhost:27017"},
		"no mongo":  {"JWT_SECRET": "s3cret"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(env)); err == nil {
				t.Fatal("expected error for missing required variable")
			}
		})
	}
}
