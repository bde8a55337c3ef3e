package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Storage.Driver != DriverMemory || cfg.Auth.Mode != AuthDev {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RequestTimeout != 15*time.Second || cfg.Stripe.Currency != "usd" || cfg.Addr() != ":8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "petify.yaml")
	yaml := strings.Join([]string{
		"port: \"9000\"",
		"storage_driver: mongo",
		"mongo_uri: mongodb://localhost:27017",
		"log_level: debug",
	}, "\n")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PORT", "7000")
	t.Setenv("MONGO_TRANSACTIONS", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7000" {
		t.Fatalf("env must win, got port %q", cfg.Port)
	}
	if cfg.Storage.Driver != DriverMongo || !cfg.Storage.MongoTransactions || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":    {"STORAGE_DRIVER": "sqlite"},
		"mongo without uri": {"STORAGE_DRIVER": "mongo"},
		"pg without dsn":    {"STORAGE_DRIVER": "postgres"},
		"jwt without key":   {"AUTH_MODE": "jwt"},
		"remote w/o url":    {"AUTH_MODE": "remote"},
		"unknown auth":      {"AUTH_MODE": "basic"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
