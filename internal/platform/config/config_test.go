package config

import (
	"strings"
	"testing"
)

func setStoreEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STRIFE_CERTIFICATE", "c2VjcmV0")
	t.Setenv("STRIFE_CERTIFICATE_PASSWORD", "pw")
	t.Setenv("STRIFE_DATABASE_URLS", "postgres://db-a:5432,postgres://db-b:5432")
	t.Setenv("STRIFE_DATABASE", "storefront")
}

func TestLoadDefaults(t *testing.T) {
	setStoreEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
	if len(cfg.DatabaseURLs) != 2 {
		t.Fatalf("expected 2 database urls, got %d", len(cfg.DatabaseURLs))
	}
}

func TestValidateStore(t *testing.T) {
	setStoreEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := cfg.ValidateStore(); err != nil {
		t.Fatalf("expected valid store config, got %v", err)
	}
}

func TestValidateStoreMissing(t *testing.T) {
	setStoreEnv(t)
	t.Setenv("STRIFE_DATABASE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	err = cfg.ValidateStore()
	if err == nil {
		t.Fatal("expected error for missing STRIFE_DATABASE")
	}
	if !strings.Contains(err.Error(), "STRIFE_DATABASE") {
		t.Fatalf("error should name the missing option, got %v", err)
	}
}
