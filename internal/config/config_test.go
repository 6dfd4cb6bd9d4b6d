package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caselink.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TokenEnv != DefaultTokenEnv {
		t.Errorf("expected default token env, got %q", cfg.TokenEnv)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, "subdomain: acme\nstrategy: static-category\nlogLevel: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Subdomain != "acme" || cfg.Strategy != "static-category" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "subdomain: acme\n")
	t.Setenv("CASELINK_SUBDOMAIN", "globex")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Subdomain != "globex" {
		t.Errorf("expected env override, got %q", cfg.Subdomain)
	}
}

func TestLoad_RejectsBadStrategy(t *testing.T) {
	path := writeConfig(t, "strategy: nightly-batch\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for bad strategy")
	}
}

func TestLoad_SubdomainMayBeAbsent(t *testing.T) {
	// A missing subdomain is not a config-load error: the connector reports
	// it as a configuration failure before any network call.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Subdomain != "" {
		t.Errorf("expected empty subdomain, got %q", cfg.Subdomain)
	}
}
