package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected mirror disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Redis.Namespace != "tedash" {
		t.Errorf("expected default namespace, got %q", cfg.Redis.Namespace)
	}
	if len(cfg.Ticker) != 0 {
		t.Errorf("expected no configured ticker slots, got %d", len(cfg.Ticker))
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
redis:
  addr: "localhost:6379"
  namespace: "dash"
ticker:
  - label: "S&P 500"
    category: index
    symbol: US500
  - label: "10Y Yield"
    category: bond
    name_contains: "US 10Y"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.Server.Addr)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.Namespace != "dash" {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if len(cfg.Ticker) != 2 {
		t.Fatalf("expected 2 ticker slots, got %d", len(cfg.Ticker))
	}
	if cfg.Ticker[1].NameContains != "US 10Y" {
		t.Errorf("unexpected slot: %+v", cfg.Ticker[1])
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
`)
	t.Setenv("ADDR", ":7070")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("env override lost: %q", cfg.Server.Addr)
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("env override lost: %q", cfg.Redis.Addr)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not: a: mapping")

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
