package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STUDYHUB_API_URL", "")
	dataDir := t.TempDir()
	cfg, err := Load(dataDir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != dataDir {
		t.Fatalf("data dir: %s", cfg.DataDir)
	}
	if cfg.APIBaseURL != "http://127.0.0.1:8000" {
		t.Fatalf("base url: %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Fatalf("timeout: %s", cfg.RequestTimeout())
	}
	if cfg.Moderation.Mode != "keyword" {
		t.Fatalf("moderation mode: %s", cfg.Moderation.Mode)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dataDir := t.TempDir()
	yaml := "api_base_url: https://study.example.com\nrequest_timeout_seconds: 5\nmoderation:\n  mode: plugin\n"
	if err := os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	cfg, err := Load(dataDir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://study.example.com" {
		t.Fatalf("base url: %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Fatalf("timeout: %s", cfg.RequestTimeout())
	}
	if cfg.Moderation.Mode != "plugin" {
		t.Fatalf("moderation mode: %s", cfg.Moderation.Mode)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dataDir := t.TempDir()
	yaml := "api_base_url: https://file.example.com\n"
	if err := os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	t.Setenv("STUDYHUB_API_URL", "https://env.example.com")

	cfg, err := Load(dataDir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://env.example.com" {
		t.Fatalf("env override lost: %s", cfg.APIBaseURL)
	}
}

func TestLoadDataDirFromEnv(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("STUDYHUB_DATA_DIR", dataDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != dataDir {
		t.Fatalf("data dir: want %s got %s", dataDir, cfg.DataDir)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte("api_base_url: [unclosed"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	if _, err := Load(dataDir); err == nil {
		t.Fatalf("malformed yaml must be an error, not a silent default")
	}
}

func TestLoadClampsNonPositiveTimeout(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte("request_timeout_seconds: -3\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	cfg, err := Load(dataDir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Fatalf("timeout should fall back to the default: %s", cfg.RequestTimeout())
	}
}

func TestPathHelpers(t *testing.T) {
	cfg := Config{DataDir: "/data"}
	if cfg.CredentialsPath() != filepath.Join("/data", "credentials.json") {
		t.Fatalf("credentials path: %s", cfg.CredentialsPath())
	}
	if cfg.LedgerPath() != filepath.Join("/data", "progress.json") {
		t.Fatalf("ledger path: %s", cfg.LedgerPath())
	}
	if cfg.HistoryDBPath() != filepath.Join("/data", "history.db") {
		t.Fatalf("history db path: %s", cfg.HistoryDBPath())
	}
}
