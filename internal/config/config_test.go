package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskpad/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected default base URL: %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.Timeout)
	}
	if cfg.Debug {
		t.Error("debug should default to false")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TASKPAD_BASE_URL", "https://api.example.com")
	t.Setenv("TASKPAD_TIMEOUT", "10s")

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("env override not applied: %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("env timeout not applied: %v", cfg.Timeout)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "base_url = \"http://backend:9000\"\ntimeout = \"2s\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://backend:9000" {
		t.Errorf("config file not read: %q", cfg.BaseURL)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("config file timeout not read: %v", cfg.Timeout)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		BaseURL: "http://saved:8000",
		Timeout: 7 * time.Second,
		Dir:     dir,
	}
	if err := config.Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.BaseURL != "http://saved:8000" || loaded.Timeout != 7*time.Second {
		t.Errorf("round trip mismatch: %#v", loaded)
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("TASKPAD_TIMEOUT", "not-a-duration")
	if _, err := config.Load(t.TempDir()); err == nil {
		t.Error("expected error for invalid timeout")
	}
}
