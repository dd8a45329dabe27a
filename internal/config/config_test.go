package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TIMELINE_PAGE_URL", "TIMELINE_DB_PATH", "TIMELINE_DEFAULT_SOURCE",
		"TIMELINE_FETCH_TIMEOUT", "TIMELINE_TOAST_DURATION", "TIMELINE_LOG_LEVEL",
		"TIMELINE_LOG_FORMAT", "TIMELINE_LOG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_UsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageURL != defaultPageURL {
		t.Fatalf("unexpected page url: %s", cfg.PageURL)
	}
	if cfg.DBPath != "timeline.db" {
		t.Fatalf("unexpected DB path: %s", cfg.DBPath)
	}
	if cfg.ToastDuration != 3*time.Second {
		t.Fatalf("unexpected toast duration: %s", cfg.ToastDuration)
	}
	if cfg.Remote() {
		t.Fatal("expected local page url by default")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "timeline.yml")
	content := "page_url: https://example.com/changelog/index.html\nlog_level: debug\nfetch_timeout: 4s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TIMELINE_LOG_LEVEL", "warn")
	t.Setenv("TIMELINE_DEFAULT_SOURCE", "easy_ai")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Remote() {
		t.Fatalf("expected remote page url, got %s", cfg.PageURL)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected env to override file, got %s", cfg.LogLevel)
	}
	if cfg.FetchTimeout != 4*time.Second {
		t.Fatalf("unexpected fetch timeout: %s", cfg.FetchTimeout)
	}
	if cfg.DefaultSource != "easy_ai" {
		t.Fatalf("unexpected default source: %s", cfg.DefaultSource)
	}
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestValidate_LogFormat(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for log format")
	}
}

func TestValidate_Durations(t *testing.T) {
	cfg := Default()
	cfg.ToastDuration = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for toast duration")
	}
}

func TestLoad_InvalidEnvRejected(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIMELINE_LOG_LEVEL", "loud")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}
