package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"IPAUDIT_FILE", "IPAUDIT_SHEET", "IPAUDIT_LOG_LEVEL"} {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.File != "" {
		t.Fatalf("expected empty File default, got %q", cfg.File)
	}
	if cfg.Sheet != "Sheet1" {
		t.Fatalf("expected default sheet 'Sheet1', got %q", cfg.Sheet)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level 'info', got %q", cfg.LogLevel)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	os.Setenv("IPAUDIT_FILE", "/data/access_logs.xlsx")
	os.Setenv("IPAUDIT_SHEET", "AccessLogs")
	os.Setenv("IPAUDIT_LOG_LEVEL", "debug")
	defer clearEnv(t)

	cfg := Load()

	if cfg.File != "/data/access_logs.xlsx" {
		t.Fatalf("expected File '/data/access_logs.xlsx', got %q", cfg.File)
	}
	if cfg.Sheet != "AccessLogs" {
		t.Fatalf("expected sheet 'AccessLogs', got %q", cfg.Sheet)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level 'debug', got %q", cfg.LogLevel)
	}
}

func TestLoad_EmptyValuesFallBack(t *testing.T) {
	clearEnv(t)
	os.Setenv("IPAUDIT_SHEET", "")
	os.Setenv("IPAUDIT_LOG_LEVEL", "")
	defer clearEnv(t)

	cfg := Load()

	if cfg.Sheet != "Sheet1" {
		t.Fatalf("expected empty IPAUDIT_SHEET to fall back to 'Sheet1', got %q", cfg.Sheet)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected empty IPAUDIT_LOG_LEVEL to fall back to 'info', got %q", cfg.LogLevel)
	}
}
