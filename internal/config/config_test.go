package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FURNIPROFIT_CONFIG", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port=%q, want %q", cfg.Port, "8080")
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr=%q, want %q", cfg.Addr(), ":8080")
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Fatalf("LogLevel=%v, want info", cfg.LogLevel)
	}
	if filepath.Base(cfg.AppConfigPath) != "config.json" {
		t.Fatalf("AppConfigPath=%q, want default config.json", cfg.AppConfigPath)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("FURNIPROFIT_CONFIG", "/etc/furniprofit.json")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("Port=%q, want %q", cfg.Port, "9090")
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Fatalf("LogLevel=%v, want debug", cfg.LogLevel)
	}
	if cfg.AppConfigPath != "/etc/furniprofit.json" {
		t.Fatalf("AppConfigPath=%q", cfg.AppConfigPath)
	}
}

func TestLoad_InvalidLogLevelFallsBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOG_LEVEL", "chatty")

	if got := Load().LogLevel; got != zerolog.InfoLevel {
		t.Fatalf("LogLevel=%v, want info", got)
	}
}

func TestLoad_DotEnvDoesNotOverwriteEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\nLOG_LEVEL=warn\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("PORT", "9999")
	// Unset LOG_LEVEL entirely so the .env value applies
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Fatalf("Port=%q, want env value 9999", cfg.Port)
	}
	if cfg.LogLevel != zerolog.WarnLevel {
		t.Fatalf("LogLevel=%v, want warn from .env", cfg.LogLevel)
	}
}
