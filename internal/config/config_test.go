package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvSeed, EnvLogFile, EnvLogLevel, EnvTelemetry, EnvAPIKey, EnvDataset} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.LogFile != defaultLogFile {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, defaultLogFile)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.Telemetry {
		t.Error("Telemetry should default to false")
	}
	if cfg.Dataset != defaultDataset {
		t.Errorf("Dataset = %q, want %q", cfg.Dataset, defaultDataset)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "12345")
	t.Setenv(EnvLogFile, "/tmp/maze.log")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvTelemetry, "true")
	t.Setenv(EnvAPIKey, "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", cfg.Seed)
	}
	if cfg.LogFile != "/tmp/maze.log" {
		t.Errorf("LogFile = %q, want /tmp/maze.log", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.Telemetry {
		t.Error("Telemetry = false, want true")
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q, want secret", cfg.APIKey)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvSeed, "not-a-number"},
		{EnvSeed, "1.5"},
		{EnvTelemetry, "maybe"},
	}

	for _, tt := range tests {
		clearEnv(t)
		t.Setenv(tt.key, tt.value)

		_, err := Load()
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Load() with %s=%q error = %v, want ErrInvalidValue", tt.key, tt.value, err)
		}
	}
}

func TestOTelEnv(t *testing.T) {
	env := Config{Dataset: "fogmaze"}.OTelEnv()
	if env["OTEL_EXPORTER_OTLP_ENDPOINT"] != honeycombURL {
		t.Errorf("endpoint = %q, want %q", env["OTEL_EXPORTER_OTLP_ENDPOINT"], honeycombURL)
	}
	if _, ok := env["OTEL_EXPORTER_OTLP_HEADERS"]; ok {
		t.Error("headers should not be set without an API key")
	}

	env = Config{APIKey: "k", Dataset: "d"}.OTelEnv()
	want := "x-honeycomb-team=k,x-honeycomb-dataset=d"
	if got := env["OTEL_EXPORTER_OTLP_HEADERS"]; got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("LoadDotEnv(missing) error = %v, want nil", err)
	}

	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("FOGMAZE_LOG_LEVEL=warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set, even to "".
	os.Unsetenv(EnvLogLevel)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}
	if got := os.Getenv(EnvLogLevel); got != "warn" {
		t.Errorf("%s = %q, want warn", EnvLogLevel, got)
	}
}
