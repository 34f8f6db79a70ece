// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSeed      = "FOGMAZE_SEED"
	EnvLogFile   = "FOGMAZE_LOG_FILE"
	EnvLogLevel  = "FOGMAZE_LOG_LEVEL"
	EnvTelemetry = "FOGMAZE_TELEMETRY"
	EnvAPIKey    = "HONEYCOMB_FOGMAZE_API_KEY"
	EnvDataset   = "HONEYCOMB_FOGMAZE_DATASET"
)

const (
	defaultLogFile  = "fogmaze.log"
	defaultLogLevel = "info"
	defaultDataset  = "fogmaze"
	honeycombURL    = "https://api.honeycomb.io"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("invalid config value")

// Config holds the application's configuration values.
type Config struct {
	Seed      int64  // Maze seed; 0 picks one from the clock
	LogFile   string // Path the log is written to (the terminal belongs to the game)
	LogLevel  string // logrus level name
	Telemetry bool   // Export traces to Honeycomb
	APIKey    string // Honeycomb API key
	Dataset   string // Honeycomb dataset
}

// LoadDotEnv loads a .env file if present. A missing file is not an error
// because variables may be set directly.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	seed, err := getEnvAsInt64(EnvSeed, 0)
	if err != nil {
		return Config{}, err
	}
	telemetry, err := getEnvAsBool(EnvTelemetry, false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Seed:      seed,
		LogFile:   getEnvWithDefault(EnvLogFile, defaultLogFile),
		LogLevel:  getEnvWithDefault(EnvLogLevel, defaultLogLevel),
		Telemetry: telemetry,
		APIKey:    os.Getenv(EnvAPIKey),
		Dataset:   getEnvWithDefault(EnvDataset, defaultDataset),
	}, nil
}

// OTelEnv returns the OTEL_* variables that point the exporter at Honeycomb.
// Headers are only set when an API key is configured.
func (c Config) OTelEnv() map[string]string {
	env := map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT": honeycombURL,
	}
	if c.APIKey != "" {
		env["OTEL_EXPORTER_OTLP_HEADERS"] = fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", c.APIKey, c.Dataset)
	}
	return env
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidValue, key, err)
	}
	return b, nil
}
