// Package main is the entry point for fogmaze.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/fogmaze/internal/config"
	"github.com/samdwyer/fogmaze/internal/game"
	"github.com/samdwyer/fogmaze/internal/logging"
	"github.com/samdwyer/fogmaze/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fogmaze: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx := context.Background()

	shutdown := setupTelemetry(ctx, cfg)
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.WithError(err).Warn("telemetry shutdown failed")
		}
	}()

	g, err := game.New(game.Config{Seed: cfg.Seed})
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// setupTelemetry starts the Honeycomb exporter when enabled. Failure is not
// fatal: the game runs without observability.
func setupTelemetry(ctx context.Context, cfg config.Config) func(context.Context) error {
	if !cfg.Telemetry {
		return telemetry.Disable()
	}

	for key, value := range cfg.OTelEnv() {
		os.Setenv(key, value)
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without observability")
		return telemetry.Disable()
	}
	return shutdown
}
