// Package logging configures logrus for a process whose terminal is owned by
// the game screen.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup points the standard logrus logger at path using level.
// The returned closer flushes and closes the log file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	Configure(log.StandardLogger(), f, lvl)
	return f, nil
}

// Configure applies the game's formatter, output and level to logger.
func Configure(logger *log.Logger, out io.Writer, lvl log.Level) {
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
}
