package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// loadRuntime loads the YAML config and applies the CLI overrides.
func loadRuntime() (config.SnakeConfig, core.Config, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, core.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Speed.TickRate = flagFPS
	}

	rt, err := cfg.ToRuntime(flagSeed)
	if err != nil {
		return config.SnakeConfig{}, core.Config{}, err
	}
	return cfg, rt, nil
}

// newLogger builds the process logger from --log-level and --log-file.
// Without a log file, output goes to fallback.
// The returned close func is always safe to call.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
