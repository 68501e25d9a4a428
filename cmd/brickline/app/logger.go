package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/brickline/internal/cmd/alerts"
	"github.com/agentstation/brickline/internal/config"
	"github.com/agentstation/brickline/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag, BRICKLINE_LOG_LEVEL or LOG_LEVEL
//  2. -q/--quiet flag (error)
//  3. -v/--verbose flag (debug)
//  4. Default (warn)
//
// Problems with the level are reported on warnings.
func NewLogger(cfg *config.Config, warnings io.Writer) (zerolog.Logger, io.Closer, error) {
	level := determineLogLevel(cfg, warnings)

	logConfig := &logging.Config{
		Level:     level,
		Format:    cfg.LogFormat,
		Output:    cfg.LogOutput,
		NoColor:   cfg.NoColor,
		AddCaller: level == "debug" || level == "trace",
	}

	return logging.NewLoggerFromConfig(logConfig)
}

// determineLogLevel resolves the level and warns about invalid or
// conflicting settings.
func determineLogLevel(cfg *config.Config, warnings io.Writer) string {
	w := alerts.NewWriterTo(warnings)
	level, invalid := cfg.ResolveLogLevel()
	if invalid {
		_ = w.WriteAlert(alerts.NewWarning(fmt.Sprintf("invalid log level %q, using %q", cfg.LogLevel, level)))
	}
	if cfg.LogLevel == "" && cfg.Verbose && cfg.Quiet {
		_ = w.WriteAlert(alerts.NewWarning("both --verbose and --quiet specified, using --quiet"))
	}
	return level
}
