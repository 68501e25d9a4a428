// Package app provides the application context and dependency management
// for the brickline CLI. It centralizes configuration, logging and version
// information and hands them to commands through application.Application.
package app

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/brickline/cmd/application"
	"github.com/agentstation/brickline/internal/cmd/output"
	"github.com/agentstation/brickline/internal/config"
	"github.com/agentstation/brickline/pkg/logging"
)

// App represents the brickline application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config     *config.Config
	configOpts []config.Option

	// Logger and the closer of its output file, if any
	logger    *zerolog.Logger
	logCloser io.Closer

	// warnings receives configuration warnings printed before logging is set up
	warnings io.Writer
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment, .env files and the config
// file unless WithConfig supplies it.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version:  version,
		commit:   commit,
		date:     date,
		builtBy:  builtBy,
		warnings: os.Stderr,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		cfg, err := config.Load(app.configOpts...)
		if err != nil {
			return nil, err
		}
		app.config = cfg
	}

	if app.logger == nil {
		if err := app.resetLogger(); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the report format: the configured one, or table on a
// terminal and json otherwise.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(string(a.config.Format)))
}

// Shutdown releases the log output file, if one is open.
func (a *App) Shutdown(_ context.Context) error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// resetLogger rebuilds the logger from the current configuration and makes
// it the package default.
func (a *App) resetLogger() error {
	logger, closer, err := NewLogger(a.config, a.warnings)
	if err != nil {
		return err
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	a.logger = &logger
	a.logCloser = closer
	logging.SetDefault(logger)
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) error {
		a.config = cfg
		return nil
	}
}

// WithConfigOptions passes options to every config.Load the app performs.
func WithConfigOptions(opts ...config.Option) Option {
	return func(a *App) error {
		a.configOpts = append(a.configOpts, opts...)
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithWarnings redirects configuration warnings (default os.Stderr).
func WithWarnings(w io.Writer) Option {
	return func(a *App) error {
		a.warnings = w
		return nil
	}
}
