// Package application provides the application interface for brickline commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            cfg := app.Config()
//	            app.Logger().Debug().Stringer("mode", cfg.CodecMode).Msg("merging")
//	            // ...
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    ConfigFunc: func() *config.Config {
//	        cfg := config.Default()
//	        cfg.Force = true
//	        return cfg
//	    },
//	}
//	cmd := merge.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/brickline/internal/config"
)

// Application provides the application interface that commands need.
// The App struct from cmd/brickline/app implements this interface.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Application interface {
	// Config returns the configuration resolved for the running command.
	Config() *config.Config

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the output format for reports (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
