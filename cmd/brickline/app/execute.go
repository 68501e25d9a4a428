package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/brickline/internal/cmd/globals"
	"github.com/agentstation/brickline/internal/config"
	"github.com/agentstation/brickline/pkg/constants"
	"github.com/agentstation/brickline/pkg/logging"
)

// Execute runs the brickline CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Merge and inspect Bricklink wanted lists",
		Version: a.version,
		Long: `Brickline works with Bricklink wanted lists in their XML upload format.

It merges two lists into one, keyed by item id and color, with the primary
list's prices, conditions and remarks winning and quantities combined. It also
validates lists, reports statistics and rewrites lists in canonical form.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspect",
		Title: "Inspection Commands:",
	})

	globals.AddFlags(rootCmd)

	rootCmd.SetVersionTemplate(constants.AppName + " {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It reloads the
// configuration with the parsed flags on top and rebuilds the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	opts := append([]config.Option{}, a.configOpts...)
	opts = append(opts, config.WithFlags(cmd.Flags()))
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	a.config = cfg

	if err := a.resetLogger(); err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	cmd.SetContext(logging.WithOperation(ctx, cmd.Name()))

	a.logger.Debug().
		Str("config_file", cfg.ConfigFile).
		Stringer("codec_mode", cfg.CodecMode).
		Str("format", string(cfg.Format)).
		Msg("configuration loaded")
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.CreateMergeCommand())
	rootCmd.AddCommand(a.CreateFormatCommand())

	// Inspection commands
	rootCmd.AddCommand(a.CreateStatsCommand())
	rootCmd.AddCommand(a.CreateValidateCommand())

	// Utility commands
	rootCmd.AddCommand(a.CreateVersionCommand())
	rootCmd.AddCommand(a.CreateCompletionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
